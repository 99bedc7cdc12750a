// Package vectors provides fixed-dimension float32 vectors (Vec2, Vec3,
// Vec4) for positions, directions and the interpolation, projection and
// normalization operations common in rendering code.
//
// Every arithmetic operation takes an optional trailing destination:
//
//	sum := vectors.Sum3(a, b)     // free form: allocates a fresh result
//	vectors.Sum3(a, b, out)       // free form: writes into out
//	a.Add(b)                      // method form: mutates a in place
//	a.Add(b, out)                 // method form: writes into out, a untouched
//
// Free functions never mutate their operands and default to allocating;
// methods default to mutating the receiver so hot paths can run without
// allocation. Copy is the one method that defaults to a fresh instance.
// Passing an operand as its own destination is allowed; operations read
// every input component before writing any output component.
//
// Operations that would divide by a vanishing length (Normalize, the
// Direction functions) reset the destination to the zero vector instead of
// producing NaN or Inf.
package vectors
