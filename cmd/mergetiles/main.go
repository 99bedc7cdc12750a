package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/echoflaresat/tiff"
	xdraw "golang.org/x/image/draw"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-scale N] <cols>x<rows> <output.png> <tile1> <tile2> ...\n", os.Args[0])
	os.Exit(1)
}

func main() {
	scale := flag.Int("scale", 1, "Downscale factor for the merged output (1 = keep full size)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 3 {
		usage()
	}

	// Parse layout
	tileParts := strings.Split(args[0], "x")
	if len(tileParts) != 2 {
		log.Fatalf("Invalid tile format: %s (expected NxM)", args[0])
	}
	cols, err := strconv.Atoi(tileParts[0])
	if err != nil {
		log.Fatalf("Invalid cols: %v", err)
	}
	rows, err := strconv.Atoi(tileParts[1])
	if err != nil {
		log.Fatalf("Invalid rows: %v", err)
	}

	output := args[1]
	inputFiles := args[2:]
	if len(inputFiles) != cols*rows {
		log.Fatalf("Expected %d input files, got %d", cols*rows, len(inputFiles))
	}

	var canvas *image.NRGBA
	var tileW, tileH int
	// Draw each tile into its position
	for idx, path := range inputFiles {
		fmt.Printf("Processing %s\n", path)
		tile, err := loadImage(path)
		if err != nil {
			log.Fatalf("Could not load input file %q: %v", path, err)
		}

		if canvas == nil {
			tileW = tile.Bounds().Dx()
			tileH = tile.Bounds().Dy()
			canvas = image.NewNRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))
		} else if tileW != tile.Bounds().Dx() || tileH != tile.Bounds().Dy() {
			log.Fatalf("Tile size mismatch for %q: expected %dx%d, got %dx%d",
				path, tileW, tileH, tile.Bounds().Dx(), tile.Bounds().Dy())
		}

		col := idx % cols
		row := idx / cols
		x := col * tileW
		y := row * tileH
		draw.Draw(canvas, image.Rect(x, y, x+tileW, y+tileH), tile, image.Point{0, 0}, draw.Over)
	}

	if *scale > 1 {
		canvas = downscale(canvas, *scale)
	}

	save(output, canvas)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	img, _, err = image.Decode(f)
	return img, err
}

func downscale(src *image.NRGBA, factor int) *image.NRGBA {
	w := src.Bounds().Dx() / factor
	h := src.Bounds().Dy() / factor
	fmt.Printf("-> downscaling to %dx%d\n", w, h)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func save(output string, canvas *image.NRGBA) {
	fmt.Printf("-> creating %s\n", output)
	outFile, err := os.Create(output)
	if err != nil {
		log.Fatalf("Could not create %s: %v", output, err)
	}
	defer outFile.Close()

	ext := strings.ToLower(filepath.Ext(output))
	switch ext {
	case ".png":
		if err := png.Encode(outFile, canvas); err != nil {
			log.Fatalf("Failed to encode PNG: %v", err)
		}
	case ".jpg", ".jpeg":
		opts := jpeg.Options{Quality: 95}
		if err := jpeg.Encode(outFile, canvas, &opts); err != nil {
			log.Fatalf("Failed to encode JPEG: %v", err)
		}
	default:
		log.Fatalf("Unsupported output format: %s", ext)
	}

}
