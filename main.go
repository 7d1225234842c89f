package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jshort/go-sphere-tracer/pkg/renderer"
	"github.com/jshort/go-sphere-tracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'simple'")
	out := flag.String("out", "-", "Output file; '-' writes to stdout")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	seed := flag.Int64("seed", 42, "Random seed")
	workers := flag.Int("workers", 0, "Worker goroutines; 0 = all CPUs, 1 = sequential")
	flag.Parse()

	if err := run(*sceneType, *out, *format, *height, *samples, *seed, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType, out, format string, height, samples int, seed int64, workers int) error {
	sc, err := createScene(sceneType, height, samples, seed)
	if err != nil {
		return err
	}

	// Progress goes to stderr so stdout stays clean for image data.
	fmt.Fprintf(os.Stderr, "Rendering %q: %dx%d, %d objects, %d samples/pixel\n",
		sceneType, sc.Camera.Width(), sc.Camera.Height(), sc.World.Len(), samples)

	startTime := time.Now()
	var canvas *renderer.Canvas
	if workers == 1 {
		canvas = sc.Camera.Draw(sc.World, rand.New(rand.NewSource(seed)))
	} else {
		canvas = sc.Camera.DrawParallel(sc.World, seed, workers)
	}
	fmt.Fprintf(os.Stderr, "Render completed in %v\n", time.Since(startTime))

	stream := os.Stdout
	if out != "-" {
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		stream = file
	}

	switch format {
	case "ppm":
		err = writePPM(stream, canvas)
	case "png":
		err = writePNG(stream, canvas)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("write %s image: %w", format, err)
	}
	return nil
}

// createScene builds the named preset scene
func createScene(sceneType string, height, samples int, seed int64) (*scene.Scene, error) {
	switch strings.ToLower(sceneType) {
	case "cover":
		return scene.NewCoverScene(seed, height, samples), nil
	case "simple":
		return scene.NewSimpleScene(height, samples), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// encodeChannel gamma-encodes one linear channel (approximate gamma 2.0)
// and maps it to an integer in [0, 255].
func encodeChannel(linear float64) int {
	v := math.Sqrt(linear)
	if v < 0 {
		v = 0
	}
	if v > 0.999 {
		v = 0.999
	}
	return int(v * 256)
}

// writePPM encodes the canvas as a plain-text P3 image, one pixel per
// line in row-major, top-to-bottom order.
func writePPM(w io.Writer, canvas *renderer.Canvas) error {
	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", canvas.Width, canvas.Height); err != nil {
		return err
	}
	for j := 0; j < canvas.Height; j++ {
		for i := 0; i < canvas.Width; i++ {
			pixel := canvas.GetPixel(i, j)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n",
				encodeChannel(pixel.X), encodeChannel(pixel.Y), encodeChannel(pixel.Z)); err != nil {
				return err
			}
		}
	}
	return buf.Flush()
}

// writePNG encodes the canvas as a PNG using the same gamma encoding as
// the PPM writer.
func writePNG(w io.Writer, canvas *renderer.Canvas) error {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
	for j := 0; j < canvas.Height; j++ {
		for i := 0; i < canvas.Width; i++ {
			pixel := canvas.GetPixel(i, j)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(encodeChannel(pixel.X)),
				G: uint8(encodeChannel(pixel.Y)),
				B: uint8(encodeChannel(pixel.Z)),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}
