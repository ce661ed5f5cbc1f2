package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-ray-tracer/pkg/canvas"
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/renderer"
	"github.com/df07/go-ray-tracer/pkg/scene"
)

// Options holds the command line configuration for a render
type Options struct {
	Scene     string  // Scene ID, "obj:<name>" or a path to an .obj file
	Width     int     // 0 = scene default
	Height    int     // 0 = scene default
	FovDeg    float64 // 0 = scene default
	MaxDepth  int     // 0 = default depth
	Workers   int     // 0 = CPU count
	Format    string  // "ppm" or "png"
	OutputDir string
}

func main() {
	// Parse command line flags
	opts := Options{}
	flag.StringVar(&opts.Scene, "scene", "default", "Scene ID, obj:<name>, or path to an .obj file (see -list)")
	flag.IntVar(&opts.Width, "width", 0, "Image width (0 = scene default)")
	flag.IntVar(&opts.Height, "height", 0, "Image height (0 = scene default)")
	flag.Float64Var(&opts.FovDeg, "fov", 0, "Field of view in degrees (0 = scene default)")
	flag.IntVar(&opts.MaxDepth, "depth", 0, "Maximum reflection/refraction depth (0 = default)")
	flag.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&opts.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	flag.StringVar(&opts.OutputDir, "output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	list := flag.Bool("list", false, "List available scenes")
	flag.Parse()

	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
		return
	}

	if *list {
		if err := listScenes(os.Stdout); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, opts, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// run renders the selected scene and writes it to the output directory
func run(ctx context.Context, opts Options, logger core.Logger) (string, error) {
	if opts.Format != "ppm" && opts.Format != "png" {
		return "", fmt.Errorf("unsupported format %q", opts.Format)
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return "", err
	}

	logger.Printf("Scene %s: %d primitives\n", opts.Scene, selectedScene.GetPrimitiveCount())

	camera := selectedScene.Camera
	img := canvas.NewCanvas(camera.HSize, camera.VSize)
	config := renderer.MergeRenderConfig(selectedScene.RenderConfig, renderer.RenderConfig{
		NumWorkers: opts.Workers,
		MaxDepth:   opts.MaxDepth,
	})
	if _, err := camera.RenderParallel(ctx, selectedScene.World, img, config, logger); err != nil {
		return "", err
	}

	// Create output directory for this scene
	outputDir := filepath.Join(opts.OutputDir, sceneDirName(opts.Scene))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, opts.Format))
	if err := saveImage(filename, img, opts.Format); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene resolves the scene name and applies the camera overrides
func createScene(opts Options) (*scene.Scene, error) {
	override := scene.CameraConfig{
		Width:       opts.Width,
		Height:      opts.Height,
		FieldOfView: opts.FovDeg * math.Pi / 180,
	}

	if strings.HasSuffix(opts.Scene, ".obj") {
		return scene.NewOBJScene(opts.Scene, override)
	}
	return scene.NewSceneByID(opts.Scene, override)
}

// saveImage encodes the canvas in the given format
func saveImage(filename string, img canvas.Image, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	switch format {
	case "png":
		err = png.Encode(file, canvas.ToRGBA(img))
	default:
		err = canvas.EncodePPM(file, img)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("error saving %s: %w", strings.ToUpper(format), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", filename, err)
	}
	return nil
}

// sceneDirName turns a scene name into a directory name
func sceneDirName(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), ".obj")
	return strings.NewReplacer(":", "-", " ", "-").Replace(name)
}

// listScenes prints every scene grouped the way the web UI shows them
func listScenes(w io.Writer) error {
	response, err := scene.ListAllScenes()
	if err != nil {
		return err
	}

	for _, group := range response.Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, info := range group.Scenes {
			if info.Description != "" {
				fmt.Fprintf(w, "  %-20s %s\n", info.ID, info.Description)
			} else {
				fmt.Fprintf(w, "  %s\n", info.ID)
			}
		}
	}
	return nil
}
