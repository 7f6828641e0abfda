// Command sketchgen renders the built-in generative sketches to PNG or
// SVG files.
//
//	sketchgen -list
//	sketchgen -sketch stars -out stars.png -seed 7 -n 200
//	sketchgen -sketch confetti -out confetti.svg
//	sketchgen -config run.yaml
//
// Flags override values from the config file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/sketches"
)

func main() {
	var (
		name    = flag.String("sketch", "", "sketch name (see -list)")
		cfgPath = flag.String("config", "", "YAML run configuration file")
		output  = flag.String("out", "", "output file (.png or .svg)")
		seed    = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
		iters   = flag.Int("n", 0, "iteration count (0 uses the sketch default)")
		size    = flag.String("size", "", "canvas size as WxH, e.g. 900x900")
		list    = flag.Bool("list", false, "list available sketches")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		for _, n := range sketches.Names() {
			s, _ := sketches.Lookup(n)
			kind := "png"
			if s.SupportsSVG() {
				kind = "png, svg"
			}
			fmt.Printf("%-10s %dx%d (%s)\n", n, s.Defaults.Width, s.Defaults.Height, kind)
		}
		return
	}

	var params sketch.Params
	sketchName := *name
	out := *output

	if *cfgPath != "" {
		cfg, err := sketch.LoadConfig(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		params = cfg.Params()
		if sketchName == "" {
			sketchName = cfg.Sketch
		}
		if out == "" {
			out = cfg.Output
		}
	}
	if sketchName == "" {
		log.Fatal("No sketch selected: pass -sketch or a -config naming one (see -list)")
	}

	s, ok := sketches.Lookup(sketchName)
	if !ok {
		log.Fatalf("Unknown sketch %q (see -list)", sketchName)
	}

	params, err := applyOverrides(params, *seed, *iters, *size)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if out == "" {
		out = sketchName + ".png"
	}

	if err := render(s, params, out); err != nil {
		log.Fatalf("Failed to render %s: %v", sketchName, err)
	}
	log.Printf("Wrote %s", out)
}

// applyOverrides folds the -seed, -n, and -size flags into params. Zero
// values mean "not set" and leave the config or sketch default in place.
func applyOverrides(params sketch.Params, seed int64, iters int, size string) (sketch.Params, error) {
	if seed != 0 {
		params.Seed = seed
	}
	if iters < 0 {
		return params, fmt.Errorf("invalid -n: iterations must not be negative, got %d", iters)
	}
	if iters > 0 {
		params.Iterations = iters
	}
	if size != "" {
		w, h, err := parseSize(size)
		if err != nil {
			return params, fmt.Errorf("invalid -size: %v", err)
		}
		params.Width = w
		params.Height = h
	}
	return params, nil
}

func render(s *sketch.Sketch, params sketch.Params, out string) error {
	if strings.HasSuffix(out, ".svg") {
		if !s.SupportsSVG() {
			return fmt.Errorf("sketch %q has no SVG renderer", s.Name)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := s.RenderSVG(f, params); err != nil {
			return err
		}
		return f.Close()
	}

	c, err := s.Render(params)
	if err != nil {
		return err
	}
	return c.SavePNG(out)
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q", ws)
	}
	h, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height %q", hs)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}
	return w, h, nil
}
