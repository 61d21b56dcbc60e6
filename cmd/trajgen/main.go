// Command trajgen generates keyframed trajectories for a scene and saves the
// position, time and camera arrays as .npy files.
//
// Usage:
//
//	trajgen -preset trio-valid                 # writes ./output_trio-valid
//	trajgen -preset cubes -out cubes_out       # explicit output directory
//	trajgen -scene scene.yaml -out out         # scene described in YAML
//	trajgen -preset trio-train -dump > s.yaml  # print a preset as YAML
//	trajgen -list                              # list built-in presets
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	trajectory "github.com/tphakala/go-trajectory"
	"github.com/tphakala/go-trajectory/internal/simdops"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("trajgen failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trajgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	preset := fs.String("preset", defaultPreset, "Built-in scene preset (see -list)")
	scenePath := fs.String("scene", "", "YAML scene file (overrides -preset)")
	outDir := fs.String("out", "", "Output directory (default output_<scene>)")
	list := fs.Bool("list", false, "List built-in presets and exit")
	dump := fs.Bool("dump", false, "Print the scene as YAML and exit")
	verbose := fs.Bool("v", false, "Verbose output")
	cpuprofile := fs.String("cpuprofile", "", "Write CPU profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > minRequiredArgs {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logger := newLogger(stderr, *verbose)

	if *list {
		for _, name := range trajectory.PresetNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg, err := loadScene(*preset, *scenePath)
	if err != nil {
		return err
	}

	if *dump {
		data, err := trajectory.MarshalSceneConfig(cfg)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	dir := *outDir
	if dir == "" {
		dir = defaultOutPrefix + cfg.Name
	}

	logger.Debug("scene loaded",
		"scene", cfg.Name,
		"layout", cfg.Layout,
		"entities", len(cfg.Entities),
		"simd", simdops.Info())

	start := time.Now()
	ds, err := trajectory.Generate(cfg)
	if err != nil {
		return err
	}
	manifest, err := ds.Save(dir)
	if err != nil {
		return err
	}

	for _, a := range manifest.Arrays {
		logger.Debug("array written", "name", a.Name, "file", a.File, "shape", a.Shape)
	}
	logger.Info("dataset written",
		"scene", ds.Scene,
		"dir", dir,
		"frames", ds.Frames,
		"keyframes", len(ds.Keyframes),
		"arrays", len(manifest.Arrays),
		"elapsed", time.Since(start))

	printSummary(stdout, ds)
	return nil
}
