package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	trajectory "github.com/tphakala/go-trajectory"
)

// newLogger returns a text logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadScene returns the YAML scene at path, or the named preset when path
// is empty.
func loadScene(preset, path string) (*trajectory.SceneConfig, error) {
	if path != "" {
		return trajectory.LoadSceneConfig(path)
	}
	return trajectory.Preset(preset)
}

// printSummary writes one line per trajectory with its frame count and
// final position.
func printSummary(w io.Writer, ds *trajectory.Dataset) {
	fmt.Fprintf(w, "Scene %s (%s): %d frames\n", ds.Scene, ds.Layout, ds.Frames)
	for _, tr := range ds.Trajectories {
		if len(tr.Positions) == 0 {
			fmt.Fprintf(w, "  %-12s %-7s 0 frames\n", tr.Name, tr.Role)
			continue
		}
		last := tr.Positions[len(tr.Positions)-1]
		fmt.Fprintf(w, "  %-12s %-7s %d frames, last (%s, %s, %s)\n",
			tr.Name, tr.Role, len(tr.Positions),
			formatFloat(last[0]), formatFloat(last[1]), formatFloat(last[2]))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', summaryPrecision, 64)
}
