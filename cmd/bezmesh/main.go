// Command bezmesh tessellates a bicubic Bezier height surface described by a
// TOML file and writes the interleaved vertex buffer.
//
//	bezmesh -config surface.toml [-out mesh.obj] [-format obj] [-accuracy 32]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexozer/bezier"
	"github.com/alexozer/bezier/config"
	"github.com/alexozer/bezier/export"
	"github.com/alexozer/bezier/intersect"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("bezmesh failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bezmesh", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "TOML config file; defaults are used when empty")
	out := fs.String("out", "", "output path, overrides the config")
	format := fs.String("format", "", "output format (raw or obj), overrides the config")
	accuracy := fs.Int("accuracy", 0, "cells per side, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}

	if *out != "" {
		cfg.Output.Path = *out
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *accuracy != 0 {
		cfg.Accuracy = *accuracy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Log.SlogLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	log.Debug("config loaded", "path", *cfgPath, "accuracy", cfg.Accuracy, "workers", cfg.Workers)

	buf, err := tessellate(log, &cfg)
	if err != nil {
		return err
	}

	return write(log, &cfg, buf)
}

func tessellate(log *slog.Logger, cfg *config.Config) ([]float32, error) {
	srf, err := bezier.NewBezierSurface(cfg.Heights)
	if err != nil {
		return nil, err
	}

	n, err := bezier.RequiredLength(cfg.Accuracy)
	if err != nil {
		return nil, err
	}
	buf := make([]float32, n)

	start := time.Now()
	if cfg.Workers == 1 {
		err = srf.TessellateInto(buf, cfg.Accuracy)
	} else {
		err = srf.TessellateConcurrent(buf, cfg.Accuracy, cfg.Workers)
	}
	if err != nil {
		return nil, err
	}

	bb := intersect.BufferBoundingBox(buf)
	log.Info("tessellated",
		"cells", cfg.Accuracy*cfg.Accuracy,
		"triangles", intersect.BufferTriangleCount(buf),
		"floats", len(buf),
		"elapsed", time.Since(start),
		"zmin", bb.Min[2],
		"zmax", bb.Max[2],
	)

	return buf, nil
}

func write(log *slog.Logger, cfg *config.Config, buf []float32) (err error) {
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch cfg.Output.Format {
	case config.FormatRaw:
		err = export.WriteRaw(f, buf)
	case config.FormatOBJ:
		err = export.WriteOBJ(f, buf)
	default:
		err = fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	if err != nil {
		return err
	}

	log.Info("wrote output", "path", cfg.Output.Path, "format", cfg.Output.Format)

	return nil
}
