package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/fabric"
	"github.com/esimov/fabric/utils"
	"github.com/pelletier/go-toml/v2"
)

const helperBanner = `
┌─┐┌─┐┌┐ ┬─┐┬┌─┐
├┤ ├─┤├┴┐├┬┘││
└  ┴ ┴└─┘┴└─┴└─┘

PGR fabric triangle plots
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Source file or URL with e1,e2,e3[,weight] records")
	destination = flag.String("out", "", "Destination PNG image")
	gridOut     = flag.String("grid-out", "", "Write the density grid as tab separated values")
	configFile  = flag.String("config", "", "TOML file with plot options")
	delimiter   = flag.String("delim", ",", "Field delimiter of the source records")
	gridSize    = flag.Int("n", 150, "Grid resolution")
	tolerance   = flag.Float64("err", fabric.DefaultTolerance, "Triangle boundary tolerance")
	mode        = flag.String("mode", "density", "Index: density, intensity, expected-density, expected-intensity")
	expected    = flag.String("expected", "", "Protolith eigenvalues e1,e2,e3 for the expected modes")
	levels      = flag.Int("levels", 8, "Number of contour levels")
	size        = flag.Int("size", 800, "Image size in pixels")
	lineWidth   = flag.Float64("width", 1, "Contour line width")
	radius      = flag.Float64("radius", 3, "Sample point radius")
	colormap    = flag.String("cmap", "viridis", "Density colormap: viridis, gray")
	noLabels    = flag.Bool("nolabels", false, "Do not draw the apex labels")
	workers     = flag.Int("workers", 0, "Concurrent grid rows (0 uses every CPU)")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helperBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", utils.ErrorColor, err, utils.DefaultColor)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	if len(*destination) == 0 && len(*gridOut) == 0 {
		return errors.New("usage: fabric -in records.csv -out plot.png [-grid-out grid.tsv]")
	}

	p, err := loadProcessor(*configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(p); err != nil {
		return err
	}
	logger.Debug("plot options", "mode", p.Mode, "grid", p.GridSize, "tolerance", p.Tolerance, "workers", p.Workers)

	recs, err := readSource(ctx, *source, logger)
	if err != nil {
		return err
	}

	s := utils.NewSpinner()
	s.Start("Computing fabric plot...")
	start := time.Now()
	img, res, err := p.Draw(ctx, recs)
	s.Stop()
	if err != nil {
		return err
	}
	logger.Debug("grid evaluated", "nodes", res.Grid.N*res.Grid.N, "on_triangle", res.Grid.Valid())

	if len(*destination) > 0 {
		if err := savePNG(*destination, img); err != nil {
			return err
		}
	}
	if len(*gridOut) > 0 {
		if err := saveGrid(*gridOut, res.Grid); err != nil {
			return err
		}
	}

	fmt.Printf("\nGenerated in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
	fmt.Printf("Plotted %s%d%s samples over a %s%dx%d%s %s grid\n",
		utils.SuccessColor, len(res.Points), utils.DefaultColor,
		utils.SuccessColor, res.Grid.N, res.Grid.N, utils.DefaultColor, p.Mode)
	if len(*destination) > 0 {
		fmt.Printf("Saved as: %s %s✓%s\n\n", filepath.Base(*destination), utils.SuccessColor, utils.DefaultColor)
	}
	return nil
}

// loadProcessor returns the default options overridden by the config file, if any.
func loadProcessor(path string) (*fabric.Processor, error) {
	p := fabric.DefaultProcessor()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	if err := toml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("unable to decode config %s: %w", path, err)
	}
	p.Expected = p.Expected.Normalize()
	return p, nil
}

// applyFlags copies the explicitly set flags over the processor options,
// so that they take precedence over the config file.
func applyFlags(p *fabric.Processor) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "n":
			p.GridSize = *gridSize
		case "err":
			p.Tolerance = *tolerance
		case "mode":
			p.Mode, err = fabric.ParseMode(*mode)
		case "expected":
			p.Expected, err = parseEigen(*expected)
		case "levels":
			p.Levels = *levels
		case "size":
			p.Size = *size
		case "width":
			p.LineWidth = *lineWidth
		case "radius":
			p.PointRadius = *radius
		case "cmap":
			p.Colormap = *colormap
		case "nolabels":
			p.Labels = !*noLabels
		case "workers":
			p.Workers = *workers
		}
	})
	return err
}

// parseEigen parses comma separated eigenvalues into a normalized triplet.
func parseEigen(s string) (fabric.Eigen, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fabric.Eigen{}, fmt.Errorf("expected three eigenvalues, got %q", s)
	}
	var v [3]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fabric.Eigen{}, fmt.Errorf("invalid eigenvalue %q: %w", part, err)
		}
		v[i] = x
	}
	return fabric.Eigen{E1: v[0], E2: v[1], E3: v[2]}.Normalize(), nil
}

// readSource loads the records from a file or an URL.
// An empty source plots the density field alone.
func readSource(ctx context.Context, src string, logger *slog.Logger) ([]fabric.Record, error) {
	if src == "" {
		return nil, nil
	}
	var r io.ReadCloser
	if utils.IsURL(src) {
		logger.Debug("downloading records", "url", src)
		f, err := utils.DownloadFile(ctx, src)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
		r = f
	} else {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("unable to open source file: %w", err)
		}
		r = f
	}
	defer r.Close()

	delim := []rune(*delimiter)
	if *delimiter == `\t` || *delimiter == "tab" {
		delim = []rune{'\t'}
	}
	if len(delim) != 1 {
		return nil, fmt.Errorf("invalid delimiter %q", *delimiter)
	}
	recs, err := fabric.ReadRecords(r, fabric.WithDelimiter(delim[0]))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", src, err)
	}
	logger.Debug("records loaded", "count", len(recs))
	return recs, nil
}

func savePNG(path string, img image.Image) error {
	fq, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := png.Encode(fq, img); err != nil {
		fq.Close()
		return err
	}
	return fq.Close()
}

func saveGrid(path string, g *fabric.Grid) error {
	fq, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create grid file: %w", err)
	}
	if err := fabric.WriteGrid(fq, g); err != nil {
		fq.Close()
		return err
	}
	return fq.Close()
}
