// Command ggchart renders the order block concentration charts to files,
// or serves them with live re-rendering.
//
// Usage:
//
//	ggchart [-format svg|png] [-out DIR] [-config FILE] [-serve ADDR] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/config"
	"github.com/gogpu/ggchart/internal/server"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/surface"

	_ "github.com/gogpu/ggchart/recording/backends/raster"
	_ "github.com/gogpu/ggchart/recording/backends/svg"
)

func main() {
	var (
		format     = flag.String("format", config.FormatSVG, "output format: svg or png")
		out        = flag.String("out", ".", "output directory")
		configPath = flag.String("config", "", "YAML configuration file")
		serve      = flag.String("serve", "", "serve the page on this address instead of writing files")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "out":
			cfg.OutDir = *out
		case "serve":
			cfg.Listen = *serve
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *serve != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		srv, err := server.New(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := srv.ListenAndServe(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	paths, err := writeCharts(cfg)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	for _, p := range paths {
		log.Printf("Chart saved to %s\n", p)
	}
}

// writeCharts renders both charts into cfg.OutDir and returns the paths.
func writeCharts(cfg config.Config) ([]string, error) {
	page := ggchart.NewPage(cfg.PageOptions()...)
	if err := cfg.Renderer().RenderAll(page); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", cfg.OutDir, err)
	}

	var paths []string
	for _, id := range page.IDs() {
		backend, err := recording.NewBackend(cfg.Backend())
		if err != nil {
			return nil, err
		}
		if err := page.Render(id, backend); err != nil {
			return nil, err
		}
		fb, ok := backend.(recording.FileBackend)
		if !ok {
			return nil, fmt.Errorf("backend %s cannot save files", cfg.Backend())
		}
		path := filepath.Join(cfg.OutDir, id+cfg.Extension())
		if err := fb.SaveToFile(path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, writeIndex(cfg, page)
}

// writeIndex writes an HTML page with the charts inlined next to them.
func writeIndex(cfg config.Config, page *surface.Page) error {
	f, err := os.Create(filepath.Join(cfg.OutDir, "index.html"))
	if err != nil {
		return err
	}
	if err := page.WriteHTML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
