package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggchart/internal/config"
)

func TestWriteCharts(t *testing.T) {
	for _, format := range []string{config.FormatSVG, config.FormatPNG} {
		t.Run(format, func(t *testing.T) {
			cfg := config.Default()
			cfg.Format = format
			cfg.OutDir = filepath.Join(t.TempDir(), "out")

			paths, err := writeCharts(cfg)
			if err != nil {
				t.Fatalf("writeCharts: %v", err)
			}
			if len(paths) != 2 {
				t.Fatalf("paths = %v, want 2", paths)
			}
			for _, p := range paths {
				info, err := os.Stat(p)
				if err != nil || info.Size() == 0 {
					t.Errorf("%s: %v", p, err)
				}
				if !strings.HasSuffix(p, "."+format) {
					t.Errorf("%s: wrong extension", p)
				}
			}
			if _, err := os.Stat(filepath.Join(cfg.OutDir, "index.html")); err != nil {
				t.Errorf("index.html: %v", err)
			}
		})
	}
}
