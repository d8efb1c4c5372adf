// Command vgexport-demo exports the built-in demo panel to EPS, SVG and
// PDF files, exercising the same compositing and page-transform path an
// application would use for its own panels.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/vgexport/binding"
	"github.com/ByLCY/vgexport/export"
	"github.com/ByLCY/vgexport/export/eps"
	"github.com/ByLCY/vgexport/export/pdf"
	"github.com/ByLCY/vgexport/export/svg"
	"github.com/ByLCY/vgexport/panel"
	"github.com/ByLCY/vgexport/vector"
)

func main() {
	output := flag.String("out", "output", "output directory")
	formats := flag.String("format", "eps,svg,pdf", "comma-separated list of formats to export")
	title := flag.String("title", "Vector Graphics Export Demo", "document title (supports ${path} placeholders)")
	creator := flag.String("creator", "Saved from vgexport-demo", "document creator/author")
	page := flag.String("page", "letter", "page size: letter|legal|tabloid|a3|a4|a5[-landscape] or <w>x<h>[pt|mm|cm|in]")
	colorMode := flag.String("color", "rgb", "color mode: rgb or grayscale")
	textMode := flag.String("text", "vector", "text mode: vector or native")
	dataJSON := flag.String("data", "", "JSON data bound to ${path} placeholders in the title")
	flag.Parse()

	var data any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
	}

	opts, err := buildOptions(*title, *creator, *page, *colorMode, *textMode, data)
	if err != nil {
		log.Fatalf("invalid options: %v", err)
	}

	if err := run(*output, strings.Split(*formats, ","), opts); err != nil {
		log.Fatalf("export failed: %v", err)
	}
}

func buildOptions(title, creator, page, colorMode, textMode string, data any) (export.Options, error) {
	opts := export.Options{
		Title:   binding.Interpolate(title, data),
		Creator: binding.Interpolate(creator, data),
	}

	var err error
	opts.PageWidth, opts.PageHeight, err = vector.ParsePageSize(page)
	if err != nil {
		return opts, err
	}

	switch colorMode {
	case "rgb", "":
		opts.ColorMode = vector.ColorModeRGB
	case "grayscale", "gray":
		opts.ColorMode = vector.ColorModeGrayscale
	default:
		return opts, fmt.Errorf("unknown color mode %q", colorMode)
	}

	switch textMode {
	case "vector", "":
		opts.TextMode = vector.TextModeVector
	case "native":
		opts.TextMode = vector.TextModeNative
	default:
		return opts, fmt.Errorf("unknown text mode %q", textMode)
	}
	return opts, nil
}

// run exports the demo panel once per requested format.
func run(outDir string, formats []string, opts export.Options) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	demo := panel.NewDemo()
	demo.SetTitle(opts.Title)

	for _, format := range formats {
		format = strings.ToLower(strings.TrimSpace(format))
		if format == "" {
			continue
		}
		path := filepath.Join(outDir, "demo."+format)

		var err error
		switch format {
		case "eps":
			err = eps.ExportFile(path, demo, opts)
		case "svg":
			err = svg.ExportFile(path, demo, opts)
		case "pdf":
			err = pdf.ExportFile(path, demo, opts)
		default:
			return fmt.Errorf("unknown format %q", format)
		}

		var rerr *export.RenderError
		if errors.As(err, &rerr) {
			log.Printf("%s: partial render, document written anyway: %v", path, rerr)
		} else if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
