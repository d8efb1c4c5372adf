// Package svg exports renderable sources to Scalable Vector Graphics.
// SVG uses a top-left coordinate origin unlike EPS and PDF; the flip is
// handled inside the renderer backend, so sources draw y-up like
// everywhere else. Output is UTF-8.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	canvassvg "github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/vgexport/export"
	"github.com/ByLCY/vgexport/vector"
)

// DefaultTitle is used when no document title is provided.
const DefaultTitle = "The SVG Document"

// Export replays src and writes the SVG document to w. A *RenderError
// from a partial render is returned after the document has been
// written; sink or serialization failures take precedence.
func Export(w io.Writer, src vector.Source, opts export.Options) error {
	opts = opts.WithDefaults()
	opts.PageWidth, opts.PageHeight = pageSize(opts.PageWidth, opts.PageHeight)

	c, renderErr := export.Render(src, opts)
	if c == nil {
		return renderErr
	}

	var buf bytes.Buffer
	svgw := canvassvg.New(&buf, opts.PageWidth*vector.PtToMm, opts.PageHeight*vector.PtToMm, nil)
	c.RenderTo(svgw)
	if err := svgw.Close(); err != nil {
		return fmt.Errorf("svg: close document: %w", err)
	}

	if _, err := w.Write(withTitle(buf.Bytes(), opts.Title)); err != nil {
		return fmt.Errorf("svg: write document: %w", err)
	}
	return renderErr
}

// ExportFile exports src to the SVG file at path.
func ExportFile(path string, src vector.Source, opts export.Options) error {
	return export.WriteFile(path, func(w io.Writer) error {
		return Export(w, src, opts)
	})
}

// pageSize rounds the page dimensions up to whole points so that
// nothing gets clipped by the higher-precision transforms applied
// during transcoding.
func pageSize(width, height float64) (float64, float64) {
	return math.Ceil(width), math.Ceil(height)
}

// withTitle inserts a <title> element right after the opening <svg>
// tag. An empty title gets the fixed default.
func withTitle(doc []byte, title string) []byte {
	if title == "" {
		title = DefaultTitle
	}
	end := bytes.IndexByte(doc, '>')
	if end < 0 {
		return doc
	}
	element := "<title>" + xmlEscape(title) + "</title>"
	out := make([]byte, 0, len(doc)+len(element))
	out = append(out, doc[:end+1]...)
	out = append(out, element...)
	return append(out, doc[end+1:]...)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }
