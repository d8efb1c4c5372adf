// Package pdf exports renderable sources to PDF. Text encoding inside
// the document is owned by the backend (PDF strings are UTF-16
// compatible); title and creator metadata are passed through unmodified
// and may be empty.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	canvaspdf "github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/vgexport/export"
	"github.com/ByLCY/vgexport/vector"
)

// Export replays src and writes the PDF document to w. A *RenderError
// from a partial render is returned after the document has been
// written; sink or serialization failures take precedence.
func Export(w io.Writer, src vector.Source, opts export.Options) error {
	opts = opts.WithDefaults()

	c, renderErr := export.Render(src, opts)
	if c == nil {
		return renderErr
	}

	var buf bytes.Buffer
	pdfw := canvaspdf.New(&buf, opts.PageWidth*vector.PtToMm, opts.PageHeight*vector.PtToMm, nil)
	pdfw.SetInfo(opts.Title, "", "", opts.Creator, opts.Creator)
	c.RenderTo(pdfw)
	if err := pdfw.Close(); err != nil {
		return fmt.Errorf("pdf: close document: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("pdf: write document: %w", err)
	}
	return renderErr
}

// ExportFile exports src to the PDF file at path.
func ExportFile(path string, src vector.Source, opts export.Options) error {
	return export.WriteFile(path, func(w io.Writer) error {
		return Export(w, src, opts)
	})
}
