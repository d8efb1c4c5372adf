// Package eps exports renderable sources to Encapsulated PostScript.
// PostScript only supports single-byte encodings at the document level,
// so the output is plain UTF-8 text with title metadata reduced to one
// DSC comment line.
package eps

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/canvas/renderers/ps"

	"github.com/ByLCY/vgexport/export"
	"github.com/ByLCY/vgexport/vector"
)

// Export replays src and writes the EPS document to w. A *RenderError
// from a partial render is returned after the document has been
// written; sink or serialization failures take precedence.
func Export(w io.Writer, src vector.Source, opts export.Options) error {
	opts = opts.WithDefaults()

	// The PS backend copies its dimensions verbatim into %%BoundingBox
	// and emits coordinates in canvas units, so the canvas is built in
	// points here, not the mm the other backends convert from.
	c, renderErr := export.RenderSized(src, opts, opts.PageWidth, opts.PageHeight)
	if c == nil {
		return renderErr
	}

	var buf bytes.Buffer
	psw := ps.New(&buf, opts.PageWidth, opts.PageHeight,
		&ps.Options{Format: ps.EncapsulatedPostScript})
	c.RenderTo(psw)
	if err := psw.Close(); err != nil {
		return fmt.Errorf("eps: close document: %w", err)
	}

	if _, err := w.Write(withHeaderComments(buf.Bytes(), opts.Title, opts.Creator)); err != nil {
		return fmt.Errorf("eps: write document: %w", err)
	}
	return renderErr
}

// ExportFile exports src to the EPS file at path.
func ExportFile(path string, src vector.Source, opts export.Options) error {
	return export.WriteFile(path, func(w io.Writer) error {
		return Export(w, src, opts)
	})
}

// withHeaderComments applies title and creator metadata to the DSC
// header. A %%Title comment is inserted after the %!PS-Adobe signature
// line. The backend already advertises itself in a %%Creator comment;
// a configured creator replaces that line so the header carries exactly
// one. Empty values leave the header untouched.
func withHeaderComments(doc []byte, title, creator string) []byte {
	if title == "" && creator == "" {
		return doc
	}
	creatorTag := []byte("%%Creator:")
	hasCreator := bytes.Contains(doc, creatorTag)

	var out bytes.Buffer
	out.Grow(len(doc) + 64)
	for i, line := range bytes.SplitAfter(doc, []byte("\n")) {
		if creator != "" && bytes.HasPrefix(line, creatorTag) {
			fmt.Fprintf(&out, "%%%%Creator: %s\n", dscValue(creator))
			continue
		}
		out.Write(line)
		if i != 0 {
			continue
		}
		if title != "" {
			fmt.Fprintf(&out, "%%%%Title: %s\n", dscValue(title))
		}
		if creator != "" && !hasCreator {
			fmt.Fprintf(&out, "%%%%Creator: %s\n", dscValue(creator))
		}
	}
	return out.Bytes()
}

// dscValue keeps a metadata value on a single comment line.
func dscValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
