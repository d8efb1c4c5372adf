package eps

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vgexport/export"
	"github.com/ByLCY/vgexport/panel"
	"github.com/ByLCY/vgexport/vector"
)

type failSource struct{ cause error }

func (s failSource) Bounds() vector.Bounds { return vector.Bounds{MaxX: 100, MaxY: 100} }

func (s failSource) Render(ctx *vector.Context) error {
	ctx.SetFillColor(canvas.Black)
	ctx.DrawPath(0, 0, canvas.Rectangle(40, 40))
	return s.cause
}

func TestExportWritesEPSDocument(t *testing.T) {
	demo := panel.NewDemo()
	demo.SetTitle("Fake EPS Title")

	var buf bytes.Buffer
	err := Export(&buf, demo, export.Options{Title: "Fake EPS Title", Creator: "eps_test"})
	require.NoError(t, err)

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, "%!PS-Adobe"), "missing PostScript signature: %.40q", doc)
	assert.Contains(t, doc, "%%Title: Fake EPS Title")
	assert.Contains(t, doc, "%%Creator: eps_test")
	assert.Equal(t, 1, strings.Count(doc, "%%Creator:"), "backend Creator line must be replaced, not doubled")
}

func TestExportEmptyTitlePassesThrough(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, panel.NewDemo(), export.Options{})
	require.NoError(t, err)

	doc := buf.String()
	assert.NotContains(t, doc, "%%Title:")
	// With no creator configured the backend's own Creator comment stays.
	assert.Contains(t, doc, "%%Creator: tdewolff/canvas")
}

func TestExportBoundingBoxInPoints(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, panel.NewDemo(), export.Options{})
	require.NoError(t, err)

	// Default letter page, 612×792 pt.
	assert.Contains(t, buf.String(), "%%BoundingBox: 0 0 612 792")
}

func TestExportPartialRenderStillWrites(t *testing.T) {
	cause := errors.New("region failed")
	var buf bytes.Buffer
	err := Export(&buf, failSource{cause: cause}, export.Options{Title: "Partial"})

	var rerr *export.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, cause)
	assert.True(t, strings.HasPrefix(buf.String(), "%!PS-Adobe"), "partial document not written")
}

func TestWithHeaderComments(t *testing.T) {
	doc := []byte("%!PS-Adobe-3.0 EPSF-3.0\n%%Creator: tdewolff/canvas\n%%BoundingBox: 0 0 612 792\n")

	got := string(withHeaderComments(doc, "A\nB", "tool"))
	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "%!PS-Adobe-3.0 EPSF-3.0", lines[0])
	assert.Equal(t, "%%Title: A B", lines[1], "newlines must be flattened to one comment line")
	assert.Equal(t, "%%Creator: tool", lines[2], "configured creator replaces the backend's")
	assert.Equal(t, "%%BoundingBox: 0 0 612 792", lines[3])
	assert.Equal(t, 1, strings.Count(got, "%%Creator:"))

	assert.Equal(t, string(doc), string(withHeaderComments(doc, "", "")), "no metadata, no edit")

	// No backend Creator line: the configured one is inserted after the
	// signature instead.
	bare := []byte("%!PS-Adobe-3.0 EPSF-3.0\n%%BoundingBox: 0 0 10 10\n")
	got = string(withHeaderComments(bare, "", "tool"))
	assert.Contains(t, got, "%%Creator: tool")
}
