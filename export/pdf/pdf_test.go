package pdf

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

func TestExportWritesPDFDocument(t *testing.T) {
	demo := panel.NewDemo()
	demo.SetTitle("Fake PDF Title")

	var buf bytes.Buffer
	err := Export(&buf, demo, export.Options{Title: "Fake PDF Title", Creator: "pdf_test"})
	require.NoError(t, err)

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, "%PDF-"), "missing PDF signature: %.20q", doc)
	assert.Contains(t, doc, "%%EOF")
}

func TestExportEmptyMetadataSucceeds(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, panel.NewDemo(), export.Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestExportPartialRenderStillWrites(t *testing.T) {
	cause := errors.New("region failed")
	var buf bytes.Buffer
	err := Export(&buf, failSource{cause: cause}, export.Options{})

	var rerr *export.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, cause)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "partial document not written")
}
