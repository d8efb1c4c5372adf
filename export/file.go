package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteFile runs exportFn against an in-memory buffer and writes the
// result to path. The file is written even when exportFn reports a
// *RenderError, which is then passed through; any other export error
// aborts before the file is touched.
func WriteFile(path string, exportFn func(w io.Writer) error) error {
	var buf bytes.Buffer
	err := exportFn(&buf)
	var rerr *RenderError
	if err != nil && !errors.As(err, &rerr) {
		return err
	}
	if werr := os.WriteFile(path, buf.Bytes(), 0o644); werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return err
}
