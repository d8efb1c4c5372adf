package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileKeepsPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.eps")
	want := &RenderError{Err: errors.New("half drawn")}

	err := WriteFile(path, func(w io.Writer) error {
		if _, werr := w.Write([]byte("document")); werr != nil {
			return werr
		}
		return want
	})

	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RenderError passed through", err)
	}
	data, rerr2 := os.ReadFile(path)
	if rerr2 != nil {
		t.Fatalf("document not written: %v", rerr2)
	}
	if string(data) != "document" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestWriteFileAbortsOnHardError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.eps")
	boom := errors.New("sink exploded")

	if err := WriteFile(path, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file must not be created when the export hard-fails")
	}
}
