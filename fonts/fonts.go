// Package fonts provides the built-in font family used by the demo
// panel, backed by the Go fonts shipped with golang.org/x/image so that
// exports never depend on fonts installed on the host.
package fonts

import (
	"fmt"
	"sync"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	once   sync.Once
	family *canvas.FontFamily
	err    error
)

// Family returns the built-in sans-serif family with regular, bold and
// italic styles loaded. The family is loaded once and shared; font
// faces derived from it are cheap.
func Family() (*canvas.FontFamily, error) {
	once.Do(func() {
		f := canvas.NewFontFamily("Go")
		for _, style := range []struct {
			data  []byte
			style canvas.FontStyle
		}{
			{goregular.TTF, canvas.FontRegular},
			{gobold.TTF, canvas.FontBold},
			{goitalic.TTF, canvas.FontItalic},
		} {
			if lerr := f.LoadFont(style.data, 0, style.style); lerr != nil {
				err = fmt.Errorf("load built-in font: %w", lerr)
				return
			}
		}
		family = f
	})
	return family, err
}
