package sketch

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultSource parses the embedded fallback font once, on first use.
var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFont returns the embedded Go Regular font source. It is the face
// every canvas starts with, so sketches render text without any font
// files on disk.
func DefaultFont() (*text.FontSource, error) {
	return defaultSource()
}

// LoadFont loads a TTF or OTF font file for use with Canvas.SetFont.
func LoadFont(path string) (*text.FontSource, error) {
	return text.NewFontSourceFromFile(path)
}
