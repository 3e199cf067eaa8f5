// Package locale translates user-facing strings. Unknown strings are
// returned unchanged, so English needs no catalogue entries.
package locale

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

var (
	catalogue = gotext.NewPo()
	language  = "en"
)

// Load installs the catalogue for lang from fsys (<lang>.po). A missing
// catalogue falls back to untranslated strings and is not an error.
func Load(fsys fs.FS, lang string) error {
	data, err := fs.ReadFile(fsys, lang+".po")
	if errors.Is(err, fs.ErrNotExist) {
		catalogue = gotext.NewPo()
		language = lang
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalogue %s: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(data)
	catalogue = po
	language = lang
	return nil
}

// Get translates s, formatting with vars when given
func Get(s string, vars ...interface{}) string {
	return catalogue.Get(s, vars...)
}

// Language returns the active language code
func Language() string {
	return language
}
