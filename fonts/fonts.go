// Package fonts exposes the typefaces built into the library. The Latin
// Modern family ships embedded so rendering never depends on system fonts.
package fonts

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"

	"github.com/plt-rs/plt/draw"
)

// Load returns the raw TTF bytes for a font name.
func Load(name draw.FontName) ([]byte, error) {
	switch name {
	case draw.FontRoman:
		return lmroman10regular.TTF, nil
	case draw.FontSans:
		return lmsans10regular.TTF, nil
	default:
		return nil, fmt.Errorf("unknown font %s", name)
	}
}
