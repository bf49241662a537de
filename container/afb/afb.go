// Package afb registers the AFB texture container format. AFB containers end
// the texture data with a POF block and carry a table with the original
// texture filenames.
package afb

import (
	"github.com/Haisairova-Official/SVO-Extractor/container"
	"github.com/Haisairova-Official/SVO-Extractor/scanlib"
)

// Name is the name the format is registered as.
const Name = "afb"

func init() {
	container.RegisterFormat(container.Format{
		Name:           Name,
		Extensions:     []string{".afb"},
		Magic:          scanlib.DDSMagic,
		Terminator:     scanlib.POFMagic,
		UseNameTable:   true,
		FallbackPrefix: "unknown",
		ImageExt:       "dds",
	})
}
