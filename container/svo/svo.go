// Package svo registers the SVO texture container format. Textures in SVO
// containers run from one DDS header to the next and have no names.
package svo

import (
	"github.com/Haisairova-Official/SVO-Extractor/container"
	"github.com/Haisairova-Official/SVO-Extractor/scanlib"
)

// Name is the name the format is registered as.
const Name = "svo"

func init() {
	container.RegisterFormat(container.Format{
		Name:           Name,
		Extensions:     []string{".svo"},
		Magic:          scanlib.DDSMagic,
		FallbackPrefix: "tex",
		ImageExt:       "dds",
	})
}
