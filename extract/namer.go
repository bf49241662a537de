package extract

import (
	"fmt"

	"github.com/Haisairova-Official/SVO-Extractor/container"
	"github.com/Haisairova-Official/SVO-Extractor/scanlib"
)

// Namer chooses the output filename of a resource based on its index in the
// container.
type Namer interface {
	// NameFor returns the filename for the resource, or false if it doesn't
	// know it.
	NameFor(index int) (string, bool)
}

// PositionalNamer names resource i with the i-th name. It assumes the name
// table lists the resources in the same order as they are stored, which is not
// guaranteed by anything in the container.
type PositionalNamer []string

// NameFor implements Namer.
func (p PositionalNamer) NameFor(index int) (string, bool) {
	if index < 0 || index >= len(p) {
		return "", false
	}
	return p[index], true
}

// NoNamer never knows a name.
type NoNamer struct{}

// NameFor implements Namer.
func (NoNamer) NameFor(int) (string, bool) {
	return "", false
}

// FormatNamer returns the default Namer for a container in the specified
// format.
func FormatNamer(buf []byte, f container.Format) Namer {
	if !f.UseNameTable {
		return NoNamer{}
	}
	names := scanlib.FindCandidateNames(buf, f.ImageExt)
	Log("found %d candidate names\n", len(names))
	return PositionalNamer(names)
}

// FallbackName returns the name used for a resource without a known name.
func FallbackName(f container.Format, index int) string {
	return fmt.Sprintf("%s_%03d.%s", f.FallbackPrefix, index, f.ImageExt)
}
