// Package container describes the texture container formats which can be
// extracted, and keeps a registry of them.
package container

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Format describes how the resources embedded in a container are located and
// named. All formats share the same scanning logic and only differ in this
// configuration.
type Format struct {
	// Name is the short name of the format (e.g. svo).
	Name string
	// Extensions are the lowercase file extensions (with the dot) of
	// containers in this format.
	Extensions []string
	// Magic marks the start of each embedded resource.
	Magic []byte
	// Terminator, if not empty, ends a resource early if it occurs before the
	// next Magic.
	Terminator []byte
	// UseNameTable enables recovering the original filenames of the resources
	// from the strings in the container.
	UseNameTable bool
	// FallbackPrefix is used to name resources without a recovered name.
	FallbackPrefix string
	// ImageExt is the extension (without the dot) of the extracted resources.
	ImageExt string
}

// Validate checks if the Format is usable.
func (f Format) Validate() error {
	switch {
	case f.Name == "":
		return errors.New("format name is empty")
	case len(f.Extensions) == 0:
		return errors.Errorf("format %s: no extensions", f.Name)
	case len(f.Magic) == 0:
		return errors.Errorf("format %s: magic is empty", f.Name)
	case f.FallbackPrefix == "":
		return errors.Errorf("format %s: fallback prefix is empty", f.Name)
	case f.ImageExt == "":
		return errors.Errorf("format %s: image extension is empty", f.Name)
	}
	for _, ext := range f.Extensions {
		if !strings.HasPrefix(ext, ".") || ext != strings.ToLower(ext) {
			return errors.Errorf("format %s: extension %q must be lowercase and start with a dot", f.Name, ext)
		}
	}
	return nil
}

var formats = map[string]Format{}

// RegisterFormat registers a format. It panics if the format is invalid, or if
// the name or one of the extensions is already taken.
func RegisterFormat(f Format) {
	if err := f.Validate(); err != nil {
		panic("attempt to register invalid format: " + err.Error())
	}
	if _, ok := formats[f.Name]; ok {
		panic("attempt to register duplicate format " + f.Name)
	}
	for _, ext := range f.Extensions {
		if o, ok := byExtension(ext); ok {
			panic("attempt to register format " + f.Name + " with extension " + ext + " already used by " + o.Name)
		}
	}
	formats[f.Name] = f.clone()
}

// clone copies the slices so the registered formats can't be changed through
// them.
func (f Format) clone() Format {
	f.Extensions = append([]string(nil), f.Extensions...)
	f.Magic = bytes.Clone(f.Magic)
	f.Terminator = bytes.Clone(f.Terminator)
	return f
}

// GetFormat gets a copy of a format.
func GetFormat(name string) (Format, bool) {
	f, ok := formats[name]
	if !ok {
		return f, false
	}
	return f.clone(), true
}

// GetFormats gets the names of all registered formats in sorted order.
func GetFormats() []string {
	f := []string{}
	for n := range formats {
		f = append(f, n)
	}
	sort.Strings(f)
	return f
}

// ForPath gets a copy of the format for a file based on its extension (which
// is not case-sensitive).
func ForPath(path string) (Format, bool) {
	f, ok := byExtension(strings.ToLower(filepath.Ext(path)))
	if !ok {
		return f, false
	}
	return f.clone(), true
}

func byExtension(ext string) (Format, bool) {
	if ext == "" {
		return Format{}, false
	}
	for _, f := range formats {
		for _, e := range f.Extensions {
			if e == ext {
				return f, true
			}
		}
	}
	return Format{}, false
}
