// Package extract extracts the resources embedded in texture containers into
// standalone files.
package extract

import (
	"path"
	"strings"

	"github.com/Haisairova-Official/SVO-Extractor/container"
	"github.com/Haisairova-Official/SVO-Extractor/scanlib"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Log is used to log debugging messages.
var Log = func(format string, a ...interface{}) {}

// Item is a resource located in a container.
type Item struct {
	Index int
	Name  string
	scanlib.Chunk
	Err error // set if the resource could not be written
}

// Options changes the behaviour of Extract.
type Options struct {
	// Namer overrides the naming strategy of the format.
	Namer Namer
	// DryRun locates and names the resources without touching the
	// filesystem.
	DryRun bool
}

// Outcome is the result of extracting a single container.
type Outcome struct {
	// Dir is the output directory for the container. It is only created if
	// there is at least one resource.
	Dir         string
	Items       []Item
	Written     int
	Failed      int
	NoResources bool
}

// Errors returns the errors for the resources which could not be written.
func (o *Outcome) Errors() []error {
	var errs []error
	for _, it := range o.Items {
		if it.Err != nil {
			errs = append(errs, it.Err)
		}
	}
	return errs
}

// OutputDir returns the name of the output directory for a container. It is
// the base name with all dots replaced so it can't be confused with a file.
func OutputDir(srcName string) string {
	return strings.ReplaceAll(path.Base(strings.ReplaceAll(srcName, "\\", "/")), ".", "_")
}

// Plan locates and names the resources in a container without extracting
// them. If namer is nil, the format's default is used.
func Plan(buf []byte, f container.Format, namer Namer) []Item {
	markers := scanlib.FindMarkers(buf, f.Magic)
	Log("found %d markers\n", len(markers))
	if len(markers) == 0 {
		return nil
	}
	if namer == nil {
		namer = FormatNamer(buf, f)
	}
	chunks := scanlib.ResolveChunks(markers, buf, f.Terminator)
	items := make([]Item, len(chunks))
	for i, c := range chunks {
		name, ok := namer.NameFor(i)
		if !ok || name == "" {
			name = FallbackName(f, i)
		}
		items[i] = Item{Index: i, Name: name, Chunk: c}
	}
	return items
}

// Extract writes each resource in buf to its own file in a directory named
// after srcName under the root of out. If the directory can't be created, an
// *Error is returned and nothing is extracted. Errors writing individual
// resources are recorded in the Outcome and do not stop the others from being
// written.
func Extract(out billy.Filesystem, srcName string, buf []byte, f container.Format, opts Options) (*Outcome, error) {
	o := &Outcome{
		Dir:   OutputDir(srcName),
		Items: Plan(buf, f, opts.Namer),
	}
	if len(o.Items) == 0 {
		Log("no resources in %s\n", srcName)
		o.NoResources = true
		return o, nil
	}
	if opts.DryRun {
		Log("dry run, not writing %d resources\n", len(o.Items))
		return o, nil
	}

	Log("creating output directory %s\n", o.Dir)
	if err := out.MkdirAll(o.Dir, 0755); err != nil {
		return o, &Error{Kind: ErrDirectoryCreate, Path: o.Dir, Index: -1, Err: err}
	}

	for i := range o.Items {
		it := &o.Items[i]
		fn := out.Join(o.Dir, it.Name)
		Log("  writing %s [%d:%d] (%d bytes)\n", fn, it.Start, it.End, it.Len())
		if err := util.WriteFile(out, fn, it.Bytes(buf), 0644); err != nil {
			Log("  error: %v\n", err)
			it.Err = &Error{Kind: ErrChunkWrite, Path: fn, Index: it.Index, Err: err}
			o.Failed++
			continue
		}
		o.Written++
	}
	return o, nil
}

// ExtractFile reads a container from in and extracts it with Extract.
func ExtractFile(in billy.Filesystem, srcPath string, out billy.Filesystem, f container.Format, opts Options) (*Outcome, error) {
	Log("reading %s\n", srcPath)
	buf, err := util.ReadFile(in, srcPath)
	if err != nil {
		return nil, &Error{Kind: ErrSourceRead, Path: srcPath, Index: -1, Err: err}
	}
	Log("read %d bytes\n", len(buf))
	return Extract(out, srcPath, buf, f, opts)
}
