package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Haisairova-Official/SVO-Extractor/container"
	_ "github.com/Haisairova-Official/SVO-Extractor/container/afb"
	_ "github.com/Haisairova-Official/SVO-Extractor/container/svo"
	"github.com/Haisairova-Official/SVO-Extractor/extract"
	"github.com/Haisairova-Official/SVO-Extractor/scanlib"
	"github.com/spf13/pflag"
)

func main() {
	format := pflag.StringP("format", "f", "", "the container format (default: from the extension)")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "scandump dumps the markers, names, and textures found in a container")
		fmt.Fprintln(os.Stderr, "Usage: scandump [--format FORMAT] CONTAINER_FILE")
		os.Exit(1)
	}
	fn := pflag.Arg(0)

	var f container.Format
	var ok bool
	if *format != "" {
		f, ok = container.GetFormat(*format)
	} else {
		f, ok = container.ForPath(fn)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown format for %s\n", fn)
		os.Exit(1)
	}

	buf, err := ioutil.ReadFile(fn)
	if err != nil {
		panic(err)
	}

	fmt.Printf("file:   %s (%d bytes)\n", fn, len(buf))
	fmt.Printf("format: %s\n\n", f.Name)

	markers := scanlib.FindMarkers(buf, f.Magic)
	fmt.Printf("markers (%d):\n", len(markers))
	for _, m := range markers {
		fmt.Printf("  0x%08X\n", m)
	}

	if f.UseNameTable {
		names := scanlib.FindCandidateNames(buf, f.ImageExt)
		fmt.Printf("\nnames (%d):\n", len(names))
		for i, n := range names {
			fmt.Printf("  %3d %s\n", i, n)
		}
	}

	items := extract.Plan(buf, f, nil)
	fmt.Printf("\ntextures (%d) -> %s/:\n", len(items), extract.OutputDir(fn))
	for _, it := range items {
		fmt.Printf("  %3d 0x%08X-0x%08X %10d %s\n", it.Index, it.Start, it.End, it.Len(), it.Name)
	}
	os.Exit(0)
}
