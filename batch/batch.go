// Package batch runs the extractor over every container in a directory tree.
package batch

import (
	"context"
	"os"
	"sync"

	"github.com/Haisairova-Official/SVO-Extractor/container"
	"github.com/Haisairova-Official/SVO-Extractor/extract"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Log is used to log debugging messages.
var Log = func(format string, a ...interface{}) {}

// ErrNoContainers is reported if there is nothing to extract.
var ErrNoContainers = errors.New("no containers found")

// Summary counts the results of a batch.
type Summary struct {
	Files       int // containers processed
	Extracted   int // resources written (or found, for a dry run)
	Failed      int // resources which could not be written
	Empty       int // containers without any resources
	FailedFiles int // containers which could not be extracted at all
}

type job struct {
	path   string
	format container.Format
}

// Find returns the containers under root in in which have one of the enabled
// formats, in lexical order.
func Find(in billy.Filesystem, root string, c *Config) ([]string, error) {
	var files []string
	err := util.Walk(in, root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return nil
		}
		if _, ok := c.format(path); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not walk %s", root)
	}
	return files, nil
}

// Run extracts every container under c.In in in to c.Out in out. Progress is
// reported to fn, which is never called concurrently. Errors for individual
// containers are reported as events and do not stop the batch. The returned
// error is only set if the input could not be listed or ctx was cancelled,
// which is only checked between containers. Containers with the same output
// directory are never extracted concurrently.
func Run(ctx context.Context, c *Config, in, out billy.Filesystem, fn func(Event)) (*Summary, error) {
	var mu sync.Mutex
	sum := &Summary{}
	report := func(e Event, update func(*Summary)) {
		mu.Lock()
		defer mu.Unlock()
		if update != nil {
			update(sum)
		}
		Log("event: %s\n", e)
		if fn != nil {
			fn(e)
		}
	}

	Log("searching for containers in %s (formats: %v)\n", c.In, c.Formats)
	files, err := Find(in, c.In, c)
	if err != nil {
		return sum, err
	}
	if len(files) == 0 {
		report(Event{Kind: EventError, Err: ErrNoContainers}, nil)
		report(Event{Kind: EventComplete}, nil)
		return sum, nil
	}
	Log("found %d containers\n", len(files))

	dst, err := out.Chroot(c.Out)
	if err != nil {
		return sum, errors.Wrapf(err, "could not open output directory %s", c.Out)
	}

	jobs := c.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, group := range groupByOutputDir(files) {
		if gctx.Err() != nil {
			break
		}
		var js []job
		for _, path := range group {
			f, _ := c.format(path)
			js = append(js, job{path, f})
		}
		g.Go(func() error {
			for _, j := range js {
				if gctx.Err() != nil {
					return nil
				}
				runOne(in, dst, j, c.DryRun, report)
			}
			return nil
		})
	}
	g.Wait()

	report(Event{Kind: EventComplete}, nil)
	return sum, ctx.Err()
}

// groupByOutputDir groups the containers which extract to the same directory,
// keeping the order of the first container of each group and of the
// containers within a group. The containers in a group must not be extracted
// concurrently.
func groupByOutputDir(files []string) [][]string {
	var groups [][]string
	idx := map[string]int{}
	for _, path := range files {
		dir := extract.OutputDir(path)
		if i, ok := idx[dir]; ok {
			groups[i] = append(groups[i], path)
			continue
		}
		idx[dir] = len(groups)
		groups = append(groups, []string{path})
	}
	return groups
}

func runOne(in, dst billy.Filesystem, j job, dryRun bool, report func(Event, func(*Summary))) {
	report(Event{Kind: EventStarted, Path: j.path, Format: j.format.Name}, func(s *Summary) {
		s.Files++
	})

	o, err := extract.ExtractFile(in, j.path, dst, j.format, extract.Options{DryRun: dryRun})
	if err != nil {
		report(Event{Kind: EventError, Path: j.path, Format: j.format.Name, Err: err}, func(s *Summary) {
			s.FailedFiles++
		})
		return
	}

	for _, err := range o.Errors() {
		report(Event{Kind: EventError, Path: j.path, Format: j.format.Name, Err: err}, nil)
	}

	switch {
	case o.NoResources:
		report(Event{Kind: EventNoResources, Path: j.path, Format: j.format.Name}, func(s *Summary) {
			s.Empty++
		})
	case dryRun:
		report(Event{Kind: EventExtracted, Path: j.path, Format: j.format.Name, Count: len(o.Items), DryRun: true}, func(s *Summary) {
			s.Extracted += len(o.Items)
		})
	default:
		report(Event{Kind: EventExtracted, Path: j.path, Format: j.format.Name, Count: o.Written}, func(s *Summary) {
			s.Extracted += o.Written
			s.Failed += o.Failed
		})
	}
}
