package batch

import (
	"fmt"
	"path"
	"strings"
)

// EventKind is the type of an Event.
type EventKind int

// The events are emitted in this order for each container, with any number of
// EventError after EventStarted.
const (
	EventStarted EventKind = iota + 1
	EventExtracted
	EventNoResources
	EventError
	EventComplete
)

// Event reports the progress of a batch.
type Event struct {
	Kind   EventKind
	Path   string // empty for EventComplete and batch-level errors
	Format string
	Count  int   // number of resources for EventExtracted
	DryRun bool  // EventExtracted only counted the resources
	Err    error // for EventError
}

func (e Event) String() string {
	name := path.Base(strings.ReplaceAll(e.Path, "\\", "/"))
	switch e.Kind {
	case EventStarted:
		return fmt.Sprintf("processing [%s]: %s", strings.ToUpper(e.Format), name)
	case EventExtracted:
		if e.DryRun {
			return fmt.Sprintf("found %d textures in %s (dry run)", e.Count, name)
		}
		return fmt.Sprintf("extracted %d textures from %s", e.Count, name)
	case EventNoResources:
		return fmt.Sprintf("no textures found in %s", name)
	case EventError:
		if e.Path == "" {
			return fmt.Sprintf("error: %v", e.Err)
		}
		return fmt.Sprintf("error: %s: %v", name, e.Err)
	case EventComplete:
		return "all tasks completed"
	default:
		return fmt.Sprintf("Event(%d)", int(e.Kind))
	}
}
