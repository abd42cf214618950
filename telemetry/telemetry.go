// Package telemetry carries the toolkit's two observability surfaces:
// a zerolog.Logger for leveled diagnostics, and a struct-event bus for
// structured progress reporting — adapted from the teacher's
// manifest.Listener/fmt.Stringer event pattern.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console-rendered zerolog.Logger writing to w
// (typically os.Stderr), matching the corpus's ConsoleWriter setup.
func NewLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}

// Listener is a callback invoked with each event the pipeline emits.
type Listener func(fmt.Stringer)

func jsonString(v interface{}) string {
	b, _ := json.Marshal(map[string]interface{}{
		fmt.Sprintf("%T", v): v,
	})
	return string(b)
}

// EventPackDirty is emitted when a pack's contents changed and will be
// re-emitted on save.
type EventPackDirty struct {
	Pack string `json:"pack,omitempty"`
}

func (e EventPackDirty) String() string { return jsonString(e) }

// EventRecordApplied is emitted when a single record edit (a stat row, a
// localizable string, ...) has been applied to the catalog.
type EventRecordApplied struct {
	Record string `json:"record,omitempty"`
	Key    string `json:"key,omitempty"`
}

func (e EventRecordApplied) String() string { return jsonString(e) }

// EventModImported is emitted when a mod manifest has been fully applied.
type EventModImported struct {
	Manifest string `json:"manifest,omitempty"`
	Records  int    `json:"records,omitempty"`
}

func (e EventModImported) String() string { return jsonString(e) }

// EventFEBImported is emitted when a foreign bundle (FEB) import has
// completed.
type EventFEBImported struct {
	Path  string `json:"path,omitempty"`
	Units int    `json:"units,omitempty"`
}

func (e EventFEBImported) String() string { return jsonString(e) }
