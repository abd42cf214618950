package telemetry

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestNewLoggerWritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Warn().Str("pack", "DataLocal").Msg("schema mismatch")

	if !strings.Contains(buf.String(), "schema mismatch") {
		t.Fatalf("want log message in output, got %q", buf.String())
	}
}

func TestNewLoggerDefaultsToStderr(t *testing.T) {
	// Passing nil must not panic; it should fall back to os.Stderr.
	logger := NewLogger(nil)
	logger.Info().Msg("noop")
}

func TestEventStringsAreJSON(t *testing.T) {
	events := []fmt.Stringer{
		EventPackDirty{Pack: "DataLocal"},
		EventRecordApplied{Record: "stats", Key: "unit001"},
		EventModImported{Manifest: "mymod.yaml", Records: 3},
		EventFEBImported{Path: "bundle.feb", Units: 2},
	}
	for _, e := range events {
		s := e.String()
		if !strings.HasPrefix(s, "{") {
			t.Fatalf("want JSON object, got %q", s)
		}
	}
}

func TestListenerReceivesEvents(t *testing.T) {
	var received []string
	var l Listener = func(e fmt.Stringer) {
		received = append(received, e.String())
	}
	l(EventPackDirty{Pack: "ImageDataLocal"})
	if len(received) != 1 {
		t.Fatalf("want 1 event received, got %d", len(received))
	}
}
