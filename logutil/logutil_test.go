// logutil_test.go - Tests fuer die Logging-Hilfsfunktionen
//
// Testet Level-Filterung, TRACE-Benennung und Source-Kuerzung.
package logutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelTrace)

	logger.Log(context.Background(), LevelTrace, "alignment details", "rows", 4)

	out := buf.String()
	if !strings.Contains(out, "level=TRACE") {
		t.Errorf("Ausgabe enthaelt kein level=TRACE: %q", out)
	}
	if !strings.Contains(out, "rows=4") {
		t.Errorf("Ausgabe enthaelt Attribut nicht: %q", out)
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Debug("sollte nicht erscheinen")

	if buf.Len() != 0 {
		t.Errorf("Debug-Ausgabe trotz Info-Level: %q", buf.String())
	}
}

func TestNewLoggerShortensSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Info("hello")

	out := buf.String()
	if strings.Contains(out, "/") && strings.Contains(out, "logutil_test.go") {
		// Source muss auf den Basisnamen gekuerzt sein
		if strings.Contains(out, "/logutil_test.go") {
			t.Errorf("Source nicht gekuerzt: %q", out)
		}
	}
}
