// config.go - Konfigurationsfunktionen fuer den Sequence Aligner
//
// Dieses Modul enthaelt:
// - PadToken: Pad-Token-ID (SEQALIGN_PAD_TOKEN)
// - MaxPromptLen: Maximale Prompt-Laenge (SEQALIGN_MAX_PROMPT_LEN)
// - MaxObsLen: Maximale Observation-Laenge (SEQALIGN_MAX_OBS_LEN)
// - MaxStartLen: Maximale Start-Laenge (SEQALIGN_MAX_START_LEN)
// - ParallelThreshold: Zeilen-Schwelle fuer parallele Verarbeitung (SEQALIGN_PARALLEL)
// - LogLevel: Gibt Log-Level zurueck (SEQALIGN_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// PadToken gibt die Pad-Token-ID zurueck
// Konfigurierbar via SEQALIGN_PAD_TOKEN
// Default: 0
func PadToken() int32 {
	if s := Var("SEQALIGN_PAD_TOKEN"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 32); err == nil {
			return int32(n)
		}
		slog.Warn("invalid pad token, using default", "value", s, "default", 0)
	}
	return 0
}

// MaxPromptLen gibt die maximale Prompt-Laenge in Tokens zurueck
// Konfigurierbar via SEQALIGN_MAX_PROMPT_LEN
// Default: 4096
var MaxPromptLen = Int("SEQALIGN_MAX_PROMPT_LEN", 4096)

// MaxObsLen gibt die maximale Observation-Laenge in Tokens zurueck
// Konfigurierbar via SEQALIGN_MAX_OBS_LEN
// Default: 512
var MaxObsLen = Int("SEQALIGN_MAX_OBS_LEN", 512)

// MaxStartLen gibt die maximale Laenge des Start-Prompts zurueck
// Konfigurierbar via SEQALIGN_MAX_START_LEN
// Default: 2048
var MaxStartLen = Int("SEQALIGN_MAX_START_LEN", 2048)

// ParallelThreshold gibt die Zeilen-Anzahl zurueck, ab der Batch-Operationen
// ueber mehrere Goroutinen verteilt werden
// Konfigurierbar via SEQALIGN_PARALLEL
// Default: 256
var ParallelThreshold = Int("SEQALIGN_PARALLEL", 256)

// Debug zeigt an ob Debug-Logging aktiv ist
var Debug = Bool("SEQALIGN_DEBUG")

// LogLevel gibt das slog-Level zurueck
// SEQALIGN_DEBUG=1 aktiviert Debug, negative Werte aktivieren Trace
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SEQALIGN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
