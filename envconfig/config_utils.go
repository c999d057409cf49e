// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - Bool: Boolean-Getter
// - Int: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Bool gibt eine Funktion zurueck, die einen Bool liest (Default: false)
func Bool(k string) func() bool {
	return func() bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Int gibt eine Funktion zurueck, die einen int mit Default-Wert liest
func Int(key string, defaultValue int) func() int {
	return func() int {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return int(n)
			}
		}
		return defaultValue
	}
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen mit Metadaten zurueck
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SEQALIGN_DEBUG":          {"SEQALIGN_DEBUG", LogLevel(), "Show additional debug information (e.g. SEQALIGN_DEBUG=1)"},
		"SEQALIGN_PAD_TOKEN":      {"SEQALIGN_PAD_TOKEN", PadToken(), "Token id used for padding (default 0)"},
		"SEQALIGN_MAX_PROMPT_LEN": {"SEQALIGN_MAX_PROMPT_LEN", MaxPromptLen(), "Maximum prompt length in tokens (default 4096)"},
		"SEQALIGN_MAX_OBS_LEN":    {"SEQALIGN_MAX_OBS_LEN", MaxObsLen(), "Maximum observation length in tokens (default 512)"},
		"SEQALIGN_MAX_START_LEN":  {"SEQALIGN_MAX_START_LEN", MaxStartLen(), "Maximum start prompt length in tokens (default 2048)"},
		"SEQALIGN_PARALLEL":       {"SEQALIGN_PARALLEL", ParallelThreshold(), "Row count above which batch ops run on multiple goroutines (default 256)"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
