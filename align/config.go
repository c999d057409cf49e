// config.go - Konfiguration und Konstruktor fuer den Sequence Aligner
//
// Dieses Modul enthaelt:
// - Config: Unveraenderliche Aligner-Konfiguration
// - New: Erstellt einen Aligner
// - ConfigFromEnv: Laedt die Konfiguration aus SEQALIGN_* Variablen
package align

import (
	"github.com/agentloop/seqalign/envconfig"
)

// Config ist die unveraenderliche Konfiguration des Aligners
// Sie wird einmal beim Start gesetzt und danach nie mutiert
type Config struct {
	// PadTokenID markiert Nicht-Inhalt-Positionen, Vergleich per Gleichheit
	PadTokenID int32

	// Laengen-Limits, von den Truncate-Helfern verwendet
	MaxPromptLength int
	MaxObsLength    int
	MaxStartLength  int
}

// Aligner fuehrt alle Padding- und Alignment-Operationen aus
// Er haelt keinerlei Zustand ausser der Konfiguration, jede Operation
// ist eine reine Funktion ueber ihre Eingaben
type Aligner struct {
	config Config
}

// New erstellt einen Aligner mit der gegebenen Konfiguration
func New(config Config) *Aligner {
	return &Aligner{config: config}
}

// Config gibt die Konfiguration zurueck
func (a *Aligner) Config() Config {
	return a.config
}

// ConfigFromEnv laedt die Konfiguration aus der Umgebung
func ConfigFromEnv() Config {
	return Config{
		PadTokenID:      envconfig.PadToken(),
		MaxPromptLength: envconfig.MaxPromptLen(),
		MaxObsLength:    envconfig.MaxObsLen(),
		MaxStartLength:  envconfig.MaxStartLen(),
	}
}
