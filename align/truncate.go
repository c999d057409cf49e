// truncate.go - Laengen-Limits aus der Konfiguration durchsetzen
//
// Dieses Modul enthaelt:
// - TruncatePrompt: Klemmt auf MaxPromptLength
// - TruncateObservation: Klemmt auf MaxObsLength
// - TruncateStart: Klemmt auf MaxStartLength
package align

// TruncatePrompt klemmt den Batch auf MaxPromptLength Spalten
// Behalten wird die Seite, auf der die echten Tokens liegen
func (a *Aligner) TruncatePrompt(b Batch, padLeft bool) Batch {
	return truncate(b, a.config.MaxPromptLength, padLeft)
}

// TruncateObservation klemmt den Batch auf MaxObsLength Spalten
func (a *Aligner) TruncateObservation(b Batch, padLeft bool) Batch {
	return truncate(b, a.config.MaxObsLength, padLeft)
}

// TruncateStart klemmt den Batch auf MaxStartLength Spalten
func (a *Aligner) TruncateStart(b Batch, padLeft bool) Batch {
	return truncate(b, a.config.MaxStartLength, padLeft)
}

// truncate behaelt hoechstens limit Spalten
// Bei Pad-Links-Layout liegen die echten Tokens rechts, also werden die
// rechten limit Spalten behalten, sonst die linken. limit <= 0 bedeutet
// kein Limit.
func truncate(b Batch, limit int, padLeft bool) Batch {
	if limit <= 0 || b.Cols <= limit {
		return b.Clone()
	}

	start := 0
	if padLeft {
		start = b.Cols - limit
	}
	out := NewBatch(b.Rows, limit)
	for r := 0; r < b.Rows; r++ {
		copy(out.Row(r), b.Row(r)[start:start+limit])
	}
	return out
}
