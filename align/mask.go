// MODUL: mask
// ZWECK: Ableitung von Attention-Masken und Positions-IDs aus Token-Batches
// INPUT: Token-Batch bzw. Attention-Maske
// OUTPUT: Maske mit Werten {0,1} bzw. Positions-Indizes >= 0
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Pad-Positionen tragen in den Positions-IDs immer 0

package align

// CreateAttentionMask leitet die Attention-Maske aus Token-IDs ab
// 1 fuer echte Tokens, 0 fuer Pad-Positionen
func (a *Aligner) CreateAttentionMask(ids Batch) Batch {
	mask := NewBatch(ids.Rows, ids.Cols)
	pad := a.config.PadTokenID
	forEachRow(ids.Rows, func(r int) {
		src := ids.Row(r)
		dst := mask.Row(r)
		for c, tok := range src {
			if tok != pad {
				dst[c] = 1
			}
		}
	})
	return mask
}

// CreatePositionIDs leitet Positions-IDs aus der Attention-Maske ab
// Das k-te echte Token einer Zeile traegt den Wert k (0-basiert),
// Pad-Positionen tragen 0 statt eines weitergeschleppten Zaehlers
func (a *Aligner) CreatePositionIDs(mask Batch) Batch {
	pos := NewBatch(mask.Rows, mask.Cols)
	forEachRow(mask.Rows, func(r int) {
		src := mask.Row(r)
		dst := pos.Row(r)
		var count int32
		for c, m := range src {
			if m != 0 {
				dst[c] = count
				count++
			}
		}
	})
	return pos
}
