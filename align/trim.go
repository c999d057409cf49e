// MODUL: trim
// ZWECK: Zuschneiden von Batches auf die effektive Laenge laut Attention-Maske
// INPUT: Benannte Batches, Attention-Maske, Schnittrichtung
// OUTPUT: Batches mit genau effective_len Spalten
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: effective_len ist das Maximum der Zeilensummen der Maske,
//           bei reiner Pad-Eingabe entstehen Batches mit 0 Spalten

package align

import "fmt"

// CutToEffectiveLen schneidet die unter keys benannten Batches auf die
// effektive Laenge der Maske zu
//
// cutLeft=true nimmt die rechten effective_len Spalten (Pad-Links-Layout),
// cutLeft=false die linken (Pad-Rechts-Layout). Nicht benannte Eintraege
// werden unveraendert uebernommen. Kein echtes Token geht je verloren:
// effective_len deckt die laengste Zeile ab.
func (a *Aligner) CutToEffectiveLen(batches map[string]Batch, keys []string, mask Batch, cutLeft bool) (map[string]Batch, error) {
	effLen := 0
	for r := 0; r < mask.Rows; r++ {
		n := 0
		for _, m := range mask.Row(r) {
			if m != 0 {
				n++
			}
		}
		if n > effLen {
			effLen = n
		}
	}

	result := make(map[string]Batch, len(batches))
	for k, v := range batches {
		result[k] = v
	}

	for _, key := range keys {
		b, ok := batches[key]
		if !ok {
			return nil, fmt.Errorf("cut to effective len: unknown key %q", key)
		}
		if !sameShape(b, mask) {
			return nil, fmt.Errorf("%w: %q is %dx%d, mask is %dx%d",
				ErrShapeMismatch, key, b.Rows, b.Cols, mask.Rows, mask.Cols)
		}

		start := 0
		if cutLeft {
			start = b.Cols - effLen
		}
		cut := NewBatch(b.Rows, effLen)
		for r := 0; r < b.Rows; r++ {
			copy(cut.Row(r), b.Row(r)[start:start+effLen])
		}
		result[key] = cut
	}

	return result, nil
}

// EffectiveLengths gibt pro Zeile die Anzahl echter Tokens zurueck
func EffectiveLengths(mask Batch) []int {
	lengths := make([]int, mask.Rows)
	for r := 0; r < mask.Rows; r++ {
		for _, m := range mask.Row(r) {
			if m != 0 {
				lengths[r]++
			}
		}
	}
	return lengths
}
