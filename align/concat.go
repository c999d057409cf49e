// MODUL: concat
// ZWECK: Spaltenweise Konkatenation von Batches mit anschliessendem Re-Padding
// INPUT: Geordnete Batch-Liste, Ziel-Pad-Seite
// OUTPUT: Ein Batch mit einheitlich gruppiertem Padding
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: So werden einzeln gepaddte Turns zu einer Sequenz ohne
//           Pad-Tokens mitten im Inhalt zusammengefuehrt

package align

import "fmt"

// ConcatenateWithPadding haengt Batches spaltenweise aneinander und
// konsolidiert danach das Padding auf der gewuenschten Seite
//
// Alle Batches muessen dieselbe Zeilenanzahl haben. Die Token-Reihenfolge
// innerhalb jeder Zeile bleibt ueber alle Quellen hinweg erhalten.
func (a *Aligner) ConcatenateWithPadding(batches []Batch, padToLeft bool) (Batch, error) {
	if len(batches) == 0 {
		return Batch{}, nil
	}

	rows := batches[0].Rows
	totalCols := 0
	for i, b := range batches {
		if b.Rows != rows {
			return Batch{}, fmt.Errorf("%w: batch %d has %d rows, expected %d",
				ErrShapeMismatch, i, b.Rows, rows)
		}
		totalCols += b.Cols
	}

	joined := NewBatch(rows, totalCols)
	for r := 0; r < rows; r++ {
		dst := joined.Row(r)
		off := 0
		for _, b := range batches {
			off += copy(dst[off:], b.Row(r))
		}
	}

	padded, _ := a.ConvertPadStructure(joined, padToLeft)
	return padded, nil
}
