// MODUL: pad
// ZWECK: Stabile Konvertierung zwischen Pad-Links- und Pad-Rechts-Layout
// INPUT: 2-D Token-Batch, Ziel-Pad-Seite
// OUTPUT: Umsortierter Batch plus Spalten-Permutation pro Zeile
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Die Permutation ist eine stabile Partition, die relative
//           Reihenfolge innerhalb von Pad- und Echt-Token-Block bleibt erhalten

package align

import "fmt"

// ConvertPadStructure gruppiert pro Zeile alle Pad-Tokens auf eine Seite
//
// padToLeft=true: Pads links, echte Tokens rechts
// padToLeft=false: echte Tokens links, Pads rechts
//
// Die Umsortierung ist eine stabile Partition der Spaltenindizes, die
// Token-Reihenfolge wird nie verwuerfelt, nur der Pad-Block verschoben.
// Zurueckgegeben werden der umsortierte Batch und die verwendete
// Spalten-Permutation, damit Aufrufer co-indizierte Arrays (Maske,
// Positions-IDs) identisch umsortieren koennen.
func (a *Aligner) ConvertPadStructure(b Batch, padToLeft bool) (Batch, Batch) {
	out := NewBatch(b.Rows, b.Cols)
	perm := NewBatch(b.Rows, b.Cols)
	pad := a.config.PadTokenID

	forEachRow(b.Rows, func(r int) {
		src := b.Row(r)
		dstTok := out.Row(r)
		dstIdx := perm.Row(r)

		// Erst die Klasse, die nach vorne sortiert, dann die andere,
		// jeweils in originaler Reihenfolge (stabile Partition)
		n := 0
		for c, tok := range src {
			if (tok == pad) == padToLeft {
				dstIdx[n] = int32(c)
				n++
			}
		}
		for c, tok := range src {
			if (tok == pad) != padToLeft {
				dstIdx[n] = int32(c)
				n++
			}
		}
		for c, idx := range dstIdx {
			dstTok[c] = src[idx]
		}
	})

	return out, perm
}

// GatherColumns wendet eine von ConvertPadStructure gelieferte
// Spalten-Permutation auf einen co-indizierten Batch an
func GatherColumns(b, perm Batch) (Batch, error) {
	if !sameShape(b, perm) {
		return Batch{}, fmt.Errorf("%w: batch is %dx%d, permutation is %dx%d",
			ErrShapeMismatch, b.Rows, b.Cols, perm.Rows, perm.Cols)
	}

	out := NewBatch(b.Rows, b.Cols)
	forEachRow(b.Rows, func(r int) {
		src := b.Row(r)
		idx := perm.Row(r)
		dst := out.Row(r)
		for c, i := range idx {
			dst[c] = src[i]
		}
	})
	return out, nil
}
