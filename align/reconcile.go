// MODUL: reconcile
// ZWECK: Rueckfuehrung variabler Per-Turn-Ausgaben in feste Batch-Formen
// INPUT: Aktiv-Teilmengen-Tensor plus Aktiv-Maske bzw. Ragged-Tensor-Liste
// OUTPUT: Batch in voller Batch-Groesse bzw. ein Tensor (sum b_i, L_max, *D)
// NEBENEFFEKTE: Trace-Logging
// ABHAENGIGKEITEN: logutil
// HINWEISE: Die i-te True-Position der Aktiv-Maske konsumiert die i-te
//           Zeile der Aktiv-Teilmenge, strikt von links nach rechts

package align

import (
	"fmt"
	"slices"

	"github.com/agentloop/seqalign/logutil"
)

// ExampleLevelPad verteilt die Zeilen einer nur-aktive-Beispiele-Ausgabe
// zurueck auf die volle Batch-Groesse
//
// Aktive Zeilen erhalten der Reihe nach die Zeilen von responses, inaktive
// Zeilen werden vollstaendig mit dem Pad-Token gefuellt. Die parallele
// String-Liste wird positionsgleich behandelt, inaktive Zeilen erhalten "".
// Vorbedingung: Anzahl True-Eintraege in activeMask == responses.Rows.
func (a *Aligner) ExampleLevelPad(responses Batch, responsesStr []string, activeMask []bool) (Batch, []string, error) {
	active := 0
	for _, on := range activeMask {
		if on {
			active++
		}
	}
	if active != responses.Rows {
		return Batch{}, nil, fmt.Errorf("%w: active mask has %d true entries, responses has %d rows",
			ErrShapeMismatch, active, responses.Rows)
	}
	if len(responsesStr) != responses.Rows {
		return Batch{}, nil, fmt.Errorf("%w: %d response strings for %d response rows",
			ErrShapeMismatch, len(responsesStr), responses.Rows)
	}

	batchSize := len(activeMask)
	logutil.Trace("example level pad", "batchSize", batchSize, "active", active, "seqLen", responses.Cols)

	padded := Full(batchSize, responses.Cols, a.config.PadTokenID)
	paddedStr := make([]string, batchSize)

	// Expliziter Cursor ueber die Aktiv-Teilmenge, nur bei True-Bits erhoeht
	s := 0
	for i, on := range activeMask {
		if !on {
			continue
		}
		copy(padded.Row(i), responses.Row(s))
		paddedStr[i] = responsesStr[s]
		s++
	}

	return padded, paddedStr, nil
}

// TurnLevelPadAndConcatenate fuegt n Tensoren der Form (b_i, L_i, *D) zu
// einem Tensor der Form (sum b_i, L_max, *D) zusammen
//
// Der Ausgabe-Tensor wird mit dem Pad-Token vorbelegt. Die Zeilenbloecke
// der Quellen folgen in Eingabe-Reihenfolge aufeinander, ohne Verzahnung.
// Innerhalb eines Blocks liegen die L_i echten Spalten am linken Rand
// (padToLeft=false) oder am rechten Rand (padToLeft=true).
func (a *Aligner) TurnLevelPadAndConcatenate(tensors []Tensor, padToLeft bool) (Tensor, error) {
	if len(tensors) == 0 {
		return Tensor{}, nil
	}

	for i, t := range tensors {
		if len(t.Shape) < 2 {
			return Tensor{}, fmt.Errorf("%w: tensor %d has %d dims, need at least 2",
				ErrShapeMismatch, i, len(t.Shape))
		}
	}

	trailing := tensors[0].Shape[2:]
	inner := numElems(trailing)

	totalRows, maxLen := 0, 0
	for i, t := range tensors {
		if !slices.Equal(t.Shape[2:], trailing) {
			return Tensor{}, fmt.Errorf("%w: tensor %d trailing shape %v, expected %v",
				ErrShapeMismatch, i, t.Shape[2:], trailing)
		}
		totalRows += t.Shape[0]
		if t.Shape[1] > maxLen {
			maxLen = t.Shape[1]
		}
	}

	logutil.Trace("turn level pad and concatenate", "tensors", len(tensors), "rows", totalRows, "maxLen", maxLen)

	outShape := append([]int{totalRows, maxLen}, trailing...)
	out := FullTensor(a.config.PadTokenID, outShape...)

	rowStart := 0
	for _, t := range tensors {
		b, l := t.Shape[0], t.Shape[1]
		start := 0
		if padToLeft {
			start = maxLen - l
		}
		for r := 0; r < b; r++ {
			src := t.Data[r*l*inner : (r+1)*l*inner]
			dstOff := ((rowStart+r)*maxLen + start) * inner
			copy(out.Data[dstOff:dstOff+l*inner], src)
		}
		rowStart += b
	}

	return out, nil
}
