// MODUL: batch
// ZWECK: Basis-Datentypen fuer Token-Batches und N-dimensionale Tensoren
// INPUT: Zeilen-/Spaltenanzahl, int32-Tokendaten
// OUTPUT: Batch- und Tensor-Werte mit flachem row-major Backing
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: keine (nur Standardbibliothek)
// HINWEISE: Alle Operationen des Aligners arbeiten auf diesen Typen

package align

import (
	"errors"
	"fmt"
	"slices"
)

// ErrShapeMismatch wird zurueckgegeben wenn co-indizierte Arrays
// inkompatible Dimensionen haben
var ErrShapeMismatch = errors.New("shape mismatch")

// Batch ist eine dichte 2-D Matrix von Token-IDs
// Das Backing ist flach und row-major, Dimensionen sind explizit
type Batch struct {
	Data []int32
	Rows int
	Cols int
}

// NewBatch erstellt einen nullgefuellten Batch
func NewBatch(rows, cols int) Batch {
	return Batch{Data: make([]int32, rows*cols), Rows: rows, Cols: cols}
}

// Full erstellt einen Batch, der vollstaendig mit fill belegt ist
func Full(rows, cols int, fill int32) Batch {
	b := NewBatch(rows, cols)
	for i := range b.Data {
		b.Data[i] = fill
	}
	return b
}

// FromRows erstellt einen Batch aus Zeilen-Slices
// Alle Zeilen muessen gleich lang sein
func FromRows(rows [][]int32) (Batch, error) {
	if len(rows) == 0 {
		return Batch{}, nil
	}
	cols := len(rows[0])
	b := NewBatch(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Batch{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShapeMismatch, i, len(row), cols)
		}
		copy(b.Row(i), row)
	}
	return b, nil
}

// Row gibt die i-te Zeile als Subslice zurueck (keine Kopie)
func (b Batch) Row(i int) []int32 {
	return b.Data[i*b.Cols : (i+1)*b.Cols]
}

// At gibt das Element in Zeile r, Spalte c zurueck
func (b Batch) At(r, c int) int32 {
	return b.Data[r*b.Cols+c]
}

// Set schreibt das Element in Zeile r, Spalte c
func (b Batch) Set(r, c int, v int32) {
	b.Data[r*b.Cols+c] = v
}

// Clone gibt eine tiefe Kopie zurueck
func (b Batch) Clone() Batch {
	return Batch{Data: slices.Clone(b.Data), Rows: b.Rows, Cols: b.Cols}
}

// Equal prueft Dimensionen und Inhalt
func (b Batch) Equal(other Batch) bool {
	return b.Rows == other.Rows && b.Cols == other.Cols && slices.Equal(b.Data, other.Data)
}

// sameShape prueft ob zwei Batches identische Dimensionen haben
func sameShape(a, b Batch) bool {
	return a.Rows == b.Rows && a.Cols == b.Cols
}

// Tensor ist ein N-dimensionales int32-Array mit flachem row-major Backing
// Verwendet fuer Turn-Level-Daten der Form (batch, seq, *D)
type Tensor struct {
	Data  []int32
	Shape []int
}

// NewTensor erstellt einen nullgefuellten Tensor der gegebenen Form
func NewTensor(shape ...int) Tensor {
	return Tensor{Data: make([]int32, numElems(shape)), Shape: slices.Clone(shape)}
}

// FullTensor erstellt einen Tensor, der vollstaendig mit fill belegt ist
func FullTensor(fill int32, shape ...int) Tensor {
	t := NewTensor(shape...)
	for i := range t.Data {
		t.Data[i] = fill
	}
	return t
}

// Equal prueft Form und Inhalt
func (t Tensor) Equal(other Tensor) bool {
	return slices.Equal(t.Shape, other.Shape) && slices.Equal(t.Data, other.Data)
}

// numElems gibt das Produkt aller Dimensionen zurueck
func numElems(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}
