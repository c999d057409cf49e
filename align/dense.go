// dense.go - Interop mit github.com/pdevine/tensor
//
// Dieses Modul enthaelt:
// - FromDense: Konvertiert eine Int32-Matrix zu einem Batch
// - Dense: Konvertiert einen Batch zu einer Int32-Matrix
package align

import (
	"fmt"
	"slices"

	"github.com/pdevine/tensor"
)

// FromDense konvertiert eine 2-D Int32 Dense-Matrix in einen Batch
// Die Daten werden kopiert, der Batch haelt keine Referenz auf d
func FromDense(d *tensor.Dense) (Batch, error) {
	if d.Dims() != 2 {
		return Batch{}, fmt.Errorf("%w: dense tensor has %d dims, need 2", ErrShapeMismatch, d.Dims())
	}
	if d.Dtype() != tensor.Int32 {
		return Batch{}, fmt.Errorf("dense tensor has dtype %v, need int32", d.Dtype())
	}

	shape := d.Shape()
	data, ok := d.Data().([]int32)
	if !ok {
		return Batch{}, fmt.Errorf("dense tensor backing is not []int32")
	}

	return Batch{Data: slices.Clone(data), Rows: shape[0], Cols: shape[1]}, nil
}

// Dense konvertiert den Batch in eine 2-D Int32 Dense-Matrix
func (b Batch) Dense() *tensor.Dense {
	if len(b.Data) == 0 {
		return tensor.New(tensor.Of(tensor.Int32), tensor.WithShape(b.Rows, b.Cols))
	}
	return tensor.New(tensor.WithShape(b.Rows, b.Cols), tensor.WithBacking(slices.Clone(b.Data)))
}
