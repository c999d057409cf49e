// MODUL: batch_test
// ZWECK: Tests fuer die Basis-Datentypen Batch und Tensor
// INPUT: Synthetische Zeilen-Slices
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing

package align

import "testing"

func TestFromRows(t *testing.T) {
	b, err := FromRows([][]int32{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	if b.Rows != 2 || b.Cols != 3 {
		t.Errorf("Form = %dx%d, erwartet 2x3", b.Rows, b.Cols)
	}
	if b.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %d, erwartet 6", b.At(1, 2))
	}
}

func TestFromRowsRaggedInput(t *testing.T) {
	if _, err := FromRows([][]int32{{1, 2}, {3}}); err == nil {
		t.Error("ungleich lange Zeilen sollten fehlschlagen")
	}
}

func TestFromRowsEmpty(t *testing.T) {
	b, err := FromRows(nil)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if b.Rows != 0 || len(b.Data) != 0 {
		t.Errorf("leere Eingabe ergibt %v, erwartet leeren Batch", b)
	}
}

func TestBatchCloneIsDeep(t *testing.T) {
	b := Full(1, 3, 7)
	c := b.Clone()
	c.Set(0, 0, 99)

	if b.At(0, 0) != 7 {
		t.Errorf("Clone teilt Backing: Original[0][0] = %d", b.At(0, 0))
	}
}

func TestBatchRowIsView(t *testing.T) {
	b := NewBatch(2, 2)
	b.Row(1)[0] = 5

	if b.At(1, 0) != 5 {
		t.Errorf("Row(1) ist keine Sicht auf das Backing")
	}
}

func TestFullTensor(t *testing.T) {
	tr := FullTensor(3, 2, 2, 2)

	if len(tr.Data) != 8 {
		t.Fatalf("Elemente = %d, erwartet 8", len(tr.Data))
	}
	for i, v := range tr.Data {
		if v != 3 {
			t.Errorf("Data[%d] = %d, erwartet 3", i, v)
		}
	}
}
