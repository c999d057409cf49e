// MODUL: mask_test
// ZWECK: Tests fuer Masken- und Positions-Ableitung
// INPUT: Synthetische Token-Batches
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing
// HINWEISE: Pad-Positionen muessen in den Positions-IDs exakt 0 tragen

package align

import "testing"

func TestCreateAttentionMask(t *testing.T) {
	a := newTestAligner()

	ids := mustBatch(t, [][]int32{
		{0, 5, 0, 6},
		{1, 2, 3, 4},
	})

	mask := a.CreateAttentionMask(ids)

	want := mustBatch(t, [][]int32{
		{0, 1, 0, 1},
		{1, 1, 1, 1},
	})
	if !mask.Equal(want) {
		t.Errorf("Maske = %v, erwartet %v", mask.Data, want.Data)
	}
}

func TestCreateAttentionMaskNonZeroPad(t *testing.T) {
	// Pad-Token ungleich 0: Vergleich laeuft ueber exakte Gleichheit
	a := New(Config{PadTokenID: 99})

	ids := mustBatch(t, [][]int32{{99, 0, 7, 99}})
	mask := a.CreateAttentionMask(ids)

	want := mustBatch(t, [][]int32{{0, 1, 1, 0}})
	if !mask.Equal(want) {
		t.Errorf("Maske = %v, erwartet %v", mask.Data, want.Data)
	}
}

func TestCreatePositionIDs(t *testing.T) {
	a := newTestAligner()

	mask := mustBatch(t, [][]int32{
		{0, 0, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})

	pos := a.CreatePositionIDs(mask)

	want := mustBatch(t, [][]int32{
		{0, 0, 0, 1, 2},
		{0, 1, 2, 3, 4},
	})
	if !pos.Equal(want) {
		t.Errorf("Positions-IDs = %v, erwartet %v", pos.Data, want.Data)
	}
}

func TestCreatePositionIDsInterspersed(t *testing.T) {
	a := newTestAligner()

	// Strukturell verstreute Pads: k-tes echtes Token traegt k,
	// Pad-Positionen tragen 0 statt eines weitergeschleppten Zaehlers
	mask := mustBatch(t, [][]int32{
		{1, 0, 1, 0, 1},
	})

	pos := a.CreatePositionIDs(mask)

	want := mustBatch(t, [][]int32{
		{0, 0, 1, 0, 2},
	})
	if !pos.Equal(want) {
		t.Errorf("Positions-IDs = %v, erwartet %v", pos.Data, want.Data)
	}
}

func TestCreatePositionIDsAllPadding(t *testing.T) {
	a := newTestAligner()

	pos := a.CreatePositionIDs(NewBatch(2, 3))
	for i, v := range pos.Data {
		if v != 0 {
			t.Errorf("Positions-ID[%d] = %d, erwartet 0", i, v)
		}
	}
}
