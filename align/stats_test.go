// MODUL: stats_test
// ZWECK: Tests fuer die Batch-Auslastungs-Statistik
// INPUT: Synthetische Masken
// OUTPUT: Testresultate
// NEBENEFFEKTE: keine
// ABHAENGIGKEITEN: testing, testify

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadUtilization(t *testing.T) {
	mask := mustBatch(t, [][]int32{
		{0, 0, 1, 1}, // 0.5
		{1, 1, 1, 1}, // 1.0
	})

	assert.InDelta(t, 0.75, PadUtilization(mask), 1e-9)
}

func TestPadUtilizationAllPadding(t *testing.T) {
	assert.Equal(t, 0.0, PadUtilization(NewBatch(3, 4)))
}

func TestPadUtilizationEmptyBatch(t *testing.T) {
	assert.Equal(t, 0.0, PadUtilization(Batch{}))
}
