// stats.go - Auslastungs-Statistiken fuer gepaddte Batches
//
// Agent-Loops loggen pro Turn wie viel eines Batches aus echten Tokens
// besteht, um Padding-Verschwendung sichtbar zu machen.
package align

import "gonum.org/v1/gonum/stat"

// PadUtilization gibt den mittleren Anteil echter Tokens pro Zeile zurueck
// Wertebereich [0,1], 0 fuer leere Batches
func PadUtilization(mask Batch) float64 {
	if mask.Rows == 0 || mask.Cols == 0 {
		return 0
	}

	ratios := make([]float64, mask.Rows)
	for r, n := range EffectiveLengths(mask) {
		ratios[r] = float64(n) / float64(mask.Cols)
	}
	return stat.Mean(ratios, nil)
}
