// parallel.go - Zeilen-parallele Ausfuehrung fuer Batch-Operationen
//
// Keine Operation des Aligners hat Abhaengigkeiten zwischen Zeilen,
// grosse Batches werden deshalb ueber mehrere Goroutinen verteilt.
package align

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/agentloop/seqalign/envconfig"
)

// parallelThreshold ist die Zeilenanzahl, ab der parallelisiert wird
var parallelThreshold = envconfig.ParallelThreshold()

// forEachRow fuehrt fn fuer jede Zeile 0..rows-1 aus
// Unterhalb der Schwelle seriell, darueber in Zeilen-Chunks pro Goroutine
func forEachRow(rows int, fn func(r int)) {
	if rows < parallelThreshold {
		for r := 0; r < rows; r++ {
			fn(r)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (rows + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < rows; start += chunk {
		end := min(start+chunk, rows)
		g.Go(func() error {
			for r := start; r < end; r++ {
				fn(r)
			}
			return nil
		})
	}
	// fn liefert keine Fehler, Wait dient nur der Synchronisation
	_ = g.Wait()
}
