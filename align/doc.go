// Package align richtet Token-Batches eines mehrstufigen Agent-Loops aus:
// Pad-Seiten-Konvertierung, Zuschneiden auf effektive Laenge, Masken- und
// Positions-Ableitung, Konkatenation mit Re-Padding sowie Rueckfuehrung
// variabler Per-Turn-Ausgaben in feste Batch-Formen.
//
// Alle Operationen sind reine Funktionen ueber ihre Eingaben plus einer
// unveraenderlichen Konfiguration; es wird kein Zustand zwischen Aufrufen
// gehalten und keine Eingabe-Referenz behalten.
package align
