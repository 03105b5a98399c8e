// MODUL: parallel
// ZWECK: Work-Partitionierung fuer CPU-Kernels ueber Worker-Goroutinen
// INPUT: Iterationsraum-Dimensionen und Work-Callback
// OUTPUT: keiner (Callbacks werden fuer jeden Index genau einmal aufgerufen)
// NEBENEFFEKTE: Startet Worker-Goroutinen, blockiert bis alle fertig sind
// ABHAENGIGKEITEN: golang.org/x/sync/errgroup (extern), envconfig (NumThreads)
// HINWEISE: Keine Ordnungs-Garantie zwischen Work-Units; Callbacks duerfen
// keinen gemeinsamen mutablen Zustand teilen
package parallel

import (
	"golang.org/x/sync/errgroup"

	"github.com/7blacky7/mobinfer/envconfig"
)

// Compute1D partitioniert den Bereich [0, n) in zusammenhaengende Bloecke
// und ruft fn fuer jeden Block auf einem Worker auf.
// Blockiert bis alle Worker fertig sind.
func Compute1D(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := envconfig.NumThreads()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// Compute2D partitioniert den Iterationsraum (dim0 x dim1) und ruft fn
// fuer jedes Paar (i0, i1) genau einmal auf.
// dim0 ist die aeussere Dimension (z.B. Batch), dim1 die innere (z.B. Zeile).
// Blockiert bis alle Worker fertig sind.
func Compute2D(dim0, dim1 int, fn func(i0, i1 int)) {
	total := dim0 * dim1
	if total <= 0 {
		return
	}

	Compute1D(total, func(start, end int) {
		for idx := start; idx < end; idx++ {
			fn(idx/dim1, idx%dim1)
		}
	})
}
