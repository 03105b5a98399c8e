// MODUL: coeffs
// ZWECK: Bikubische Faltungs-Koeffizienten-Tabelle (lazy, pro Variante einmal)
// INPUT: Schaerfe-Parameter A (implizit ueber die Varianten-Auswahl)
// OUTPUT: Read-only Tabelle mit (tableSize+1) Koeffizienten-Paaren
// NEBENEFFEKTE: Einmalige Initialisierung pro Prozess und Variante
// ABHAENGIGKEITEN: sync (stdlib)
// HINWEISE: Nach der Initialisierung immutabel; Zugriff lock-frei.
// Kernel-Formel: https://en.wikipedia.org/wiki/Bicubic_interpolation
package ops

import "sync"

// coeffsTableSize ist die Sub-Pixel-Aufloesung der Tabelle.
// Groessere Werte tauschen Speicher gegen Offset-Praezision.
const coeffsTableSize = 1 << 10

var (
	coeffsDefaultOnce sync.Once
	coeffsDefaultTab  []float32

	coeffsHalfPixelOnce sync.Once
	coeffsHalfPixelTab  []float32
)

// initCoeffsTable baut die Tabelle fuer den Schaerfe-Parameter a.
// Eintrag i haelt das Paar (c0, c1): Kernel auf [0,1) bzw. [1,2).
func initCoeffsTable(a float32) []float32 {
	tab := make([]float32, (coeffsTableSize+1)*2)
	for i := 0; i <= coeffsTableSize; i++ {
		x := float32(i) / coeffsTableSize
		tab[i*2] = ((a+2)*x-(a+3))*x*x + 1
		x += 1.0
		tab[i*2+1] = ((a*x-5*a)*x+8*a)*x - 4*a
	}
	return tab
}

// coeffsTable gibt die Tabellen-Variante zurueck.
// halfPixel: A = -0.5 (TensorFlow half-pixel), sonst A = -0.75.
// Jede Variante wird genau einmal materialisiert, auch bei konkurrierender
// Erst-Nutzung.
func coeffsTable(halfPixel bool) []float32 {
	if halfPixel {
		coeffsHalfPixelOnce.Do(func() {
			coeffsHalfPixelTab = initCoeffsTable(-0.5)
		})
		return coeffsHalfPixelTab
	}

	coeffsDefaultOnce.Do(func() {
		coeffsDefaultTab = initCoeffsTable(-0.75)
	})
	return coeffsDefaultTab
}
