// coeffs_test.go - Tests fuer die Koeffizienten-Tabelle
// Prueft Konstruktions-Formel, Einmaligkeit und konkurrierende Erst-Nutzung
package ops

import (
	"sync"
	"testing"
)

func TestCoeffsTableEndpoints(t *testing.T) {
	for _, halfPixel := range []bool{false, true} {
		tab := coeffsTable(halfPixel)

		if len(tab) != (coeffsTableSize+1)*2 {
			t.Fatalf("halfPixel=%v: laenge = %d, erwartet %d", halfPixel, len(tab), (coeffsTableSize+1)*2)
		}

		// Kernel am Ursprung: k(0) = 1, k(1) = 0, k(2) = 0
		if tab[0] != 1 {
			t.Errorf("halfPixel=%v: c0(0) = %v, erwartet 1", halfPixel, tab[0])
		}
		if tab[1] != 0 {
			t.Errorf("halfPixel=%v: c1(0) = %v, erwartet 0", halfPixel, tab[1])
		}
		if last := tab[coeffsTableSize*2]; last != 0 {
			t.Errorf("halfPixel=%v: c0(1) = %v, erwartet 0", halfPixel, last)
		}
		if last := tab[coeffsTableSize*2+1]; last != 0 {
			t.Errorf("halfPixel=%v: c1(2) = %v, erwartet 0", halfPixel, last)
		}
	}
}

func TestCoeffsTableVariantsDiffer(t *testing.T) {
	def := coeffsTable(false)
	half := coeffsTable(true)

	mid := coeffsTableSize / 2
	if def[mid*2+1] == half[mid*2+1] {
		t.Error("Varianten A=-0.75 und A=-0.5 liefern identische Randwerte, erwartet unterschiedliche Tabellen")
	}
}

func TestCoeffsTableSingleton(t *testing.T) {
	// Konkurrierende Erst-Nutzung darf nur eine Instanz pro Variante
	// materialisieren
	const workers = 16
	results := make([][]float32, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = coeffsTable(i%2 == 0)
		}(i)
	}
	wg.Wait()

	for i := 2; i < workers; i += 2 {
		if &results[i][0] != &results[0][0] {
			t.Fatal("coeffsTable(true) liefert unterschiedliche Instanzen")
		}
	}
	for i := 3; i < workers; i += 2 {
		if &results[i][0] != &results[1][0] {
			t.Fatal("coeffsTable(false) liefert unterschiedliche Instanzen")
		}
	}
}
