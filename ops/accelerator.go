// MODUL: accelerator
// ZWECK: Opaque Accelerator-Kernel-Grenze fuer Resize-Operatoren
// INPUT: Accelerator-Name, Kernel-Konstruktions-Parameter
// OUTPUT: Registrierte AcceleratorKernel-Instanzen
// NEBENEFFEKTE: Keine (rein speicherbasiert)
// ABHAENGIGKEITEN: sync (stdlib), tensor
// HINWEISE: Die Kernel-Implementierung selbst liegt ausserhalb dieses
// Moduls (z.B. OpenCL/NPU Binding); hier lebt nur der Vertrag
package ops

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/7blacky7/mobinfer/tensor"
)

var ErrAcceleratorNotRegistered = errors.New("accelerator nicht registriert")

// AcceleratorKernel ist der opake Vertrag eines Beschleuniger-Kernels.
// output ist vorab auf die Ziel-Shape allokiert; Compute befuellt ihn
// vollstaendig oder gibt einen Fehler zurueck.
type AcceleratorKernel interface {
	Compute(ctx context.Context, input *tensor.Tensor, outHeight, outWidth int, output *tensor.Tensor) error
}

// AcceleratorFactory erstellt einen Resize-Kernel fuer ein Accelerator-Backend.
type AcceleratorFactory func(alignCorners bool, mode CoordinateTransformationMode) (AcceleratorKernel, error)

var (
	accelMu        sync.RWMutex
	accelFactories = make(map[string]AcceleratorFactory)
)

// RegisterAccelerator registriert eine Kernel-Factory unter dem Backend-Namen.
// Ueberschreibt existierende Eintraege ohne Warnung.
func RegisterAccelerator(name string, factory AcceleratorFactory) {
	accelMu.Lock()
	defer accelMu.Unlock()

	accelFactories[name] = factory
}

// UnregisterAccelerator entfernt ein Backend aus der Registry.
// Gibt true zurueck wenn das Backend existierte, sonst false.
func UnregisterAccelerator(name string) bool {
	accelMu.Lock()
	defer accelMu.Unlock()

	_, exists := accelFactories[name]
	if exists {
		delete(accelFactories, name)
	}
	return exists
}

// newAcceleratorKernel erstellt einen Kernel ueber die Registry.
func newAcceleratorKernel(name string, alignCorners bool, mode CoordinateTransformationMode) (AcceleratorKernel, error) {
	accelMu.RLock()
	factory, ok := accelFactories[name]
	accelMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAcceleratorNotRegistered, name)
	}
	return factory(alignCorners, mode)
}

// Accelerators gibt alle registrierten Backend-Namen zurueck.
func Accelerators() []string {
	accelMu.RLock()
	defer accelMu.RUnlock()

	names := make([]string, 0, len(accelFactories))
	for name := range accelFactories {
		names = append(names, name)
	}
	return names
}
