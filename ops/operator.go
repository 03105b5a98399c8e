// MODUL: operator
// ZWECK: Operator-Interface, optionale Argumente und Operator-Registry
// INPUT: Operator-Name, Args, Tensor-Inputs
// OUTPUT: Registrierte Operator-Instanzen
// NEBENEFFEKTE: Keine (rein speicherbasiert)
// ABHAENGIGKEITEN: sync (stdlib), tensor
// HINWEISE: Thread-sicher durch RWMutex; Operatoren registrieren sich via init()
package ops

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/7blacky7/mobinfer/tensor"
)

var ErrOpNotRegistered = errors.New("operator nicht registriert")

// Device bezeichnet das Ausfuehrungs-Ziel eines Operators.
type Device int

const (
	DeviceCPU Device = iota
	DeviceAccelerator
)

func (d Device) String() string {
	switch d {
	case DeviceCPU:
		return "cpu"
	case DeviceAccelerator:
		return "accelerator"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// Context traegt Ausfuehrungs-Umgebung fuer einen Operator-Lauf.
type Context struct {
	// Ctx wird an Accelerator-Kernels durchgereicht; der CPU-Pfad laeuft
	// synchron bis zum Ende und kennt keine Cancellation.
	Ctx context.Context

	// Device waehlt zwischen CPU-Executor und Accelerator-Kernel.
	Device Device

	// Accelerator ist der Name des registrierten Accelerator-Backends.
	// Nur relevant bei DeviceAccelerator.
	Accelerator string
}

// NewContext erstellt einen CPU-Kontext.
func NewContext() *Context {
	return &Context{Ctx: context.Background(), Device: DeviceCPU}
}

// Operator fuehrt eine Tensor-Operation aus.
// inputs[0] ist der Daten-Tensor; weitere Inputs sind operator-spezifisch.
type Operator interface {
	Name() string
	Run(octx *Context, inputs ...*tensor.Tensor) (*tensor.Tensor, error)
}

// ============================================================================
// Optionale Argumente
// ============================================================================

// Args haelt optionale Operator-Argumente mit typisierten Gettern.
type Args map[string]any

// Bool liest ein Bool-Argument mit Default-Wert.
func (a Args) Bool(key string, defaultValue bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return defaultValue
}

// Int liest ein Int-Argument mit Default-Wert.
func (a Args) Int(key string, defaultValue int) int {
	if v, ok := a[key].(int); ok {
		return v
	}
	return defaultValue
}

// Ints liest ein Int-Slice-Argument mit Default-Wert.
func (a Args) Ints(key string, defaultValue []int) []int {
	if v, ok := a[key].([]int); ok {
		return v
	}
	return defaultValue
}

// ============================================================================
// Registry
// ============================================================================

// Factory erstellt eine Operator-Instanz aus optionalen Argumenten.
type Factory func(args Args) (Operator, error)

var (
	opsMu       sync.RWMutex
	opFactories = make(map[string]Factory)
)

// Register registriert eine Operator-Factory unter dem angegebenen Namen.
// Doppelte Registrierung ist ein Programmierfehler.
func Register(name string, factory Factory) {
	opsMu.Lock()
	defer opsMu.Unlock()

	if _, ok := opFactories[name]; ok {
		panic("ops: operator bereits registriert: " + name)
	}
	opFactories[name] = factory
}

// New erstellt eine Operator-Instanz ueber die Registry.
func New(name string, args Args) (Operator, error) {
	opsMu.RLock()
	factory, ok := opFactories[name]
	opsMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOpNotRegistered, name)
	}
	return factory(args)
}

// List gibt alle registrierten Operator-Namen zurueck.
// Die Reihenfolge ist nicht deterministisch.
func List() []string {
	opsMu.RLock()
	defer opsMu.RUnlock()

	names := make([]string, 0, len(opFactories))
	for name := range opFactories {
		names = append(names, name)
	}
	return names
}
