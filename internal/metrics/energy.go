package metrics

import (
	"math"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

// Energy reports the mean mechanical energy over all observed samples.
type Energy struct {
	name        string
	law         dynamo.Hamiltonian
	samples     int
	totalEnergy float64
}

func NewEnergy(law dynamo.Hamiltonian) *Energy {
	return &Energy{
		name: "energy",
		law:  law,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s dynamo.Sample, t float64) {
	e.totalEnergy += e.law.Energy(s)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// EnergyDrift tracks the largest relative deviation from the energy of the
// first observed sample.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	maxDrift      float64
	samples       int
	law           dynamo.Law
}

func NewEnergyDrift(law dynamo.Law) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		law:  law,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(s dynamo.Sample, t float64) {
	h, ok := e.law.(dynamo.Hamiltonian)
	if !ok {
		return
	}

	energy := h.Energy(s)

	if e.samples == 0 {
		e.initialEnergy = energy
	}

	e.currentEnergy = energy
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
