package physics_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/integrators"
	"github.com/san-kum/eulerlab/internal/physics"
	"github.com/san-kum/eulerlab/internal/sim"
)

var _ = Describe("Oscillator", func() {
	DescribeTable("acceleration law",
		func(w0, b, x, v, expected float64) {
			osc := &physics.Oscillator{W0: w0, B: b}
			Expect(osc.Acceleration(x, v, 0)).To(BeNumerically("~", expected, 1e-12))
		},
		Entry("at rest", 2.0, 0.5, 0.0, 0.0, 0.0),
		Entry("pure restoring", 2.0, 0.0, 1.5, 3.0, -6.0),
		Entry("pure damping", 2.0, 0.5, 0.0, 1.0, -2.0),
		Entry("both terms", 1.0, 0.25, 2.0, -4.0, 0.0),
	)

	It("keeps the energy of an undamped oscillator bounded", func() {
		osc := &physics.Oscillator{W0: 2 * math.Pi, B: 0}
		s := sim.New(osc, integrators.NewSemiImplicitEuler(), nil)

		result, err := s.Run(context.Background(), 1, 0, dynamo.Config{TEnd: 10, Dt: 0.01})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Trajectory.Len()).To(BeNumerically(">=", 1000))

		initial := osc.Energy(result.Trajectory.At(0))
		for i := 0; i < result.Trajectory.Len(); i++ {
			drift := math.Abs(osc.Energy(result.Trajectory.At(i))-initial) / initial
			Expect(drift).To(BeNumerically("<", 0.05), "sample %d", i)
		}
	})

	It("decays under the default damping", func() {
		osc := physics.NewOscillator()
		s := sim.New(osc, integrators.NewSemiImplicitEuler(), nil)

		result, err := s.Run(context.Background(), 2, 0, dynamo.Config{TEnd: 10, Dt: 0.1})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Trajectory.Len()).To(Equal(102))

		last := result.Trajectory.At(result.Trajectory.Len() - 1)
		Expect(osc.Energy(last)).To(BeNumerically("<", 1e-6*osc.Energy(result.Trajectory.At(0))))
	})

	It("exposes its parameters by name", func() {
		osc := physics.NewOscillator()
		Expect(osc.SetParam("b", 0)).To(Succeed())
		Expect(osc.GetParams()).To(HaveKeyWithValue("b", 0.0))
		Expect(osc.SetParam("mass", 1)).NotTo(Succeed())
	})
})
