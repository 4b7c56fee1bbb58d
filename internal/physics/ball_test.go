package physics_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/integrators"
	"github.com/san-kum/eulerlab/internal/physics"
	"github.com/san-kum/eulerlab/internal/sim"
)

func dropBall(e, tEnd float64) (*physics.Ball, *sim.Result) {
	ball := physics.NewBall()
	ball.E = e
	s := sim.New(ball, integrators.NewSemiImplicitEuler(), ball)

	result, err := s.Run(context.Background(), 10, 0, dynamo.Config{TEnd: tEnd, Dt: 0.01})
	Expect(err).NotTo(HaveOccurred())
	return ball, result
}

// apexes returns the first position and every height where the velocity
// turns from rising to falling.
func apexes(tr *dynamo.Trajectory) []float64 {
	peaks := []float64{tr.Position[0]}
	for i := 1; i < tr.Len(); i++ {
		if tr.Velocity[i-1] > 0 && tr.Velocity[i] <= 0 {
			peaks = append(peaks, max(tr.Position[i-1], tr.Position[i]))
		}
	}
	return peaks
}

var _ = Describe("Ball", func() {
	Describe("contact response", func() {
		It("leaves samples above the floor untouched", func() {
			ball := physics.NewBall()
			in := dynamo.Sample{Acceleration: -9.81, Velocity: -3, Position: 1.5}
			out, contact := ball.Constrain(in)
			Expect(contact).To(BeFalse())
			Expect(out).To(Equal(in))
		})

		It("clamps, cancels gravity and reflects the velocity", func() {
			ball := &physics.Ball{G: 9.81, E: 0.5, Radius: 1}
			out, contact := ball.Constrain(dynamo.Sample{Acceleration: -9.81, Velocity: -4, Position: 0.9})
			Expect(contact).To(BeTrue())
			Expect(out.Acceleration).To(BeZero())
			Expect(out.Velocity).To(BeNumerically("~", 2, 1e-12))
			Expect(out.Position).To(Equal(1.0))
		})

		It("treats touching the floor exactly as contact", func() {
			ball := physics.NewBall()
			_, contact := ball.Constrain(dynamo.Sample{Velocity: -1, Position: ball.Radius})
			Expect(contact).To(BeTrue())
		})
	})

	It("records one sample per span entry", func() {
		_, result := dropBall(physics.DefaultRestitution, 5)
		Expect(result.Trajectory.Len()).To(Equal(502))
		Expect(result.Trajectory.Acceleration[0]).To(Equal(-9.81))
		Expect(result.Trajectory.Position[0]).To(Equal(10.0))
	})

	It("never sinks below its radius", func() {
		ball, result := dropBall(physics.DefaultRestitution, 5)
		for i, x := range result.Trajectory.Position {
			Expect(x).To(BeNumerically(">=", ball.Radius), "sample %d", i)
		}
		Expect(result.Contacts).To(BeNumerically(">", 0))
	})

	It("bounces back to the drop height when perfectly elastic", func() {
		_, result := dropBall(1, 20)
		peaks := apexes(result.Trajectory)
		Expect(len(peaks)).To(BeNumerically(">=", 4))

		for _, p := range peaks {
			Expect(p).To(BeNumerically("~", 10, 0.2))
		}
		for i := 2; i < len(peaks); i++ {
			Expect(peaks[i]).To(BeNumerically("~", peaks[1], 1e-9))
		}
	})

	It("loses height on every bounce when e < 1", func() {
		_, result := dropBall(physics.DefaultRestitution, 5)
		peaks := apexes(result.Trajectory)
		Expect(len(peaks)).To(BeNumerically(">=", 3))
		for i := 1; i < len(peaks); i++ {
			Expect(peaks[i]).To(BeNumerically("<", peaks[i-1]))
		}
	})

	It("stays at rest on the floor after the first contact when e = 0", func() {
		ball, result := dropBall(0, 5)
		tr := result.Trajectory

		first := -1
		for i, x := range tr.Position {
			if x == ball.Radius {
				first = i
				break
			}
		}
		Expect(first).To(BeNumerically(">", 0))

		for i := first; i < tr.Len(); i++ {
			Expect(tr.Position[i]).To(Equal(ball.Radius), "sample %d", i)
			Expect(tr.Velocity[i]).To(BeZero(), "sample %d", i)
			Expect(tr.Acceleration[i]).To(BeZero(), "sample %d", i)
		}
	})

	It("rejects a restitution outside [0, 1]", func() {
		ball := physics.NewBall()
		Expect(ball.SetParam("e", 1.5)).NotTo(Succeed())
		Expect(ball.SetParam("e", 1)).To(Succeed())
		Expect(ball.GetParams()).To(HaveKeyWithValue("e", 1.0))
	})
})
