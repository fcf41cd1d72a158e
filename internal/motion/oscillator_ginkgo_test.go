package motion_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/propsim/internal/motion"
)

var _ = Describe("Oscillator", func() {
	var osc *motion.Oscillator

	BeforeEach(func() {
		osc = motion.DefaultOscillator()
	})

	It("starts centred and moving forward", func() {
		Expect(osc.Angle).To(BeZero())
		Expect(osc.Direction).To(Equal(motion.Forward))
		Expect(osc.Validate()).To(Succeed())
	})

	Context("over a full cycle", func() {
		It("reverses twice and returns near the centre", func() {
			flips := 0
			prev := osc.Direction
			for i := 0; i < 360; i++ {
				osc.Tick()
				if osc.Direction != prev {
					flips++
					prev = osc.Direction
				}
			}
			Expect(flips).To(Equal(2))
			Expect(osc.Angle).To(BeNumerically("~", 0, 0.02))
		})
	})

	DescribeTable("one tick from any in-bound state",
		func(angle float64, dir motion.Direction) {
			osc.Angle, osc.Direction = angle, dir
			before := osc.Angle
			osc.Tick()
			Expect(osc.Angle - before).To(BeNumerically("~", osc.Speed*float64(dir), 1e-12))
		},
		Entry("lower bound, forward", -0.9, motion.Forward),
		Entry("lower bound, reverse", -0.9, motion.Reverse),
		Entry("centre, forward", 0.0, motion.Forward),
		Entry("upper bound, reverse", 0.9, motion.Reverse),
		Entry("upper bound, forward", 0.9, motion.Forward),
	)
})

var _ = Describe("Rig", func() {
	It("stays inside the overshoot envelope for a long run", func() {
		rig := motion.NewRig(motion.DefaultParams())
		lo, hi := rig.Swing.Bounds()
		for i := 0; i < 20000; i++ {
			f := rig.Step()
			Expect(f.Swing).To(BeNumerically(">=", lo))
			Expect(f.Swing).To(BeNumerically("<=", hi))
		}
	})

	It("wraps the rotor angle into one turn", func() {
		rig := motion.NewRig(motion.DefaultParams())
		for i := 0; i < 1000; i++ {
			rig.Step()
		}
		Expect(rig.Rotor.Angle).To(BeNumerically(">=", 0))
		Expect(rig.Rotor.Angle).To(BeNumerically("<", motion.TwoPi))
		Expect(rig.Rotor.Total()).To(BeNumerically("~", 100.0, 1e-9))
	})
})
