package scene_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/scene"
)

var _ = Describe("Propeller driven by a rig", func() {
	var (
		sc  *scene.Scene
		rig *motion.Rig
	)

	BeforeEach(func() {
		sc = scene.New(0, 0)
		rig = motion.NewRig(motion.DefaultParams())
	})

	step := func(n int) {
		for i := 0; i < n; i++ {
			sc.Apply(rig.Step())
		}
	}

	It("keeps the hub at the origin", func() {
		step(250)
		hub := mgl64.TransformCoordinate(mgl64.Vec3{}, sc.Propeller.Hub.World())
		Expect(hub.Len()).To(BeNumerically("<", 1e-12))
	})

	It("keeps every blade tip on the rotor circle", func() {
		step(137)
		for _, b := range sc.Propeller.Blades {
			tip := mgl64.TransformCoordinate(mgl64.Vec3{0, scene.BladeLength / 2, 0}, b.World())
			Expect(tip.Len()).To(BeNumerically("~", scene.BladeLength/2, 1e-9))
		}
	})

	It("mirrors the rig angles into the transforms", func() {
		step(42)
		f := rig.Frame()
		Expect(sc.Propeller.Group.Rotation.Y()).To(Equal(f.Swing))
		Expect(sc.Propeller.Shape.Rotation.Z()).To(Equal(f.Spin))
	})

	DescribeTable("resizing only changes the viewport",
		func(w, h int, aspect float64) {
			step(10)
			before := sc.Propeller.Blades[0].World()

			sc.Resize(w, h)

			Expect(sc.Camera.Aspect).To(BeNumerically("~", aspect, 1e-12))
			Expect(sc.Propeller.Blades[0].World()).To(Equal(before))
			Expect(rig.Ticks()).To(Equal(10))
		},
		Entry("square", 600, 600, 1.0),
		Entry("wide", 1920, 1080, 1920.0/1080.0),
		Entry("tall", 400, 800, 0.5),
	)
})
