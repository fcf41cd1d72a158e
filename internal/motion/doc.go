// Package motion holds the per-frame state of the propeller rig.
//
// Two independent pieces of rotation state are advanced once per tick:
//
//   - [Oscillator]: the swing group's bang-bang nod between -MaxAngle and
//     +MaxAngle. The increment is applied before the bound check and only the
//     direction flips, so the angle may overshoot the bound by up to Speed.
//   - [Spin]: the rotor's unbounded rotation about its own axis.
//
// [Rig] owns one of each and produces a [Frame] per tick.
//
// # Example
//
//	rig := motion.NewRig(motion.DefaultParams())
//	for i := 0; i < 200; i++ {
//		f := rig.Step()
//		fmt.Println(f.Tick, f.Swing, f.Direction)
//	}
//
// # Thread Safety
//
// A Rig is NOT thread-safe. Each front end owns its own rig; concurrent runs
// use one rig per goroutine.
package motion
