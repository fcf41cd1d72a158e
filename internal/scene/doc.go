// Package scene builds the propeller scene graph: camera, lights, clear
// colour and the swing group holding the rotor.
//
// The graph is engine-neutral. Nodes carry Euler rotations in radians,
// applied X then Y then Z, and World returns the accumulated transform as an
// mgl64.Mat4. Front ends (raylib window, terminal wireframe, SVG export) read
// the graph after [Scene.Apply] has written the current frame into it.
package scene
