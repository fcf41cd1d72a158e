package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/propsim/internal/audio"
	"github.com/san-kum/propsim/internal/config"
	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/scene"
	"github.com/san-kum/propsim/internal/sim"
)

var (
	ColText    = rl.NewColor(140, 160, 180, 255)
	ColTextDim = rl.NewColor(60, 80, 100, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

// App is the raylib front end: one window, one rig, one scene.
type App struct {
	Config    *config.Config
	Rig       *motion.Rig
	Scene     *scene.Scene
	Camera    rl.Camera3D
	Models    map[*scene.Node]rl.Model
	Pacer     *sim.Pacer
	Audio     *audio.Processor
	Running   bool
	Wireframe bool
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "propsim")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// NewApp builds the scene and uploads one model per mesh node. The window
// must already be open.
func NewApp(cfg *config.Config) *App {
	sc := scene.New(cfg.Window.Width, cfg.Window.Height)

	app := &App{
		Config:  cfg,
		Rig:     motion.NewRig(cfg.Params()),
		Scene:   sc,
		Camera:  toCamera(sc.Camera),
		Models:  make(map[*scene.Node]rl.Model),
		Running: true,
	}

	nodes, _ := sc.MeshNodes()
	for _, n := range nodes {
		app.Models[n] = rl.LoadModelFromMesh(genMesh(n.Mesh))
	}

	if cfg.Paced {
		app.Pacer = sim.NewPacer(cfg.FPS)
	}

	if cfg.Audio {
		proc := audio.NewProcessor(scene.BladeCount, cfg.FPS)
		if err := proc.Start(); err == nil {
			app.Audio = proc
		}
	}

	sc.Apply(app.Rig.Frame())
	return app
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg)
	defer app.Close()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Close() {
	for _, m := range a.Models {
		rl.UnloadModel(m)
	}
	if a.Audio != nil {
		a.Audio.Stop()
	}
}

// Update handles input and resizes, then advances the rig. Without a pacer
// the rig moves one tick per rendered frame.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Scene.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Rig = motion.NewRig(a.Config.Params())
		if a.Pacer != nil {
			a.Pacer.Reset()
		}
	}
	if rl.IsKeyPressed(rl.KeyW) {
		a.Wireframe = !a.Wireframe
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.scaleSpeed(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.scaleSpeed(0.8)
	}

	if !a.Running {
		return
	}

	n := 1
	if a.Pacer != nil {
		n = a.Pacer.Due(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	}
	for i := 0; i < n; i++ {
		a.Rig.Step()
	}

	f := a.Rig.Frame()
	a.Scene.Apply(f)
	if a.Audio != nil {
		a.Audio.Update(f, a.Rig.Params())
	}
}

func (a *App) scaleSpeed(factor float64) {
	p := a.Rig.Params()
	a.Rig.SetSpeeds(p.SwingSpeed*factor, p.SpinSpeed*factor)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(a.Scene.Clear))

	a.Camera = toCamera(a.Scene.Camera)
	rl.BeginMode3D(a.Camera)
	nodes, worlds := a.Scene.MeshNodes()
	for i, n := range nodes {
		model, ok := a.Models[n]
		if !ok {
			continue
		}
		model.Transform = toMatrix(modelTransform(n, worlds[i]))
		if a.Wireframe {
			rl.DrawModelWires(model, rl.Vector3Zero(), 1.0, toColor(n.Mesh.Material.Color))
		} else {
			rl.DrawModel(model, rl.Vector3Zero(), 1.0, toColor(a.Scene.ShadeNode(n, worlds[i])))
		}
	}
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	f := a.Rig.Frame()
	p := a.Rig.Params()
	h := int32(a.Scene.Height)

	rl.DrawText("propsim", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf("swing %+.3f %s", f.Swing, f.Direction), 30, 64, 16, ColText)
	rl.DrawText(fmt.Sprintf("spin  %.3f  turns %d", f.Spin, a.Rig.Rotor.Turns), 30, 84, 16, ColText)
	rl.DrawText(fmt.Sprintf("speed %.4f / %.4f", p.SwingSpeed, p.SpinSpeed), 30, 104, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, int32(a.Scene.Width)-130, 30, 16, col)

	rl.DrawText("[SPACE] PAUSE  [R] RESET  [+/-] SPEED  [W] WIRES  [Q] QUIT", 30, h-30, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(a.Scene.Width)-100, h-30, 14, ColTextDim)
}
