// Package scene is the bootstrap shared by the exercises: window sizes, a
// perspective camera, the pick tracker, wireframe meshes, tweens, optional
// physics, and the Ebitengine loop that drives them.
package scene

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/phanxgames/hoverpick"
	"github.com/phanxgames/hoverpick/config"
	"github.com/phanxgames/hoverpick/fx"
	"github.com/phanxgames/hoverpick/physics"
)

// Bob motion of floating meshes.
const (
	bobAmplitude = 0.1
	bobSpeed     = 2
)

// Sizes is the current viewport size in pixels.
type Sizes struct {
	Width, Height int
}

// Clock tracks frame time. Elapsed only grows.
type Clock struct {
	Elapsed float64
	Delta   float64
	Frames  uint64
}

// Tick advances the clock by dt seconds. Negative dt counts as zero.
func (c *Clock) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.Delta = dt
	c.Elapsed += dt
	c.Frames++
}

type binding struct {
	mesh *Mesh
	body *physics.Body
}

// Context is the live state of one exercise. Everything in it belongs to the
// frame goroutine.
type Context struct {
	Config config.Scene

	Sizes    Sizes
	Camera   *hoverpick.PerspectiveCamera
	Caster   *hoverpick.ShapeCaster
	Targets  *hoverpick.TargetSet
	Tracker  *hoverpick.Tracker
	Meshes   []*Mesh
	Animator *fx.Animator
	Clock    Clock

	Background hoverpick.Color
	// ShowDebug draws the stats overlay. F1 toggles it.
	ShowDebug bool

	// World is nil unless the settings have a physics section.
	World       *physics.World
	Bodies      map[string]*physics.Body
	Player      *physics.Body
	PlayerSpeed float64
	bindings    []binding

	// OnReload runs on the frame goroutine after a watched settings file was
	// reloaded and applied.
	OnReload func(c *Context)

	watcher   *config.Watcher
	watchPath string

	screenshots []string
	logOut      io.Writer
}

// New builds a context from validated settings.
func New(cfg config.Scene) (*Context, error) {
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("scene: background: %w", err)
	}

	cam := hoverpick.NewPerspectiveCamera(cfg.Camera.FOV, 1, cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = cfg.Camera.Position
	cam.LookAt = cfg.Camera.LookAt
	cam.SetAspect(float64(cfg.Width), float64(cfg.Height))

	caster := hoverpick.NewShapeCaster(cam)
	targets := hoverpick.NewTargetSet()
	tracker := hoverpick.NewTracker(caster, targets)
	tracker.SetDebugMode(cfg.Debug)

	c := &Context{
		Config:     cfg,
		Sizes:      Sizes{Width: cfg.Width, Height: cfg.Height},
		Camera:     cam,
		Caster:     caster,
		Targets:    targets,
		Tracker:    tracker,
		Animator:   fx.NewAnimator(),
		Background: bg,
		ShowDebug:  cfg.Debug,
		logOut:     os.Stderr,
	}

	for _, mc := range cfg.Meshes {
		m, err := NewMesh(mc)
		if err != nil {
			return nil, err
		}
		c.AddMesh(m)
	}

	if cfg.Physics != nil {
		if err := c.enablePhysics(cfg.Physics, cfg.Player); err != nil {
			return nil, err
		}
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("scene: script %s: %w", cfg.Script, err)
		}
		runner, err := hoverpick.LoadScript(data)
		if err != nil {
			return nil, fmt.Errorf("scene: script %s: %w", cfg.Script, err)
		}
		runner.OnScreenshot = c.Screenshot
		tracker.SetScriptRunner(runner)
	}
	return c, nil
}

// SetLogOutput sets where warnings go. Nil means stderr.
func (c *Context) SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	c.logOut = w
	c.Tracker.SetLogOutput(w)
}

func (c *Context) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.logOut, "[hoverpick] "+format+"\n", args...)
}

// Resize updates the viewport size and the camera aspect.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Sizes = Sizes{Width: width, Height: height}
	c.Camera.SetAspect(float64(width), float64(height))
}

// AddMesh registers m for drawing. A pickable mesh also gets a Target whose
// UserData is the mesh.
func (c *Context) AddMesh(m *Mesh) {
	c.Meshes = append(c.Meshes, m)
	if !m.Pickable {
		return
	}
	if m.Target == nil {
		m.Target = hoverpick.NewTarget(m.Name, m)
		m.Target.UserData = m
	}
	c.Targets.Add(m.Target)
}

// Mesh returns the mesh with the given name, or nil.
func (c *Context) Mesh(name string) *Mesh {
	for _, m := range c.Meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// MeshOf returns the mesh behind a tracker event, or nil.
func MeshOf(ref hoverpick.TargetRef) *Mesh {
	m, _ := ref.UserData.(*Mesh)
	return m
}

// Update runs one frame after input has been fed to the tracker's pointer:
// it applies a pending reload, advances the clock, bobs floating meshes,
// steps physics, runs hook, then updates the tracker and the tweens.
func (c *Context) Update(dt float64, hook func(*Context) error) error {
	c.pollReload()
	c.Clock.Tick(dt)

	for _, m := range c.Meshes {
		if m.Bob {
			m.Transform.Position.Y = m.rest.Y + math.Sin(c.Clock.Elapsed*bobSpeed)*bobAmplitude
		}
	}

	if c.World != nil {
		c.World.FixedStep()
		for _, b := range c.bindings {
			b.body.Sync(&b.mesh.Transform)
		}
	}

	if hook != nil {
		if err := hook(c); err != nil {
			return err
		}
	}

	c.Tracker.Update()
	c.Animator.Update(float32(c.Clock.Delta))
	return nil
}

// Close stops the settings watcher, if any.
func (c *Context) Close() error {
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	return err
}
