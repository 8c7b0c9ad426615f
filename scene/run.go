package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrScriptFailed is returned by Run when an attached pointer script ended
// with failed expectations.
var ErrScriptFailed = errors.New("scene: pointer script failed")

// RunConfig holds the per-exercise hooks for Run.
type RunConfig struct {
	// Update runs every frame after input polling and before the tracker
	// update. Returning an error stops the loop.
	Update func(c *Context) error
	// Draw runs after the wireframes and before the overlay.
	Draw func(c *Context, screen *ebiten.Image)
	// QuitOnScriptEnd stops the loop once an attached script is done.
	QuitOnScriptEnd bool
}

// Run opens a window sized from c.Config and runs the loop until the window
// closes, Esc is pressed, or a hook fails.
func Run(c *Context, rc RunConfig) error {
	defer c.Close()

	ebiten.SetWindowTitle(c.Config.Title)
	ebiten.SetWindowSize(c.Sizes.Width, c.Sizes.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{ctx: c, cfg: rc, scripted: c.Tracker.Scripted()}
	err := ebiten.RunGame(g)
	c.Tracker.DebugLog()
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil && g.scriptErr != nil {
		err = g.scriptErr
	}
	return err
}

type game struct {
	ctx *Context
	cfg RunConfig

	overlay   overlay
	scripted  bool
	scriptErr error
}

func (g *game) Update() error {
	c := g.ctx

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		c.ShowDebug = !c.ShowDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		c.Screenshot("f12")
	}

	// Scripts own the pointer until they finish.
	if !c.Tracker.Scripted() && !c.Tracker.Injecting() {
		x, y := ebiten.CursorPosition()
		c.Tracker.Pointer().MoveToPixels(float64(x), float64(y), float64(c.Sizes.Width), float64(c.Sizes.Height))
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			c.Tracker.Pointer().Press()
		}
	}

	dt := 1 / float64(ebiten.TPS())
	if err := c.Update(dt, g.cfg.Update); err != nil {
		return err
	}
	if c.ShowDebug {
		g.overlay.update(c, dt)
	}

	if g.scripted && !c.Tracker.Scripted() {
		g.scripted = false
		g.scriptErr = c.scriptResult()
		if g.cfg.QuitOnScriptEnd {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.ctx
	c.Draw(screen)
	if g.cfg.Draw != nil {
		g.cfg.Draw(c, screen)
	}
	if c.ShowDebug {
		g.overlay.draw(screen)
	}
	c.flushScreenshots(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctx.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// scriptResult logs the outcome of a finished script.
func (c *Context) scriptResult() error {
	failures := c.Tracker.ScriptFailures()
	if len(failures) == 0 {
		c.warnf("script: passed")
		return nil
	}
	c.warnf("script: %d failed expectation(s):\n  %s", len(failures), strings.Join(failures, "\n  "))
	return fmt.Errorf("%w: %d failure(s)", ErrScriptFailed, len(failures))
}
