package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/hoverpick"
)

const (
	lineWidth       = 1
	overlayInterval = 0.5 // seconds between overlay text refreshes
)

func toRGBA(c hoverpick.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	// ebiten colors are premultiplied.
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Draw clears to the background and draws every mesh as a wireframe.
func (c *Context) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(c.Background))
	c.DrawWireframes(screen)
}

// DrawWireframes draws every mesh's edges that lie in front of the camera.
func (c *Context) DrawWireframes(screen *ebiten.Image) {
	w, h := float64(c.Sizes.Width), float64(c.Sizes.Height)
	for _, m := range c.Meshes {
		clr := toRGBA(m.Color)
		for _, e := range m.Edges() {
			a, _, okA := c.Camera.Project(e[0])
			b, _, okB := c.Camera.Project(e[1])
			if !okA || !okB {
				continue
			}
			x0, y0 := hoverpick.NDCToPixels(a, w, h)
			x1, y1 := hoverpick.NDCToPixels(b, w, h)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, clr, true)
		}
	}
}

// overlay is the F1 debug text. It is rebuilt every overlayInterval seconds.
type overlay struct {
	text  string
	since float64
}

func (o *overlay) update(c *Context, dt float64) {
	o.since += dt
	if o.text != "" && o.since < overlayInterval {
		return
	}
	o.since = 0
	o.text = c.DebugText(ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *overlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}

// DebugText formats the overlay: frame rates, the hovered target and the
// tracker counters.
func (c *Context) DebugText(fps, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	if ref, ok := c.Tracker.Hovered(); ok {
		fmt.Fprintf(&b, "hover: %s\n", ref.Name)
	} else {
		b.WriteString("hover: -\n")
	}
	s := c.Tracker.Stats()
	fmt.Fprintf(&b, "enters: %d leaves: %d selects: %d\n", s.Enters, s.Leaves, s.Selects)
	fmt.Fprintf(&b, "tweens: %d\n", c.Animator.Len())
	b.WriteString("F1 debug  F4 fullscreen  F12 screenshot  Esc quit")
	return b.String()
}
