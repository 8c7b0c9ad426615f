package scene

import (
	"math"

	"github.com/phanxgames/hoverpick"
	"github.com/phanxgames/hoverpick/config"
	"github.com/phanxgames/hoverpick/fx"
	"github.com/tanema/gween/ease"
)

func (c *Context) ease(name string) ease.TweenFunc {
	fn, ok := fx.Ease(name)
	if !ok && name != "" {
		c.warnf("unknown ease %q, using linear", name)
	}
	return fn
}

func optionalColor(s string) (hoverpick.Color, bool) {
	if s == "" {
		return hoverpick.Color{}, false
	}
	clr, err := config.ParseColor(s)
	return clr, err == nil
}

// HoverTint recolors meshes from the hover settings: EnterColor on enter,
// LeaveColor (or the mesh's BaseColor) on leave, SelectColor on select.
// Unset enter and select colors leave the mesh alone.
func (c *Context) HoverTint() {
	h := c.Config.Hover
	enter, hasEnter := optionalColor(h.EnterColor)
	leave, hasLeave := optionalColor(h.LeaveColor)
	sel, hasSelect := optionalColor(h.SelectColor)

	if hasEnter {
		c.Tracker.OnEnter(func(ctx hoverpick.HoverContext) {
			if m := MeshOf(ctx.Target); m != nil {
				m.Color = enter
			}
		})
	}
	c.Tracker.OnLeave(func(ctx hoverpick.HoverContext) {
		m := MeshOf(ctx.Target)
		if m == nil {
			return
		}
		if hasLeave {
			m.Color = leave
		} else {
			m.Color = m.BaseColor
		}
	})
	if hasSelect {
		c.Tracker.OnSelect(func(ctx hoverpick.SelectContext) {
			if m := MeshOf(ctx.Target); m != nil {
				m.Color = sel
			}
		})
	}
}

// HoverScale grows a mesh to Hover.Scale over EnterDuration while hovered and
// shrinks it back to its BaseScale over LeaveDuration. A leave replaces an
// unfinished grow. It does nothing when Hover.Scale is zero.
func (c *Context) HoverScale() {
	h := c.Config.Hover
	if h.Scale <= 0 {
		return
	}
	fn := c.ease(h.Ease)
	grown := hoverpick.Vec3{X: h.Scale, Y: h.Scale, Z: h.Scale}

	c.Tracker.OnEnter(func(ctx hoverpick.HoverContext) {
		if m := MeshOf(ctx.Target); m != nil {
			c.Animator.Play(m.Name+"/scale", fx.TweenScale(&m.Transform, grown, float32(h.EnterDuration), fn))
		}
	})
	c.Tracker.OnLeave(func(ctx hoverpick.HoverContext) {
		if m := MeshOf(ctx.Target); m != nil {
			c.Animator.Play(m.Name+"/scale", fx.TweenScale(&m.Transform, m.BaseScale, float32(h.LeaveDuration), fn))
		}
	})
}

// ClickSpin turns a selected mesh Spin.Turns full turns about Y over
// Spin.Duration. Selecting again mid-spin restarts from the current angle.
// It does nothing when Spin.Turns is zero.
func (c *Context) ClickSpin() {
	s := c.Config.Spin
	if s.Turns == 0 {
		return
	}
	fn := c.ease(s.Ease)
	c.Tracker.OnSelect(func(ctx hoverpick.SelectContext) {
		m := MeshOf(ctx.Target)
		if m == nil {
			return
		}
		to := m.Transform.Rotation
		to.Y += s.Turns * 2 * math.Pi
		c.Animator.Play(m.Name+"/spin", fx.TweenRotation(&m.Transform, to, float32(s.Duration), fn))
	})
}
