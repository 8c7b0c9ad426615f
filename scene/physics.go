package scene

import (
	"fmt"

	"github.com/phanxgames/hoverpick"
	"github.com/phanxgames/hoverpick/config"
	"github.com/phanxgames/hoverpick/physics"
)

// groundHalfWidth makes the ground segment wide enough that nothing in the
// exercises falls off its ends.
const groundHalfWidth = 50

func (c *Context) enablePhysics(pc *config.Physics, player *config.Player) error {
	gravity := pc.Gravity
	if gravity == 0 {
		gravity = physics.EarthGravity
	}
	w := physics.NewWorld(gravity)
	w.AddGround(pc.GroundY, groundHalfWidth).Name = "ground"

	bodies := make(map[string]*physics.Body, len(pc.Bodies))
	for _, bc := range pc.Bodies {
		var b *physics.Body
		switch bc.Kind {
		case "sphere":
			b = w.AddSphere(bc.Mass, bc.Radius, bc.Position)
		case "box":
			b = w.AddBox(bc.Mass, bc.Half, bc.Position)
		case "static":
			b = w.AddStaticBox(bc.Position, bc.Half)
		case "kinematic":
			b = w.AddKinematic(bc.Half, bc.Position)
		default:
			return fmt.Errorf("scene: body %q: unknown kind %q", bc.Name, bc.Kind)
		}
		b.Name = bc.Name
		bodies[bc.Name] = b
	}

	for _, mc := range c.Config.Meshes {
		if mc.Body == "" {
			continue
		}
		b, ok := bodies[mc.Body]
		if !ok {
			return fmt.Errorf("scene: mesh %q: unknown body %q", mc.Name, mc.Body)
		}
		m := c.Mesh(mc.Name)
		// Bound meshes follow their body.
		m.Bob = false
		b.Sync(&m.Transform)
		c.bindings = append(c.bindings, binding{mesh: m, body: b})
	}

	if player != nil {
		b, ok := bodies[player.Body]
		if !ok {
			return fmt.Errorf("scene: player: unknown body %q", player.Body)
		}
		c.Player = b
		c.PlayerSpeed = player.Speed
	}

	c.World = w
	c.Bodies = bodies
	return nil
}

// MovePlayer translates the player body by dir scaled by the player speed.
// It does nothing without a player.
func (c *Context) MovePlayer(dir hoverpick.Vec3) {
	if c.Player == nil || dir == (hoverpick.Vec3{}) {
		return
	}
	d := dir.Scale(c.PlayerSpeed)
	c.Player.Translate(d.X, d.Y, d.Z)
}
