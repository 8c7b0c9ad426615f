package scene

import (
	"github.com/phanxgames/hoverpick/config"
)

// WatchConfig reloads the settings file at path whenever it changes on disk.
// Reloads are applied at the start of the next Update.
func (c *Context) WatchConfig(path string) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	if c.watcher != nil {
		_ = c.watcher.Close()
	}
	c.watcher = w
	c.watchPath = path
	return nil
}

func (c *Context) pollReload() {
	if c.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case _, ok := <-c.watcher.Events:
			if !ok {
				c.watcher = nil
				return
			}
			changed = true
		case err, ok := <-c.watcher.Errors:
			if ok {
				c.warnf("watch: %v", err)
			}
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	s, err := config.LoadSceneFile(c.watchPath)
	if err != nil {
		c.warnf("reload: %v", err)
		return
	}
	c.Reload(s)
}

// Reload applies settings to the live scene: background, camera, debug flags
// and the colors of meshes that share a name with the new settings. Meshes
// are neither added nor removed. OnReload runs afterwards.
func (c *Context) Reload(s config.Scene) {
	if bg, err := config.ParseColor(s.Background); err == nil {
		c.Background = bg
	}

	c.Camera.FieldOfView = s.Camera.FOV
	c.Camera.Near = s.Camera.Near
	c.Camera.Far = s.Camera.Far
	c.Camera.Position = s.Camera.Position
	c.Camera.LookAt = s.Camera.LookAt

	c.Tracker.SetDebugMode(s.Debug)
	c.ShowDebug = s.Debug

	for _, mc := range s.Meshes {
		m := c.Mesh(mc.Name)
		if m == nil || mc.Color == "" {
			continue
		}
		clr, err := config.ParseColor(mc.Color)
		if err != nil {
			continue
		}
		// Only meshes not mid-reaction take the new color right away.
		if m.Color == m.BaseColor {
			m.Color = clr
		}
		m.BaseColor = clr
	}

	c.Config = s
	if c.OnReload != nil {
		c.OnReload(c)
	}
}
