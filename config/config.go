// Package config loads exercise settings from YAML. Every exercise has an
// embedded default; a file of the same name under OverrideDir wins over it.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/hoverpick"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// OverrideDir is searched before the embedded defaults.
var OverrideDir = "config"

// Scene is the top-level settings document of one exercise.
type Scene struct {
	Title         string   `yaml:"title"`
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	Background    string   `yaml:"background"`
	Debug         bool     `yaml:"debug"`
	ScreenshotDir string   `yaml:"screenshot_dir"`
	Script        string   `yaml:"script"`
	Camera        Camera   `yaml:"camera"`
	Meshes        []Mesh   `yaml:"meshes"`
	Hover         Hover    `yaml:"hover"`
	Spin          Spin     `yaml:"spin"`
	Physics       *Physics `yaml:"physics"`
	Player        *Player  `yaml:"player"`
	Trail         *Trail   `yaml:"trail"`
}

// Camera describes the perspective camera.
type Camera struct {
	FOV      float64        `yaml:"fov"`
	Near     float64        `yaml:"near"`
	Far      float64        `yaml:"far"`
	Position hoverpick.Vec3 `yaml:"position"`
	LookAt   hoverpick.Vec3 `yaml:"look_at"`
}

// Mesh describes one drawable object.
type Mesh struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"` // sphere, box, plane or cylinder
	Radius   float64        `yaml:"radius"`
	Size     hoverpick.Vec3 `yaml:"size"`
	Segments int            `yaml:"segments"`
	Position hoverpick.Vec3 `yaml:"position"`
	Color    string         `yaml:"color"`
	Pickable bool           `yaml:"pickable"`
	Bob      bool           `yaml:"bob"`
	// Body names the physics body that drives this mesh, if any.
	Body string `yaml:"body"`
}

// Hover holds the reactions of the picking exercises.
type Hover struct {
	EnterColor    string  `yaml:"enter_color"`
	LeaveColor    string  `yaml:"leave_color"`
	SelectColor   string  `yaml:"select_color"`
	Scale         float64 `yaml:"scale"`
	EnterDuration float64 `yaml:"enter_duration"`
	LeaveDuration float64 `yaml:"leave_duration"`
	Ease          string  `yaml:"ease"`
}

// Spin is the click-to-spin reaction.
type Spin struct {
	Turns    float64 `yaml:"turns"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// Physics configures the rigid body world.
type Physics struct {
	Gravity float64 `yaml:"gravity"`
	GroundY float64 `yaml:"ground_y"`
	Bodies  []Body  `yaml:"bodies"`
}

// Body is one rigid body.
type Body struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"` // sphere, box, static or kinematic
	Mass     float64        `yaml:"mass"`
	Radius   float64        `yaml:"radius"`
	Half     hoverpick.Vec3 `yaml:"half"`
	Position hoverpick.Vec3 `yaml:"position"`
}

// Player is the keyboard-driven kinematic body.
type Player struct {
	Body  string  `yaml:"body"`
	Speed float64 `yaml:"speed"`
}

// Trail configures the image trail.
type Trail struct {
	MinDistance  float64 `yaml:"min_distance"`
	Images       int     `yaml:"images"`
	ImageW       float64 `yaml:"image_w"`
	ImageH       float64 `yaml:"image_h"`
	FadeIn       float64 `yaml:"fade_in"`
	FadeOutDelay float64 `yaml:"fade_out_delay"`
	FadeOut      float64 `yaml:"fade_out"`
	Rise         float64 `yaml:"rise"`
	MaxZ         int     `yaml:"max_z"`
	Ease         string  `yaml:"ease"`
}

// Load returns the raw bytes of a settings file, preferring the copy under
// OverrideDir.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(filepath.Join(OverrideDir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return defaultsFS.ReadFile("defaults/" + clean)
}

// LoadScene loads and parses a settings file by name, e.g. "clicks.yaml".
func LoadScene(name string) (Scene, error) {
	data, err := Load(name)
	if err != nil {
		return Scene{}, fmt.Errorf("config: load %s: %w", name, err)
	}
	return Parse(name, data)
}

// LoadSceneFile parses a settings file from an explicit path.
func LoadSceneFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the built-in defaults and validates the result.
// name is only used in error messages.
func Parse(name string, data []byte) (Scene, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return s, nil
}

// Names lists the embedded settings files.
func Names() []string {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Defaults returns the values every exercise starts from.
func Defaults() Scene {
	return Scene{
		Title:         "hoverpick",
		Width:         800,
		Height:        600,
		Background:    "#000000",
		ScreenshotDir: "screenshots",
		Camera: Camera{
			FOV:      45,
			Near:     0.1,
			Far:      100,
			Position: hoverpick.Vec3{Z: 3},
		},
	}
}

// Validate reports settings that cannot produce a scene.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %v out of range (0, 180)", s.Camera.FOV)
	}
	if s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("camera clip planes near=%v far=%v invalid", s.Camera.Near, s.Camera.Far)
	}
	if _, err := ParseColor(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	seen := make(map[string]bool, len(s.Meshes))
	for i, m := range s.Meshes {
		if m.Name == "" {
			return fmt.Errorf("mesh %d: missing name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("mesh %q: duplicate name", m.Name)
		}
		seen[m.Name] = true
		switch m.Kind {
		case "sphere", "box", "plane", "cylinder":
		default:
			return fmt.Errorf("mesh %q: unknown kind %q", m.Name, m.Kind)
		}
		if m.Color != "" {
			if _, err := ParseColor(m.Color); err != nil {
				return fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}

	for _, c := range []string{s.Hover.EnterColor, s.Hover.LeaveColor, s.Hover.SelectColor} {
		if c == "" {
			continue
		}
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("hover: %w", err)
		}
	}

	if s.Physics != nil {
		bodies := make(map[string]bool, len(s.Physics.Bodies))
		for i, b := range s.Physics.Bodies {
			if b.Name == "" {
				return fmt.Errorf("body %d: missing name", i)
			}
			bodies[b.Name] = true
			switch b.Kind {
			case "sphere", "box":
				if b.Mass <= 0 {
					return fmt.Errorf("body %q: mass must be positive", b.Name)
				}
			case "static", "kinematic":
			default:
				return fmt.Errorf("body %q: unknown kind %q", b.Name, b.Kind)
			}
		}
		for _, m := range s.Meshes {
			if m.Body != "" && !bodies[m.Body] {
				return fmt.Errorf("mesh %q: unknown body %q", m.Name, m.Body)
			}
		}
		if s.Player != nil && !bodies[s.Player.Body] {
			return fmt.Errorf("player: unknown body %q", s.Player.Body)
		}
	} else if s.Player != nil {
		return fmt.Errorf("player: no physics section")
	}

	if tr := s.Trail; tr != nil {
		if tr.MaxZ < 0 {
			return fmt.Errorf("trail: max_z %d must not be negative", tr.MaxZ)
		}
		if tr.Images < 0 {
			return fmt.Errorf("trail: images %d must not be negative", tr.Images)
		}
		if tr.ImageW < 0 || tr.ImageH < 0 {
			return fmt.Errorf("trail: image size %vx%v must not be negative", tr.ImageW, tr.ImageH)
		}
		if tr.FadeIn < 0 || tr.FadeOutDelay < 0 || tr.FadeOut < 0 {
			return fmt.Errorf("trail: durations must not be negative")
		}
	}
	return nil
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "defaults/"); ok {
		s = after
	}
	return s
}
