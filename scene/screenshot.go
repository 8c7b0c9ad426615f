package scene

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG goes
// to the configured screenshot directory.
func (c *Context) Screenshot(label string) {
	c.screenshots = append(c.screenshots, label)
}

// flushScreenshots writes one PNG per queued label. Called at the end of Draw.
func (c *Context) flushScreenshots(screen *ebiten.Image) {
	if len(c.screenshots) == 0 {
		return
	}
	defer func() { c.screenshots = c.screenshots[:0] }()

	dir := c.Config.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.warnf("screenshot: mkdir %s: %v", dir, err)
		return
	}

	// ReadPixels yields premultiplied RGBA, which is image.RGBA's layout.
	bounds := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	screen.ReadPixels(img.Pix)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.screenshots {
		path := filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			c.warnf("screenshot: %v", err)
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
