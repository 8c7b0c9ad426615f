// Package trail implements a pointer-following image trail: an image is
// dropped every time the pointer has travelled far enough, fades in while
// drifting up, then fades out and is removed.
package trail

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Config controls how items are spawned and animated.
type Config struct {
	// MinDistance is how far, in pixels along either axis, the pointer must
	// move from the last spawn before another item appears.
	MinDistance float64
	// ImageCount is the number of images cycled through. Draw uses the
	// images passed to New; this only matters when none were given.
	ImageCount int
	// ImageW and ImageH are the drawn size of each item in pixels.
	ImageW, ImageH float64
	// FadeIn is the fade-in duration in seconds.
	FadeIn float32
	// FadeOutDelay is the time from spawn until the fade-out starts.
	FadeOutDelay float32
	// FadeOut is the fade-out duration in seconds.
	FadeOut float32
	// Rise is how many pixels an item drifts up while fading in.
	Rise float64
	// MaxZ bounds the random stacking order, drawn from [0, MaxZ].
	MaxZ int
	// Ease shapes every fade and the rise.
	Ease ease.TweenFunc
	// MaxItems caps live items. New spawns are dropped when full.
	MaxItems int
}

// DefaultConfig returns the settings of the mouse trail exercise.
func DefaultConfig() Config {
	return Config{
		MinDistance:  200,
		ImageCount:   6,
		ImageW:       227,
		ImageH:       150,
		FadeIn:       1,
		FadeOutDelay: 1,
		FadeOut:      1,
		Rise:         20,
		MaxZ:         10,
		Ease:         ease.OutQuart, // power3.out
		MaxItems:     256,
	}
}

// Item is one live image of the trail.
type Item struct {
	X, Y  float64 // centre, where the pointer was at spawn
	Image int
	Z     int
	Alpha float64
	// OffsetY is the current upward drift, 0 to -Rise.
	OffsetY float64

	seq  uint64
	fade *gween.Sequence
	rise *gween.Tween
}

// Trail spawns and animates items. It is driven from the frame loop: Move
// for pointer positions, Update once per frame, Draw to render.
type Trail struct {
	config Config
	images []*ebiten.Image
	rng    *rand.Rand

	last    [2]float64
	next    int
	seq     uint64
	items   []*Item
	drawBuf []*Item
}

// New creates a trail. images may be nil when only the animation state is
// needed.
func New(cfg Config, images []*ebiten.Image) *Trail {
	if len(images) > 0 {
		cfg.ImageCount = len(images)
	}
	if cfg.ImageCount <= 0 {
		cfg.ImageCount = 1
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 256
	}
	cfg.MaxZ = max(cfg.MaxZ, 0)
	return &Trail{
		config: cfg,
		images: images,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetSeed makes the stacking order reproducible.
func (t *Trail) SetSeed(seed uint64) {
	t.rng = rand.New(rand.NewPCG(seed, seed))
}

// Config returns a pointer to the trail's config for live tuning.
func (t *Trail) Config() *Config {
	return &t.config
}

// Len returns the number of live items.
func (t *Trail) Len() int {
	return len(t.items)
}

// Items returns the live items in spawn order. The returned slice MUST NOT
// be mutated.
func (t *Trail) Items() []*Item {
	return t.items
}

// Move reports a pointer position in pixels. It spawns an item there when the
// pointer is at least MinDistance away from the last spawn along either
// axis. The first spawn is measured from (0, 0). It reports whether an item
// was spawned.
func (t *Trail) Move(x, y float64) bool {
	dx := math.Abs(x - t.last[0])
	dy := math.Abs(y - t.last[1])
	if dx < t.config.MinDistance && dy < t.config.MinDistance {
		return false
	}
	t.last = [2]float64{x, y}
	return t.spawn(x, y)
}

func (t *Trail) spawn(x, y float64) bool {
	if len(t.items) >= t.config.MaxItems {
		return false
	}
	c := &t.config

	fade := gween.NewSequence(gween.New(0, 1, c.FadeIn, c.Ease))
	if hold := c.FadeOutDelay - c.FadeIn; hold > 0 {
		fade.Add(gween.New(1, 1, hold, ease.Linear))
	}
	fade.Add(gween.New(1, 0, c.FadeOut, c.Ease))

	t.seq++
	item := &Item{
		X:     x,
		Y:     y,
		Image: t.next,
		Z:     t.rng.IntN(max(c.MaxZ, 0) + 1),
		seq:   t.seq,
		fade:  fade,
		rise:  gween.New(0, float32(-c.Rise), c.FadeIn, c.Ease),
	}
	t.items = append(t.items, item)

	// Config may have been retuned since New.
	t.next = (t.next + 1) % max(c.ImageCount, 1)
	return true
}

// Update advances every item by dt seconds and removes the ones whose
// fade-out has completed.
func (t *Trail) Update(dt float64) {
	step := float32(dt)
	n := 0
	for _, it := range t.items {
		alpha, _, done := it.fade.Update(step)
		it.Alpha = float64(alpha)
		rise, _ := it.rise.Update(step)
		it.OffsetY = float64(rise)
		if done {
			continue
		}
		t.items[n] = it
		n++
	}
	for i := n; i < len(t.items); i++ {
		t.items[i] = nil
	}
	t.items = t.items[:n]
}

// Clear removes every item and resets the spawn origin.
func (t *Trail) Clear() {
	for i := range t.items {
		t.items[i] = nil
	}
	t.items = t.items[:0]
	t.last = [2]float64{}
	t.next = 0
}

// sorted returns the live items ordered for drawing: by Z, then by spawn
// order.
func (t *Trail) sorted() []*Item {
	t.drawBuf = append(t.drawBuf[:0], t.items...)
	sort.SliceStable(t.drawBuf, func(i, j int) bool {
		a, b := t.drawBuf[i], t.drawBuf[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.seq < b.seq
	})
	return t.drawBuf
}

// Draw renders the items onto dst, centred on their spawn points.
func (t *Trail) Draw(dst *ebiten.Image) {
	if len(t.images) == 0 {
		return
	}
	w, h := t.config.ImageW, t.config.ImageH
	for _, it := range t.sorted() {
		if it.Image >= len(t.images) || it.Alpha <= 0 {
			continue
		}
		img := t.images[it.Image]
		b := img.Bounds()

		var op ebiten.DrawImageOptions
		if b.Dx() > 0 && b.Dy() > 0 {
			op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		}
		op.GeoM.Translate(it.X-w/2, it.Y-h/2+it.OffsetY)
		op.ColorScale.ScaleAlpha(float32(it.Alpha))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, &op)
	}
}
