package fx

// Animator owns running tween groups and advances them once per frame.
// Groups are keyed so a new animation of the same channel replaces the old
// one instead of fighting it for the same fields.
type Animator struct {
	keys   []string
	groups map[string]*TweenGroup
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{groups: make(map[string]*TweenGroup)}
}

// Play starts g under key, stopping any group still running under it. The
// stopped group leaves its fields where they are, so a group built from the
// current values picks up without a jump.
func (a *Animator) Play(key string, g *TweenGroup) {
	if g == nil {
		return
	}
	if old, ok := a.groups[key]; ok {
		old.Stop()
	} else {
		a.keys = append(a.keys, key)
	}
	a.groups[key] = g
}

// Stop halts the group running under key, if any.
func (a *Animator) Stop(key string) {
	g, ok := a.groups[key]
	if !ok {
		return
	}
	g.Stop()
	a.remove(key)
}

// Running reports whether a group is active under key.
func (a *Animator) Running(key string) bool {
	_, ok := a.groups[key]
	return ok
}

// Len returns the number of running groups.
func (a *Animator) Len() int {
	return len(a.keys)
}

// Update advances every group by dt seconds, in the order they were first
// played, and drops the ones that finished.
func (a *Animator) Update(dt float32) {
	// OnComplete may call Play; iterate over a snapshot of the keys.
	keys := append([]string(nil), a.keys...)
	for _, key := range keys {
		g, ok := a.groups[key]
		if !ok {
			continue
		}
		g.Update(dt)
		if g.Done && a.groups[key] == g {
			a.remove(key)
		}
	}
}

func (a *Animator) remove(key string) {
	delete(a.groups, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			return
		}
	}
}
