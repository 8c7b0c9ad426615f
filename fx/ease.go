package fx

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// easeFamilies maps GSAP family names to their gween in, out and in-out
// functions.
var easeFamilies = map[string][3]ease.TweenFunc{
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"strong":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// Ease resolves a GSAP-style ease name such as "power2.out" or "sine.inOut".
// A family without a direction defaults to ".out". Unknown names resolve to
// ease.Linear with ok false.
func Ease(name string) (fn ease.TweenFunc, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "none", "linear", "power0", "power0.in", "power0.out", "power0.inout":
		return ease.Linear, true
	}

	family, dir, found := strings.Cut(name, ".")
	if !found {
		dir = "out"
	}
	funcs, known := easeFamilies[family]
	if !known {
		return ease.Linear, false
	}
	switch dir {
	case "in":
		return funcs[0], true
	case "out":
		return funcs[1], true
	case "inout":
		return funcs[2], true
	}
	return ease.Linear, false
}

// MustEase is Ease for names known at compile time. It panics on an unknown
// name.
func MustEase(name string) ease.TweenFunc {
	fn, ok := Ease(name)
	if !ok {
		panic("fx: unknown ease " + name)
	}
	return fn
}
