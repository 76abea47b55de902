package buttons

import "time"

// Flashes tracks the highlight animation of every button. A flash ramps the
// highlight alpha from 0 up to 255 and back down to 0 over the flash
// duration. Starting a flash on a button that is already lit restarts it.
type Flashes struct {
	duration time.Duration
	elapsed  [Count]time.Duration
	active   [Count]bool
}

func NewFlashes(duration time.Duration) *Flashes {
	return &Flashes{duration: duration}
}

// Start lights the button. Out of range indexes are ignored.
func (f *Flashes) Start(index int) {
	if index < 0 || index >= Count {
		return
	}
	f.elapsed[index] = 0
	f.active[index] = f.duration > 0
}

// Advance moves every running flash forward by dt.
func (f *Flashes) Advance(dt time.Duration) {
	for i := range f.active {
		if !f.active[i] {
			continue
		}
		f.elapsed[i] += dt
		if f.elapsed[i] >= f.duration {
			f.active[i] = false
			f.elapsed[i] = 0
		}
	}
}

// Active reports whether the button is currently lit.
func (f *Flashes) Active(index int) bool {
	if index < 0 || index >= Count {
		return false
	}
	return f.active[index]
}

// Alpha is the highlight opacity of the button.
func (f *Flashes) Alpha(index int) uint8 {
	if !f.Active(index) {
		return 0
	}
	p := float64(f.elapsed[index]) / float64(f.duration)
	if p > 0.5 {
		p = 1 - p
	}
	a := p * 2 * 255
	if a > 255 {
		a = 255
	}
	return uint8(a)
}

// Clear stops every flash.
func (f *Flashes) Clear() {
	*f = Flashes{duration: f.duration}
}
