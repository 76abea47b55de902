package simon

// Source supplies the random button indices used to extend the pattern.
type Source interface {
	// Intn returns a uniformly distributed value in [0,n).
	Intn(n int) int
}

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

// NewRand seeds a generator. The seed is mixed first so that nearby seeds
// (e.g. consecutive clock readings) give unrelated sequences.
func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 1
	}
	return &Rand{s: s}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Intn implements Source. Returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}
