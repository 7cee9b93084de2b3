package puzzle

// RandomSource supplies uniform integers in [0, n).
// *math/rand.Rand satisfies it; tests can plug in fixed sequences.
type RandomSource interface {
	Intn(n int) int
}

// Spawner produces replacement gems. It drains a FIFO queue of pending
// types first and falls back to a uniform draw over the palette.
type Spawner struct {
	queue   []GemType
	palette []GemType
	rng     RandomSource
}

// NewSpawner creates a spawner with an empty queue.
func NewSpawner(palette []GemType, rng RandomSource) (*Spawner, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make([]GemType, len(palette))
	copy(p, palette)
	return &Spawner{
		queue:   make([]GemType, 0),
		palette: p,
		rng:     rng,
	}, nil
}

// Next returns the next gem type, consuming the queue head if there is one.
func (s *Spawner) Next() GemType {
	if len(s.queue) > 0 {
		t := s.queue[0]
		s.queue = s.queue[1:]
		return t
	}
	return s.palette[s.rng.Intn(len(s.palette))]
}

// Draw returns n gem types in draw order.
func (s *Spawner) Draw(n int) []GemType {
	types := make([]GemType, n)
	for i := range types {
		types[i] = s.Next()
	}
	return types
}

// Push appends types to the end of the queue.
func (s *Spawner) Push(types ...GemType) {
	s.queue = append(s.queue, types...)
}

// Pending returns a copy of the queued types, head first.
func (s *Spawner) Pending() []GemType {
	pending := make([]GemType, len(s.queue))
	copy(pending, s.queue)
	return pending
}

// Len returns the number of queued types.
func (s *Spawner) Len() int {
	return len(s.queue)
}
