package entity

const minTrailCapacity = 4

// Trail - ordered body segments of the snake, oldest first, kept in a ring buffer.
type Trail struct {
	buf   []Position
	start int
	size  int
}

func NewTrail(segments ...Position) *Trail {
	trail := &Trail{}
	for _, segment := range segments {
		trail.PushBack(segment)
	}

	return trail
}

func (that *Trail) Len() int {
	return that.size
}

// At - segment by index, 0 is the oldest.
func (that *Trail) At(i int) Position {
	if i < 0 || i >= that.size {
		panic("trail: index out of range")
	}

	return that.buf[(that.start+i)%len(that.buf)]
}

func (that *Trail) PushBack(p Position) {
	if that.size == len(that.buf) {
		that.grow()
	}

	that.buf[(that.start+that.size)%len(that.buf)] = p
	that.size++
}

// PopFront - removes and returns the oldest segment.
func (that *Trail) PopFront() (Position, bool) {
	if that.size == 0 {
		return Position{}, false
	}

	p := that.buf[that.start]
	that.start = (that.start + 1) % len(that.buf)
	that.size--

	return p, true
}

// ContainsFrom - reports whether p is one of the segments with index >= from.
func (that *Trail) ContainsFrom(from int, p Position) bool {
	for i := max(from, 0); i < that.size; i++ {
		if that.At(i).Equal(p) {
			return true
		}
	}

	return false
}

// Slice - copy of the segments, oldest first.
func (that *Trail) Slice() []Position {
	out := make([]Position, that.size)
	for i := range out {
		out[i] = that.At(i)
	}

	return out
}

func (that *Trail) grow() {
	capacity := max(len(that.buf)*2, minTrailCapacity)

	buf := make([]Position, capacity)
	for i := 0; i < that.size; i++ {
		buf[i] = that.At(i)
	}

	that.buf = buf
	that.start = 0
}
