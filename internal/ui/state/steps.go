package state

// StepSequence is the ordered list of steps of a multi-field form. Each step
// is a row of alternative blocks, one per column; single-column flows use
// one block per row.
type StepSequence[B comparable] [][]B

// Steps builds a single-column sequence.
func Steps[B comparable](blocks ...B) StepSequence[B] {
	seq := make(StepSequence[B], len(blocks))
	for i, b := range blocks {
		seq[i] = []B{b}
	}
	return seq
}

// Len returns the number of steps.
func (s StepSequence[B]) Len() int {
	return len(s)
}

// First returns the first block of the first step.
func (s StepSequence[B]) First() B {
	var zero B
	if len(s) == 0 || len(s[0]) == 0 {
		return zero
	}
	return s[0][0]
}

// Locate returns the first row and column holding block.
func (s StepSequence[B]) Locate(block B) (row, col int, ok bool) {
	for r, step := range s {
		for c, b := range step {
			if b == block {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Contains reports whether block belongs to any step.
func (s StepSequence[B]) Contains(block B) bool {
	_, _, ok := s.Locate(block)
	return ok
}

// Next returns the block of the step after current, in the same column where
// the next row has one. The last step wraps to the first. A block that is not
// part of the sequence resets to the first step.
func (s StepSequence[B]) Next(current B) B {
	row, col, ok := s.Locate(current)
	if !ok {
		return s.First()
	}
	return s.at((row+1)%len(s), col)
}

// Previous returns the block of the step before current, wrapping from the
// first step to the last. A block that is not part of the sequence resets to
// the first step.
func (s StepSequence[B]) Previous(current B) B {
	row, col, ok := s.Locate(current)
	if !ok {
		return s.First()
	}
	return s.at((row+len(s)-1)%len(s), col)
}

func (s StepSequence[B]) at(row, col int) B {
	var zero B
	if row < 0 || row >= len(s) || len(s[row]) == 0 {
		return zero
	}
	if col >= len(s[row]) {
		col = len(s[row]) - 1
	}
	return s[row][col]
}

// BlockSelection is a (row, column) cursor over a StepSequence, used to
// highlight the focused field of a form.
type BlockSelection[B comparable] struct {
	seq StepSequence[B]
	row int
	col int
}

// NewBlockSelection returns a cursor on the first step of seq.
func NewBlockSelection[B comparable](seq StepSequence[B]) BlockSelection[B] {
	return BlockSelection[B]{seq: seq}
}

// Current returns the highlighted block.
func (b *BlockSelection[B]) Current() B {
	return b.seq.at(b.row, b.col)
}

// Position returns the cursor row and column.
func (b *BlockSelection[B]) Position() (row, col int) {
	return b.row, b.col
}

// Sequence returns the underlying steps.
func (b *BlockSelection[B]) Sequence() StepSequence[B] {
	return b.seq
}

// Down moves to the next step, wrapping to the first.
func (b *BlockSelection[B]) Down() {
	if len(b.seq) == 0 {
		return
	}
	b.row = (b.row + 1) % len(b.seq)
	b.clampColumn()
}

// Up moves to the previous step, wrapping to the last.
func (b *BlockSelection[B]) Up() {
	if len(b.seq) == 0 {
		return
	}
	b.row = (b.row + len(b.seq) - 1) % len(b.seq)
	b.clampColumn()
}

// Right moves to the next column of the current step, wrapping.
func (b *BlockSelection[B]) Right() {
	width := b.width()
	if width == 0 {
		return
	}
	b.col = (b.col + 1) % width
}

// Left moves to the previous column of the current step, wrapping.
func (b *BlockSelection[B]) Left() {
	width := b.width()
	if width == 0 {
		return
	}
	b.col = (b.col + width - 1) % width
}

// SetPosition moves the cursor, clamped into the sequence.
func (b *BlockSelection[B]) SetPosition(row, col int) {
	if len(b.seq) == 0 {
		b.row, b.col = 0, 0
		return
	}
	if row < 0 {
		row = 0
	}
	if row >= len(b.seq) {
		row = len(b.seq) - 1
	}
	b.row = row
	b.col = col
	b.clampColumn()
}

// Select moves the cursor onto block when it is part of the sequence.
func (b *BlockSelection[B]) Select(block B) bool {
	row, col, ok := b.seq.Locate(block)
	if ok {
		b.row, b.col = row, col
	}
	return ok
}

func (b *BlockSelection[B]) width() int {
	if b.row < 0 || b.row >= len(b.seq) {
		return 0
	}
	return len(b.seq[b.row])
}

func (b *BlockSelection[B]) clampColumn() {
	width := b.width()
	if b.col < 0 {
		b.col = 0
	}
	if width > 0 && b.col >= width {
		b.col = width - 1
	}
}
