package mines

// expandZero opens the connected region of zero cells around p together with
// its numbered border. Cells already visible stop the expansion; flagged cells
// do not and get opened like any other.
func (b *Board) expandZero(p Point) {
	if b.at(p).adjacent != 0 {
		return
	}

	// A point is pushed only when it turns visible, so the stack never
	// outgrows the board.
	todo := []Point{p}
	for len(todo) > 0 {
		q := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for n := range b.Window(q).Points() {
			cell := b.at(n)
			if cell.visible {
				continue
			}
			b.setVisible(n)
			if cell.adjacent == 0 {
				todo = append(todo, n)
			}
		}
	}
}

// chord opens every hidden, unflagged cell in the window of the visible cell
// at p once the flags around it account for its mine count. All such cells
// are opened even after a mine turns up.
func (b *Board) chord(p Point) (exploded bool, err error) {
	if b.at(p).adjacent != b.FlagsAround(p) {
		return false, ErrChordNotReady
	}

	for n := range b.Window(p).Points() {
		cell := b.at(n)
		if cell.visible || cell.flagged {
			continue
		}
		b.setVisible(n)
		b.expandZero(n)
		if cell.mine {
			b.detonate(n)
			exploded = true
		}
	}
	return exploded, nil
}
