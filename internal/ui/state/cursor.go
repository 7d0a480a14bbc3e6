package state

// ScrollDown moves the selection down one row, wrapping to the top.
func (l *List[T]) ScrollDown() {
	n := len(l.items)
	if n == 0 {
		return
	}
	idx, ok := l.Index()
	switch {
	case !ok, idx >= n-1:
		l.SelectIndex(0)
	default:
		l.SelectIndex(idx + 1)
	}
}

// ScrollUp moves the selection up one row, wrapping to the bottom.
func (l *List[T]) ScrollUp() {
	n := len(l.items)
	if n == 0 {
		return
	}
	idx, ok := l.Index()
	switch {
	case !ok:
		l.SelectIndex(0)
	case idx == 0:
		l.SelectIndex(n - 1)
	default:
		l.SelectIndex(idx - 1)
	}
}

// ScrollToTop selects the first item.
func (l *List[T]) ScrollToTop() {
	if len(l.items) == 0 {
		return
	}
	l.SelectIndex(0)
}

// ScrollToBottom selects the last item.
func (l *List[T]) ScrollToBottom() {
	if len(l.items) == 0 {
		return
	}
	l.SelectIndex(len(l.items) - 1)
}

// PageDown moves the selection down by one page without wrapping.
func (l *List[T]) PageDown(maxVisible int) bool {
	return l.moveBy(l.pageSize(maxVisible))
}

// PageUp moves the selection up by one page without wrapping.
func (l *List[T]) PageUp(maxVisible int) bool {
	return l.moveBy(-l.pageSize(maxVisible))
}

func (l *List[T]) moveBy(delta int) bool {
	if len(l.items) == 0 {
		return false
	}
	old, _ := l.Index()
	l.SelectIndex(old + delta)
	idx, _ := l.Index()
	return idx != old
}

func (l *List[T]) pageSize(maxVisible int) int {
	total := len(l.items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// Window returns the half-open range of rows to draw so the selection stays
// visible in a viewport of maxVisible rows.
func (l *List[T]) Window(maxVisible int) (start, end int) {
	total := len(l.items)
	if total == 0 {
		return 0, 0
	}
	if maxVisible <= 0 || maxVisible >= total {
		return 0, total
	}
	idx, _ := l.Index()
	if idx >= maxVisible {
		start = idx - maxVisible + 1
	}
	return start, start + maxVisible
}
