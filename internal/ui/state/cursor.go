package state

// MoveCursorUp moves the cursor up one entry, wrapping to the bottom.
func (p *Picker) MoveCursorUp() bool {
	n := len(p.Entries)
	if n == 0 {
		return false
	}
	if p.Cursor > 0 {
		p.Cursor--
	} else {
		p.Cursor = n - 1
	}
	return n > 1
}

// MoveCursorDown moves the cursor down one entry, wrapping to the top.
func (p *Picker) MoveCursorDown() bool {
	n := len(p.Entries)
	if n == 0 {
		return false
	}
	if p.Cursor < n-1 {
		p.Cursor++
	} else {
		p.Cursor = 0
	}
	return n > 1
}

// MoveCursorHome moves the cursor to the first item.
func (p *Picker) MoveCursorHome() bool {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (p *Picker) MoveCursorEnd() bool {
	n := len(p.Entries)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (p *Picker) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorBy(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (p *Picker) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorBy(p.pageSize(maxVisible))
}

func (p *Picker) moveCursorBy(delta int) bool {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
	return p.Cursor != old
}

func (p *Picker) pageSize(maxVisible int) int {
	total := len(p.Entries)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Picker) EnsureCursorVisible(maxVisible int) {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Entries) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	upper := p.ViewportOffset + maxVisible - 1
	if p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
		if p.ViewportOffset < 0 {
			p.ViewportOffset = 0
		}
		if p.ViewportOffset > maxOffset {
			p.ViewportOffset = maxOffset
		}
	}
}
