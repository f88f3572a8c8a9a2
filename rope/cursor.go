package rope

import (
	"fmt"
	"unicode/utf8"
)

// Pos is a position within a text, in runes and in bytes.
type Pos struct {
	Chars int
	Bytes int
}

// CharCursor navigates a text by UTF-8 rune positions.
//
// The cursor is bound to one text snapshot. Movement is in rune steps, while
// internal addressing uses byte offsets for tree routing.
type CharCursor struct {
	text Text
	pos  Pos
}

// NewCharCursor creates a rune-aware cursor at the start of the text.
func (text Text) NewCharCursor() *CharCursor {
	return &CharCursor{text: text}
}

// Pos returns the current cursor position.
func (cc *CharCursor) Pos() Pos {
	if cc == nil {
		return Pos{}
	}
	return cc.pos
}

// SeekRunes moves the cursor to absolute rune offset n.
func (cc *CharCursor) SeekRunes(n int) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	total := cc.text.Summary().Chars
	if n < 0 || n > total {
		return fmt.Errorf("%w: rune %d of %d", ErrIndexOutOfBounds, n, total)
	}
	if n == total {
		cc.pos = Pos{Chars: total, Bytes: cc.text.Len()}
		return nil
	}
	frag, before, ok := cc.text.tree.Find(func(m Summary) bool { return m.Chars > n })
	assert(ok, "rope: rune lookup inside bounds found no fragment")
	off := 0
	for k := before.Chars; k < n; k++ {
		_, size := utf8.DecodeRuneInString(frag[off:])
		off += size
	}
	cc.pos = Pos{Chars: n, Bytes: before.Bytes + off}
	return nil
}

// Next returns the rune at the current cursor position and advances by one
// rune. If the cursor is at the end of the text, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil || cc.pos.Bytes >= cc.text.Len() {
		return 0, false
	}
	frag, off := cc.text.locate(cc.pos.Bytes)
	r, n := utf8.DecodeRuneInString(frag[off:])
	cc.pos = Pos{Chars: cc.pos.Chars + 1, Bytes: cc.pos.Bytes + n}
	return r, true
}

// Prev returns the rune before the current cursor position and moves back
// by one rune. If the cursor is at the start of the text, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil || cc.pos.Bytes == 0 {
		return 0, false
	}
	frag, off := cc.text.locate(cc.pos.Bytes - 1)
	r, n := utf8.DecodeLastRuneInString(frag[:off+1])
	cc.pos = Pos{Chars: cc.pos.Chars - 1, Bytes: cc.pos.Bytes - n}
	return r, true
}
