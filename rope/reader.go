package rope

import "io"

// Reader returns a reader for the bytes of the text.
func (text Text) Reader() io.Reader {
	return &textReader{text: text}
}

type textReader struct {
	text   Text
	cursor int
}

func (tr *textReader) Read(p []byte) (n int, err error) {
	if tr.cursor >= tr.text.Len() {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	frag, off := tr.text.locate(tr.cursor)
	n = copy(p, frag[off:])
	tr.cursor += n
	return n, nil
}

// locate finds the fragment containing byte offset i and the offset of i
// within it. i must be inside the text.
func (text Text) locate(i int) (string, int) {
	frag, before, ok := text.tree.Find(func(m Summary) bool { return m.Bytes > i })
	assert(ok, "rope: lookup inside bounds found no fragment")
	return frag, i - before.Bytes
}
