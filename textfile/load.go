package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/fingertree/rope"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// ErrNotRegularFile signals an attempt to load a directory, device or other
// non-regular file.
var ErrNotRegularFile = errors.New("textfile: not a regular file")

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Fragment is a piece of a file's content, broadcast to subscribers while
// loading.
type Fragment struct {
	Pos  int64  // start position of this fragment within the file
	Text string // content of this fragment, valid UTF-8
}

// loadDone terminates the broadcast of fragments.
type loadDone struct {
	err error
}

// Loader reads an OS file into a rope in the background.
type Loader struct {
	path     string
	size     int64
	fragSize int64
	cast     *caster.Caster // broadcaster for async file loading
	done     chan struct{}
	mx       sync.Mutex // guards finished
	finished bool
	text     rope.Text
	err      error // remember I/O error
}

// Load reads a file, which must be a UTF-8 text file, and returns it as a
// rope. Clients may indicate a recommended fragment length, or pass 0 to let
// Load choose a default depending on the size of the file.
func Load(name string, fragSize int64) (rope.Text, error) {
	l, err := Open(context.Background(), name, fragSize)
	if err != nil {
		return rope.Text{}, err
	}
	return l.Wait()
}

// Open opens a file synchronously and starts loading it in the background.
// Cancelling ctx stops loading; Wait then reports the context's error.
func Open(ctx context.Context, name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	}
	l := &Loader{
		path:     name,
		size:     fi.Size(),
		fragSize: defaultFragSize(fragSize, fi.Size()),
		cast:     caster.New(context.Background()), // we will broadcast messages when fragments are loaded
		done:     make(chan struct{}),
	}
	tracer().Debugf("textfile: loading %s (%d bytes) in fragments of %d bytes", name, l.size, l.fragSize)
	go l.loadAllFragments(ctx, file)
	return l, nil
}

func defaultFragSize(fragSize, size int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		if fragSize < utf8.UTFMax {
			return utf8.UTFMax
		}
		return fragSize
	}
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// Size returns the size of the file in bytes, as reported when it was opened.
func (l *Loader) Size() int64 {
	return l.size
}

// FragmentSize returns the length of fragments read from the file.
func (l *Loader) FragmentSize() int64 {
	return l.fragSize
}

// Subscribe returns a channel which receives every fragment read from now
// on, in file order. The channel is closed when loading ends or ctx is done.
// Subscribers must keep receiving until the channel is closed or cancel ctx,
// as loading waits for slow subscribers.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) <-chan Fragment {
	out := make(chan Fragment, capacity)
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.finished {
		close(out)
		return out
	}
	in, ok := l.cast.Sub(ctx, capacity)
	if !ok {
		close(out)
		return out
	}
	go func() {
		forward(ctx, in, out)
		close(out)
		for range in { // caster closes in on its next publication or on Close
		}
	}()
	return out
}

// forward copies fragments from in to out until loading ends, in is closed
// or ctx is done.
func forward(ctx context.Context, in <-chan interface{}, out chan<- Fragment) {
	for msg := range in {
		switch m := msg.(type) {
		case Fragment:
			select {
			case out <- m:
			case <-ctx.Done():
				return
			}
		case loadDone:
			return
		}
	}
}

// Wait blocks until loading has ended and returns the rope. If loading
// failed, the rope holds the fragments read up to the error.
func (l *Loader) Wait() (rope.Text, error) {
	<-l.done
	return l.text, l.err
}

// Done returns a channel which is closed when loading has ended.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// --- File loading goroutine ------------------------------------------------

func (l *Loader) loadAllFragments(ctx context.Context, file *os.File) {
	defer file.Close()
	var text rope.Text
	var carry []byte // incomplete trailing rune of the previous read
	buf := make([]byte, l.fragSize)
	pos := int64(0)
	var err error
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		var n int
		n, err = io.ReadFull(file, buf)
		if n > 0 {
			data := append(carry, buf[:n]...)
			data, carry = splitIncompleteRune(data)
			if !utf8.Valid(data) {
				err = fmt.Errorf("textfile: %s at position %d: %w", l.path, pos, rope.ErrInvalidUTF8)
				break
			}
			if len(data) > 0 {
				frag := Fragment{Pos: pos, Text: string(data)}
				text, _ = text.AppendFragment(frag.Text)
				pos += int64(len(data))
				l.cast.Pub(frag)
			}
			carry = append([]byte(nil), carry...)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = nil
			if len(carry) > 0 {
				err = fmt.Errorf("textfile: %s ends inside a character: %w", l.path, rope.ErrInvalidUTF8)
			}
			break
		}
		if err != nil {
			err = fmt.Errorf("textfile: %w", err)
			break
		}
	}
	if err != nil {
		tracer().Errorf("textfile: loading %s: %s", l.path, err.Error())
	} else {
		tracer().Debugf("textfile: loaded %d bytes from %s", pos, l.path)
	}
	l.finish(text, err)
}

func (l *Loader) finish(text rope.Text, err error) {
	l.mx.Lock()
	l.finished = true
	l.mx.Unlock()
	l.text, l.err = text, err
	l.cast.Pub(loadDone{err: err})
	l.cast.Close()
	close(l.done)
}

// splitIncompleteRune cuts off an incomplete UTF-8 sequence at the end of
// data.
func splitIncompleteRune(data []byte) ([]byte, []byte) {
	for k := 1; k <= utf8.UTFMax && k <= len(data); k++ {
		start := len(data) - k
		if utf8.RuneStart(data[start]) {
			if utf8.FullRune(data[start:]) {
				return data, nil
			}
			return data[:start], data[start:]
		}
	}
	return data, nil
}
