package rope

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderAppendPrepend(t *testing.T) {
	b := NewBuilder()
	if err := b.Append("world"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := b.Prepend("hello "); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if err := b.Append("!"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	text := b.Text()
	if text.String() != "hello world!" {
		t.Fatalf("builder produced %q", text.String())
	}
	if text.FragmentCount() != 2 {
		t.Fatalf("expected appended text to be merged into 2 fragments, got %d", text.FragmentCount())
	}
	if again := b.Text(); again.String() != text.String() {
		t.Fatalf("second call to Text returned %q", again.String())
	}
	if err := b.Append("more"); !errors.Is(err, ErrTextCompleted) {
		t.Fatalf("expected ErrTextCompleted, got %v", err)
	}
	b.Reset()
	if err := b.Append("fresh"); err != nil {
		t.Fatalf("Append after Reset failed: %v", err)
	}
	if b.Text().String() != "fresh" {
		t.Fatalf("builder after reset produced %q", b.Text().String())
	}
}

func TestBuilderLargeInput(t *testing.T) {
	var b Builder
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		s := strings.Repeat(string(rune('a'+i%26)), i%17+1)
		if i%3 == 0 {
			s += "\n"
		}
		if err := b.Append(s); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		sb.WriteString(s)
	}
	text := b.Text()
	if text.String() != sb.String() {
		t.Fatalf("builder output differs from appended input")
	}
	for frag := range text.Fragments() {
		if len(frag) > MaxFragment {
			t.Fatalf("fragment of %d bytes exceeds maximum", len(frag))
		}
	}
	if err := text.Tree().CheckMeasures(eqSummary); err != nil {
		t.Fatalf("invalid tree: %v", err)
	}
}

func TestBuilderRejectsInvalidInput(t *testing.T) {
	b := NewBuilder()
	if err := b.Append("ok\xc3"); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	var nilBuilder *Builder
	if err := nilBuilder.Append("x"); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if !nilBuilder.Text().IsVoid() {
		t.Fatalf("nil builder should produce a void text")
	}
	if !NewBuilder().Text().IsVoid() {
		t.Fatalf("empty builder should produce a void text")
	}
}
