package rope

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/fingertree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Summary aggregates text metrics of a fragment or a whole text.
//
// Graphemes and Width are summed per fragment. Fragment boundaries created
// by this package never separate a base character from its combining marks,
// but an explicit Split inside a grapheme cluster will count both halves.
type Summary struct {
	Bytes     int // length in bytes
	Chars     int // number of runes
	Lines     int // number of newline characters
	Graphemes int // number of user-perceived characters
	Width     int // display width in terminal cells (East Asian Width)
}

// SummaryMonoid adds summaries component-wise.
type SummaryMonoid struct{}

// Empty returns the summary of the empty string.
func (SummaryMonoid) Empty() Summary { return Summary{} }

// Combine adds two summaries.
func (SummaryMonoid) Combine(left, right Summary) Summary {
	return Summary{
		Bytes:     left.Bytes + right.Bytes,
		Chars:     left.Chars + right.Chars,
		Lines:     left.Lines + right.Lines,
		Graphemes: left.Graphemes + right.Graphemes,
		Width:     left.Width + right.Width,
	}
}

var setupGraphemes sync.Once

// Summarize computes the summary of a single fragment.
func Summarize(s string) Summary {
	if s == "" {
		return Summary{}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return Summary{
		Bytes:     len(s),
		Chars:     utf8.RuneCountInString(s),
		Lines:     strings.Count(s, "\n"),
		Graphemes: gstr.Len(),
		Width:     uax11.StringWidth(gstr, uax11.LatinContext),
	}
}

func config() fingertree.Measured[string, Summary] {
	return fingertree.Measured[string, Summary]{
		Monoid:  SummaryMonoid{},
		Measure: Summarize,
	}
}
