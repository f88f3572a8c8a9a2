package rope

import (
	"unicode"
	"unicode/utf8"
)

// MaxFragment is the size in bytes up to which text is collected into a
// single fragment.
const MaxFragment = 256

const zwj = '\u200d'

// splitToFragments cuts UTF-8 text into pieces of at most size bytes.
//
// Cuts are placed on rune boundaries and are moved backwards in front of
// combining marks and zero width joiners, so grapheme clusters stay
// together whenever they fit into a fragment.
func splitToFragments(text string, size int) ([]string, error) {
	if len(text) == 0 {
		return nil, nil
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	if size < utf8.UTFMax {
		size = utf8.UTFMax
	}
	parts := make([]string, 0, 1+len(text)/size)
	for i := 0; i < len(text); {
		end := i + size
		if end >= len(text) {
			end = len(text)
		} else {
			end = cutPoint(text, i, end)
		}
		parts = append(parts, text[i:end])
		i = end
	}
	return parts, nil
}

// cutPoint finds a cut position in text[from:limit+1] at or before limit.
func cutPoint(text string, from, limit int) int {
	end := limit
	for end > from && !utf8.RuneStart(text[end]) {
		end--
	}
	runeEnd := end
	for end > from {
		r, _ := utf8.DecodeRuneInString(text[end:])
		prev, _ := utf8.DecodeLastRuneInString(text[:end])
		if !unicode.Is(unicode.M, r) && r != zwj && prev != zwj {
			return end
		}
		_, size := utf8.DecodeLastRuneInString(text[from:end])
		end -= size
	}
	// a single cluster longer than a fragment: cut at the rune boundary
	if runeEnd == from {
		_, size := utf8.DecodeRuneInString(text[from:])
		return from + size
	}
	return runeEnd
}
