package fingertree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// dumpPalette colors spine levels; deeper levels cycle through it.
var dumpPalette = []color.Attribute{
	color.FgBlue, color.FgGreen, color.FgMagenta, color.FgCyan, color.FgYellow,
}

// Dump writes an indented outline of the internal structure of t to w, one
// line per spine level and digit (for debugging purposes). Nodes of deeper
// levels are printed as parenthesized groups.
//
// If w is a terminal, levels are colored and lines are cut to the terminal
// width.
func Dump[T, M any](t *Tree[T, M], w io.Writer) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	width, tty := terminalWidth(w)
	var bf strings.Builder
	f := t.root
	for level := 0; ; level++ {
		c := color.New(dumpPalette[level%len(dumpPalette)])
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		indent := strings.Repeat("  ", level)
		switch s := f.(type) {
		case nil:
			bf.WriteString(c.Sprintf("%sempty", indent) + "\n")
		case *single[M]:
			line := fmt.Sprintf("%ssingle ‹%v› %s", indent, s.measure(), formatElement[T](s.x))
			bf.WriteString(c.Sprint(cut(line, width)) + "\n")
		case *deep[M]:
			bf.WriteString(c.Sprint(cut(fmt.Sprintf("%sdeep ‹%v›", indent, s.m), width)) + "\n")
			bf.WriteString(c.Sprint(cut(formatDigit[T](indent+"  prefix", s.prefix), width)) + "\n")
			bf.WriteString(c.Sprint(cut(formatDigit[T](indent+"  suffix", s.suffix), width)) + "\n")
			f = s.middle
			continue
		}
		break
	}
	_, err := io.WriteString(w, bf.String())
	return err
}

func formatDigit[T, M any](name string, d digit[M]) string {
	parts := make([]string, len(d.items))
	for i, x := range d.items {
		parts[i] = formatElement[T](x)
	}
	return fmt.Sprintf("%s ‹%v› [%s]", name, d.m, strings.Join(parts, " "))
}

func formatElement[T, M any](e element[M]) string {
	switch x := e.(type) {
	case *node[M]:
		parts := make([]string, len(x.items))
		for i, child := range x.items {
			parts[i] = formatElement[T](child)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case leaf[T, M]:
		return fmt.Sprintf("%v", x.value)
	}
	return "?"
}

// terminalWidth reports the width of w if it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}

func cut(line string, width int) string {
	if width <= 1 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width-1]) + "…"
}
