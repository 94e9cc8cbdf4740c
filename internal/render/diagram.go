package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Payloads wider than this are listed rather than drawn.
const maxDiagramBits = 32

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Text writes a styled header followed by the bit diagram.
func Text(w io.Writer, d *Decoded) error {
	header := headerStyle.Render(fmt.Sprintf("%s (%s)", d.Command, d.Code)) +
		" " + metaStyle.Render(fmt.Sprintf("[%s]", d.Payload))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	_, err := io.WriteString(w, Diagram(d))
	return err
}

// Diagram draws the payload in binary with a leader from each field's
// least significant bit to its value, lowest field first:
//
//	0b0000_0100
//	  || |  |+--- TransitionControl = Immediate
//	  || |  +---- MarginFaultResponse = IgnoreFault
func Diagram(d *Decoded) string {
	var b strings.Builder
	if d.bits > maxDiagramBits || d.bits == 0 {
		for _, f := range d.Fields {
			fmt.Fprintf(&b, "%-24s %s = %s\n", bitRange(f), describe(f), f.Value)
		}
		return b.String()
	}

	col := func(pos int) int {
		i := d.bits - 1 - pos
		return i + i/4
	}
	width := col(0) + 1

	b.WriteString("0b")
	for i := 0; i < d.bits; i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte('_')
		}
		b.WriteByte('0' + byte(d.raw>>(d.bits-1-i)&1))
	}
	b.WriteByte('\n')

	row := make([]byte, width)
	for n := len(d.Fields); n > 0; n-- {
		for i := range row {
			row[i] = ' '
		}
		for _, f := range d.Fields[:n-1] {
			row[col(f.Pos)] = '|'
		}
		last := d.Fields[n-1]
		c := col(last.Pos)
		row[c] = '+'
		for i := c + 1; i < width; i++ {
			row[i] = '-'
		}
		fmt.Fprintf(&b, "  %s-- %s = %s\n", row, describe(last), last.Value)
	}
	return b.String()
}

func describe(f Field) string {
	if f.Desc != "" {
		return f.Desc
	}
	return f.Name
}

func bitRange(f Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("[%d]", f.Pos)
	}
	return fmt.Sprintf("[%d:%d]", f.Pos+f.Width-1, f.Pos)
}
