package table

import "strings"

// Format pads each column to the width of its widest cell so rows line up,
// joining cells with a two-space gutter. Trailing padding on the last column
// is dropped.
func Format(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len([]rune(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				if pad := widths[c] - len([]rune(cell)); pad > 0 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}
