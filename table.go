package wikifmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// tableWrapWidth caps a column; longer lines wrap.
const tableWrapWidth = 60

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var rounded = borderChars{
	topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
	horizontal: "─", vertical: "│",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

// writeTable draws entries as a bordered terminal table. Rendered text may
// span several lines, so every entry is separated by a rule.
func writeTable(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	header := [][]string{{entryHeader[0]}, {entryHeader[1]}}
	rows := make([][][]string, len(entries))
	for i, e := range entries {
		rows[i] = [][]string{cellLines(e.Key), cellLines(e.Text)}
	}
	widths := computeWidths(header, rows)
	bc := rounded

	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, bc.vertical); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
		if err := drawBorderedRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// cellLines splits s on line breaks and wraps each line to tableWrapWidth.
// An empty cell still occupies one line.
func cellLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		lines = append(lines, wrapCell(line, tableWrapWidth)...)
	}
	return lines
}

func computeWidths(header [][]string, rows [][][]string) []int {
	widths := make([]int, len(header))
	measure := func(cells [][]string) {
		for i, lines := range cells {
			for _, line := range lines {
				widths[i] = max(widths[i], runewidth.StringWidth(line))
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if runewidth.StringWidth(line) == 0 {
			// Safety: advance at least one rune to avoid infinite loop.
			line = string([]rune(s)[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

func maxLines(cells [][]string) int {
	n := 1
	for _, lines := range cells {
		n = max(n, len(lines))
	}
	return n
}

// --- Bordered table ---

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells [][]string, widths []int, vert string) error {
	for line := range maxLines(cells) {
		var sb strings.Builder
		sb.WriteString(vert)
		for i, width := range widths {
			cell := ""
			if line < len(cells[i]) {
				cell = cells[i][line]
			}
			sb.WriteString(" ")
			sb.WriteString(runewidth.FillRight(cell, width))
			sb.WriteString(" ")
			if i < len(widths)-1 {
				sb.WriteString(vert)
			}
		}
		sb.WriteString(vert)
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
