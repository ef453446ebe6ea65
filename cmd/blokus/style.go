package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/blokus/internal/grid"
	"github.com/vovakirdan/blokus/internal/piece"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	attachStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	blockStyle  = lipgloss.NewStyle().MarginRight(3).MarginBottom(1)
)

// paint applies style unless colors are disabled.
func paint(style lipgloss.Style, s string) string {
	if flagNoColor {
		return s
	}
	return style.Render(s)
}

// drawShape renders a shape like piece.Shape.Render, with styled glyphs
// and without the trailing newline.
func drawShape(s piece.Shape) string {
	if flagNoColor {
		return strings.TrimSuffix(s.Render(), "\n")
	}

	lines := make([]string, 0, s.Height()+1)
	for y := 0; y <= s.Height(); y++ {
		var sb strings.Builder
		for x := 0; x <= s.Width(); x++ {
			switch g := s.GlyphAt(x, y); g {
			case piece.GlyphAttach:
				sb.WriteString(attachStyle.Render(string(g)))
			case piece.GlyphPoint:
				sb.WriteString(pointStyle.Render(string(g)))
			default:
				sb.WriteRune(g)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// drawMask renders a board mask, marking set cells with on and free cells
// with a dimmed dot.
func drawMask(m grid.Mask, on string) string {
	lines := make([]string, 0, grid.Height)
	for y := 0; y < grid.Height; y++ {
		var sb strings.Builder
		for x := 0; x < grid.Width; x++ {
			if m.Test(x, y) {
				sb.WriteString(paint(attachStyle, on))
			} else {
				sb.WriteString(paint(dimStyle, "."))
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// outputWidth returns override when positive, otherwise the terminal width,
// falling back to 80 columns when stdout is not a terminal.
func outputWidth(override int) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// layoutBlocks places blocks side by side, wrapping to new rows so that no
// row is wider than width.
func layoutBlocks(blocks []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for _, b := range blocks {
		styled := blockStyle.Render(b)
		w := lipgloss.Width(styled)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, styled)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
