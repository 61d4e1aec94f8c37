package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/report"
)

var (
	colorHeader = lipgloss.Color("#20B9B4")
	colorSymbol = lipgloss.Color("#F4D03F")
	colorCode   = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#2C4A54")
)

// isTerminal returns true iff w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// textStyle picks the styling for text output written to w.
//
// The renderer is bound to w rather than os.Stdout.  With ColorAlways its
// profile is forced to ANSI256, so output stays styled when redirected.
//
func textStyle(color config.Color, w io.Writer) report.Style {
	switch color {
	case config.ColorNever:
		return report.Style{}
	case config.ColorAuto:
		if !isTerminal(w) {
			return report.Style{}
		}
	}

	r := lipgloss.NewRenderer(w)
	if color == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}

	header := r.NewStyle().Bold(true).Foreground(colorHeader)
	symbol := r.NewStyle().Foreground(colorSymbol)
	code := r.NewStyle().Foreground(colorCode)
	muted := r.NewStyle().Foreground(colorMuted).Italic(true)

	return report.Style{
		Header: render(header),
		Symbol: render(symbol),
		Code:   render(code),
		Muted:  render(muted),
	}
}

func render(style lipgloss.Style) func(string) string {
	return func(str string) string {
		return style.Render(str)
	}
}
