package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kalambet/folio/internal/resume"
	"github.com/kalambet/folio/internal/view"
)

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
)

// paletteANSI maps the page palette onto terminal colours.
var paletteANSI = map[string]string{
	"emerald": colorGreen,
	"orange":  colorYellow + colorBold,
	"blue":    colorBlue,
	"yellow":  colorYellow,
	"purple":  colorMagenta,
	"red":     colorRed,
}

// barCells is the number of terminal cells a full-width bar occupies.
const barCells = resume.MaxProficiency * 4

func colorize(color, text string) string {
	if noColor || color == "" {
		return text
	}
	return color + text + colorReset
}

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorGreen, "✓ "+msg))
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorRed, "✗ "+msg))
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorYellow, "⚠ "+msg))
}

func printStatus(label string, format string, args ...any) {
	val := fmt.Sprintf(format, args...)
	l := colorize(colorBold, label+":")
	fmt.Fprintf(os.Stderr, "  %s %s\n", l, val)
}

func printStep(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorCyan, "→ "+msg))
}

// formatBar renders one skill as a fixed-width text bar, e.g.
//
//	Go            ████████████████···· 4/5
func formatBar(b view.Bar, titleWidth int) string {
	title := strings.ReplaceAll(b.Title, "\u00a0", " ")
	filled := barCells * b.Width / 100
	bar := colorize(paletteANSI[b.Color], strings.Repeat("█", filled)) +
		colorize(colorDim, strings.Repeat("·", barCells-filled))
	return fmt.Sprintf("%-*s %s %s", titleWidth, title, bar, b.Label)
}
