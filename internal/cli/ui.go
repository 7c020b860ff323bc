package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/isobench/pkg/iso"
	"github.com/matzehuels/isobench/pkg/pipeline"
)

// Terminal palette (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorText   = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCached      = lipgloss.NewStyle().Foreground(colorOK)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)
	styleHeader      = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
)

const separator = " · "

func printStatus(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Println(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) {
	printStatus("✓", lipgloss.NewStyle().Foreground(colorOK), format, args...)
}

func printError(format string, args ...any) {
	printStatus("✗", lipgloss.NewStyle().Foreground(colorFail), format, args...)
}

func printWarning(format string, args ...any) {
	printStatus("!", StyleWarning, "%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus("›", lipgloss.NewStyle().Foreground(colorMuted), format, args...)
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printMeasurements prints a table with one row per measured file.
func printMeasurements(title string, ms []pipeline.Measurement) {
	fmt.Println(StyleTitle.Render(title))
	if len(ms) == 0 {
		printDetail("no files")
		return
	}

	rows := make([][]string, len(ms))
	for i, m := range ms {
		source := "fresh"
		if m.Cached {
			source = "cached"
		}
		rows[i] = []string{
			strconv.Itoa(m.NodeCount),
			humanize.Comma(int64(m.Graphs)),
			humanize.Comma(int64(m.Pairs)),
			m.Average.String(),
			methodLabel(m),
			source,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("n", "graphs", "pairs", "avg/pair", "method", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			s := styleCell
			if col <= 3 {
				s = s.Align(lipgloss.Right)
			}
			switch {
			case col == 0:
				return s.Foreground(colorAccent)
			case col == 5 && ms[row].Cached:
				return s.Foreground(colorOK)
			case col >= 4:
				return s.Foreground(colorDim)
			}
			return s.Foreground(colorText)
		})
	fmt.Println(t)
}

// methodLabel names the method that decided the pairs of m.
func methodLabel(m pipeline.Measurement) string {
	switch {
	case m.Pairs == 0:
		return "-"
	case m.GeneralPairs == 0:
		return string(iso.MethodTree)
	case m.TreePairs == 0:
		return string(iso.MethodGeneral)
	}
	return "mixed"
}

// printStats prints the totals of a run on one line.
func printStats(s pipeline.Stats) {
	count := func(n int, what string) string {
		return humanize.Comma(int64(n)) + " " + what
	}
	parts := []string{
		StyleDim.Render(count(s.Files, "files")),
		StyleDim.Render(count(s.Graphs, "graphs")),
		StyleDim.Render(count(s.Pairs, "pairs")),
	}
	if s.TreePairs > 0 {
		parts = append(parts, StyleDim.Render(count(s.TreePairs, "via tree")))
	}
	if s.GeneralPairs > 0 {
		parts = append(parts, StyleDim.Render(count(s.GeneralPairs, "via canonical labeling")))
	}
	if s.CacheHits > 0 {
		parts = append(parts, styleCached.Render(count(s.CacheHits, "cached")))
	}
	parts = append(parts, StyleDim.Render(s.Duration.Round(time.Millisecond).String()))
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(separator)))
}

// printNextStep suggests a command to run next.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
