package components

import (
	"fmt"
	"math"
	"strings"

	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders a vertical block bar chart with a labeled y-axis.
// Values and labels are parallel; colors cycle through the chart
// palette per bar.
func BarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	palette := theme.ChartPalette()

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: nice tick step, ceiling at a tick multiple
	tickStep := chartTickStep(maxVal)
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	if ceiling <= 0 {
		ceiling = 1
	}

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	barW := (chartW - (n-1)*gap) / n
	if barW < 2 {
		barW = 2
	}
	if barW > 8 {
		barW = 8
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = formatChartLabel(ceiling)
		} else if row == (height+1)/2 {
			label = formatChartLabel(ceiling / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			barStyle := lipgloss.NewStyle().Foreground(palette[i%len(palette)])
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// X-axis and labels
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		for i, lbl := range labels {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			if len(lbl) > barW {
				lbl = lbl[:barW]
			}
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", barW, lbl)))
		}
	}

	return b.String()
}

// PieLegend renders a pie chart as a single proportional segment bar
// plus one legend line per slice. percentages are display-rounded
// upstream; segment widths come from the raw values.
func PieLegend(names []string, values []float64, percentages []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	palette := theme.ChartPalette()

	var sum float64
	for _, v := range values {
		sum += v
	}
	if sum <= 0 {
		return ""
	}

	barW := width
	if barW < 10 {
		barW = 10
	}

	// Segment bar: each slice gets at least one cell so tiny categories
	// stay visible.
	var bar strings.Builder
	used := 0
	for i, v := range values {
		segW := int(math.Round(v / sum * float64(barW)))
		if segW < 1 {
			segW = 1
		}
		if used+segW > barW {
			segW = barW - used
		}
		if segW <= 0 {
			break
		}
		used += segW
		bar.WriteString(lipgloss.NewStyle().Foreground(palette[i%len(palette)]).Render(strings.Repeat("█", segW)))
	}

	nameW := 0
	for _, name := range names {
		if len(name) > nameW {
			nameW = len(name)
		}
	}
	if nameW > width-14 {
		nameW = width - 14
	}

	legendStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(bar.String())
	b.WriteString("\n\n")
	for i, name := range names {
		swatch := lipgloss.NewStyle().Foreground(palette[i%len(palette)]).Render("■")
		if len(name) > nameW && nameW > 1 {
			name = name[:nameW-1] + "…"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			swatch,
			legendStyle.Render(fmt.Sprintf("%-*s", nameW, name)),
			pctStyle.Render(fmt.Sprintf("%5.1f%%", percentages[i]))))
	}

	return strings.TrimRight(b.String(), "\n")
}

// chartTickStep computes a nice tick interval targeting ~4 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 4
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
