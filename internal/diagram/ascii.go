package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ASCIIOptions sizes a terminal chart. Zero values use 60x15.
type ASCIIOptions struct {
	Width   int
	Height  int
	Caption string
}

// DrawASCIICurves renders series as a terminal line chart. asciigraph plots
// against sample index, so every series is cut to the window where at least
// one of them is defined and that window's X range is printed under the chart.
// Series are expected to share the X grid of the first.
func DrawASCIICurves(series []Series, opts ASCIIOptions) (string, error) {
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}

	lo, hi := finiteWindow(series)
	if lo >= hi {
		return "", fmt.Errorf("diagram: nothing to plot")
	}
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		data = append(data, window(s.Y, lo, hi))
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.PlotMany(data,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Precision(1),
		asciigraph.Caption(opts.Caption),
	))
	sb.WriteString("\n")

	if x := series[0].X; len(x) >= hi {
		sb.WriteString(fmt.Sprintf("  x: %.2f → %.2f\n", x[lo], x[hi-1]))
	}
	sb.WriteString("  Legend:\n")
	for i, s := range series {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s.Label))
	}

	return sb.String(), nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}

// finiteWindow returns the index range [lo, hi) spanning the first to the
// last non-NaN sample of any series.
func finiteWindow(series []Series) (lo, hi int) {
	lo = math.MaxInt
	for _, s := range series {
		for i, y := range s.Y {
			if math.IsNaN(y) {
				continue
			}
			lo = min(lo, i)
			hi = max(hi, i+1)
		}
	}
	return lo, hi
}

// window returns ys[lo:hi], padding with NaN where ys is shorter.
func window(ys []float64, lo, hi int) []float64 {
	out := make([]float64, hi-lo)
	for i := range out {
		if j := lo + i; j < len(ys) {
			out[i] = ys[j]
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
