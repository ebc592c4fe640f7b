package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gocable/internal/cable"
)

// ProfileASCII renders the solved cable shape as a terminal plot, supports at
// the left and right margins.
func ProfileASCII(res *cable.Result) string {
	return asciigraph.Plot(res.Y,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("Cable profile  (f = %.4f m at x = %.2f m)", res.Sag, res.SagPosition)),
	)
}

// TensionASCII renders the tension distribution along the span.
func TensionASCII(res *cable.Result) string {
	return asciigraph.Plot(res.Tension,
		asciigraph.Height(10),
		asciigraph.Width(64),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Tension T(x)  (T_max = %.2f kN, H = %.2f kN)", res.TensionMax, res.H)),
	)
}

// ConvergenceASCII renders the fixed-point iteration history of H. Empty for
// results without a history.
func ConvergenceASCII(res *cable.Result) string {
	if len(res.History) == 0 {
		return ""
	}
	h := make([]float64, len(res.History))
	for i, it := range res.History {
		h[i] = it.H
	}
	return asciigraph.Plot(h,
		asciigraph.Height(10),
		asciigraph.Width(64),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Fixed-point history of H  (%d iterations)", len(h))),
	)
}

// DrawSummaryBox creates a boxed result summary for terminal output.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
