package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RenderText renders a batch report as a plain text block:
//
//	================================...
//	<description>, <trials> times
//	won <percentage>% of the time
//	average rank was <rank>
func RenderText(r *BatchReport) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", RuleWidth))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s, %d times\n", r.Description, r.TrialCount))
	sb.WriteString(fmt.Sprintf("won %s%% of the time\n", formatPercentage(r.WinPercentage)))
	sb.WriteString(fmt.Sprintf("average rank was %d\n", r.AverageRank))

	return sb.String()
}

// formatPercentage prints p with trailing zeros trimmed but at least one
// fractional digit: 37.2, 37.0, 0.0.
func formatPercentage(p decimal.Decimal) string {
	s := p.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
