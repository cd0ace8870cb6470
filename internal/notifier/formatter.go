package notifier

import (
	"fmt"
	"strings"
	"time"

	"ChartSentinel/internal/model"
	"ChartSentinel/internal/pattern"
)

// FormatScanReport formats one ticker's scan outcome into a message.
func FormatScanReport(ticker string, result model.Result, levels []float64) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", ticker, time.Now().Format("2006-01-02")))

	total := 0
	for _, kind := range pattern.Kinds() {
		matches, ok := result[kind]
		if !ok {
			continue
		}
		total += len(matches)
		if len(matches) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("<b>%s</b> ×%d\n", pattern.Label(kind), len(matches)))
		for _, m := range matches {
			b.WriteString(fmt.Sprintf("  %s @ %.2f\n", m.Time.Format("2006-01-02"), m.Price))
		}
	}
	if total == 0 {
		b.WriteString("no patterns found\n")
	}

	if len(levels) > 0 {
		b.WriteString("\n📐 <b>Gann levels:</b>\n")
		parts := make([]string, len(levels))
		for i, lv := range levels {
			parts[i] = fmt.Sprintf("%.2f", lv)
		}
		b.WriteString("  " + strings.Join(parts, " | ") + "\n")
	}

	return b.String()
}
