package quote

import (
	"fmt"
	"strings"

	"github.com/DarwinQVO/quotify/internal/model"
)

// ExportText renders quotes as clipboard-ready plain text, one block per
// quote separated by a blank line.
func ExportText(quotes []model.Quote) string {
	blocks := make([]string, len(quotes))
	for i, q := range quotes {
		block := fmt.Sprintf("\"%s\" %s %s", q.Text, q.Citation, q.DeepLink)
		blocks[i] = strings.TrimRight(block, " ")
	}
	return strings.Join(blocks, "\n\n")
}

// FormatTimestamp renders seconds as m:ss for display alongside quotes.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
