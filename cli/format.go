package cli

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// resultRow is one emitted configuration, shared by every subcommand's
// output formatting.
type resultRow struct {
	LProb float64
	Mass  float64
	EProb float64
	Conf  []int32
}

func writeNDJSON(w io.Writer, row resultRow) error {
	enc := json.NewEncoder(w)
	return enc.Encode(struct {
		LProb float64 `json:"l_prob"`
		Mass  float64 `json:"mass"`
		EProb float64 `json:"eprob"`
		Conf  []int32 `json:"conf"`
	}{row.LProb, row.Mass, row.EProb, row.Conf})
}

// tableWriter accumulates rows and renders them as an aligned ASCII table
// once Flush is called, since column widths depend on every row.
type tableWriter struct {
	rows [][]string
}

func (t *tableWriter) add(row resultRow) {
	confParts := make([]string, len(row.Conf))
	for i, c := range row.Conf {
		confParts[i] = strconv.Itoa(int(c))
	}
	t.rows = append(t.rows, []string{
		strconv.FormatFloat(row.LProb, 'f', 6, 64),
		strconv.FormatFloat(row.Mass, 'f', 4, 64),
		strconv.FormatFloat(row.EProb, 'f', 6, 64),
		strings.Join(confParts, ","),
	})
}

func (t *tableWriter) flush(w io.Writer) {
	headers := []string{"l_prob", "mass", "eprob", "conf"}
	io.WriteString(w, formatTable(headers, t.rows))
}

func formatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			if len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(padRight(h, colWidths[i]))
	}
	sb.WriteString("\n")

	for i, w := range colWidths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")

	for _, row := range rows {
		for i := range headers {
			if i > 0 {
				sb.WriteString("  ")
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			sb.WriteString(padRight(val, colWidths[i]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
