package engine

import "strings"

// RenderMarkdown converts parsed rows into a GitHub-flavored Markdown table.
//
// The header line is rendered first, then a separator line with one "---"
// per column, then one line per data row. Every cell is trimmed of
// surrounding whitespace and every line is terminated by a single newline.
// Empty cells render as blank cells with the pipes still present.
//
// The output is a deterministic function of (headers, rows) alone: rendering
// for token estimation and rendering for download produce identical bytes.
func RenderMarkdown(headers []string, rows [][]string) string {
	var b strings.Builder

	writeMarkdownRow(&b, headers)

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeMarkdownRow(&b, row)
	}

	return b.String()
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(cell))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
