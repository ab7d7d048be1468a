package engine

import (
	"strings"
	"testing"
)

// ============================================================================
// RenderMarkdown Tests
// ============================================================================

func TestRenderMarkdown_Basic(t *testing.T) {
	md := RenderMarkdown([]string{"name", "age"}, [][]string{
		{"Alice", "20"},
		{"Bob", "30"},
	})

	want := "| name | age |\n| --- | --- |\n| Alice | 20 |\n| Bob | 30 |\n"
	if md != want {
		t.Errorf("expected %q, got %q", want, md)
	}
}

func TestRenderMarkdown_LineCount(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}}
	md := RenderMarkdown([]string{"a", "b"}, rows)

	lines := strings.Split(strings.TrimSuffix(md, "\n"), "\n")
	if len(lines) != 2+len(rows) {
		t.Errorf("expected %d lines, got %d", 2+len(rows), len(lines))
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") {
			t.Errorf("line %d does not start and end with a pipe: %q", i, line)
		}
	}
}

func TestRenderMarkdown_SeparatorPipeCount(t *testing.T) {
	md := RenderMarkdown([]string{"a", "b", "c"}, nil)

	lines := strings.Split(md, "\n")
	separator := lines[1]
	if got := strings.Count(separator, "|"); got != 4 {
		t.Errorf("expected 4 pipes in separator, got %d (%q)", got, separator)
	}
	if separator != "| --- | --- | --- |" {
		t.Errorf("unexpected separator line: %q", separator)
	}
}

func TestRenderMarkdown_SingleDataRow(t *testing.T) {
	md := RenderMarkdown([]string{"a"}, [][]string{{"1"}})

	lines := strings.Split(strings.TrimSuffix(md, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected exactly 3 lines, got %d: %q", len(lines), md)
	}
}

func TestRenderMarkdown_EmptyCells(t *testing.T) {
	md := RenderMarkdown([]string{"a", "b"}, [][]string{{"", ""}})

	lines := strings.Split(strings.TrimSuffix(md, "\n"), "\n")
	if lines[2] != "|  |  |" {
		t.Errorf("expected blank cells with pipes present, got %q", lines[2])
	}
}

func TestRenderMarkdown_TrimsCellWhitespace(t *testing.T) {
	md := RenderMarkdown([]string{" name "}, [][]string{{"  Alice  "}})

	lines := strings.Split(md, "\n")
	if lines[0] != "| name |" {
		t.Errorf("expected trimmed header, got %q", lines[0])
	}
	if lines[2] != "| Alice |" {
		t.Errorf("expected trimmed cell, got %q", lines[2])
	}
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	headers := []string{"x", "y"}
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	first := RenderMarkdown(headers, rows)
	second := RenderMarkdown(headers, rows)
	if first != second {
		t.Error("repeated rendering of the same table produced different output")
	}
}
