package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"#", "Password", "Entropy"}
	rows := [][]string{
		{"1", "abc", "14.1"},
		{"2", "Ωmega-long", "9.0"},
	}
	rightAlign := map[int]bool{0: true, 2: true}

	lines := formatTable(headers, rows, rightAlign, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "#  Password    Entropy" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "1  abc            14.1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "2  Ωmega-long      9.0" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableStyler(t *testing.T) {
	lines := formatTable([]string{"A"}, [][]string{{"x"}}, nil, func(row, col int, padded string) string {
		if row < 0 {
			return padded
		}
		return "<" + padded + ">"
	})
	if lines[1] != "<x>" {
		t.Fatalf("unexpected styled line: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
