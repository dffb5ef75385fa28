package debugger

import "testing"

func TestParseBreaked(t *testing.T) {
	lines := []string{
		"_Hedgehog_:breaked",
		"#0  main () at blink_v1.c:13",
		"13\t  someCode();",
		"i = 4",
		"j = 0",
	}
	ev, err := parseBreaked(lines)
	if err != nil {
		t.Fatalf("parseBreaked: %v", err)
	}
	if ev.Kind != EventBreak {
		t.Fatalf("Kind = %v, want EventBreak", ev.Kind)
	}
	if ev.Line != 10 {
		t.Fatalf("Line = %d, want 10", ev.Line)
	}
	if string(ev.Locals) != "i = 4\nj = 0" {
		t.Fatalf("Locals = %q", ev.Locals)
	}
}

func TestParseBreakedTruncated(t *testing.T) {
	if _, err := parseBreaked([]string{"_Hedgehog_:breaked"}); err == nil {
		t.Fatal("expected error for truncated report")
	}
}

func TestParseBreakedClampsNegativeLine(t *testing.T) {
	lines := []string{
		"_Hedgehog_:breaked",
		"#0  main () at blink_v1.c:1",
		"1\t  int main() {",
	}
	ev, err := parseBreaked(lines)
	if err != nil {
		t.Fatalf("parseBreaked: %v", err)
	}
	if ev.Line != 0 {
		t.Fatalf("Line = %d, want 0", ev.Line)
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"13\tsome code", 13, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		n, ok := leadingInt(c.in)
		if ok != c.ok || (ok && n != c.want) {
			t.Errorf("leadingInt(%q) = %d, %v; want %d, %v", c.in, n, ok, c.want, c.ok)
		}
	}
}
