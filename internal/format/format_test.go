package format

import "testing"

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AC/DC", "AC/DC"},
		{"*NSYNC", `\*NSYNC`},
		{"snake_case_band", `snake\_case\_band`},
		{"til~de", `til\~de`},
		{"pipe|name", `pipe\|name`},
		{"back`tick", "back\\`tick"},
		{`slash\name`, `slash\\name`},
	}

	for _, tt := range tests {
		if got := EscapeMarkdown(tt.in); got != tt.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShorten(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "Fits untouched", in: "Short Title", width: 100, want: "Short Title"},
		{name: "Collapses whitespace", in: "Too   many\t spaces", width: 100, want: "Too many spaces"},
		{name: "Cuts at word boundary", in: "The Rain Song Remastered", width: 17, want: "The Rain Song ..."},
		{name: "Single oversized word", in: "Supercalifragilistic", width: 10, want: "..."},
		{name: "Exact fit keeps everything", in: "abcde", width: 5, want: "abcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shorten(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Shorten(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if len(got) > tt.width && got != "..." {
				t.Errorf("result %q exceeds width %d", got, tt.width)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{1000, "00:01"},
		{59999, "00:59"},
		{60000, "01:00"},
		{225_000, "03:45"},
		{3_599_000, "59:59"},
	}

	for _, tt := range tests {
		if got := Duration(tt.ms); got != tt.want {
			t.Errorf("Duration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestJoinNames(t *testing.T) {
	if got := JoinNames([]string{"A", "B", "C"}); got != "A, B, C" {
		t.Errorf("JoinNames = %q", got)
	}
	if got := JoinNames(nil); got != "" {
		t.Errorf("JoinNames(nil) = %q", got)
	}
}
