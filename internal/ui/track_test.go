package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/config"
)

func TestComposeRows(t *testing.T) {
	tests := []struct {
		name  string
		cards []placed
		width int
		want  string
	}{
		{
			name: "cards with a gap",
			cards: []placed{
				{at: 0, size: 3, lines: []string{"AAA"}},
				{at: 4, size: 3, lines: []string{"BBB"}},
			},
			width: 8,
			want:  "AAA BBB ",
		},
		{
			name: "overlap keeps the earlier card",
			cards: []placed{
				{at: 0, size: 4, lines: []string{"AAAA"}},
				{at: 2, size: 4, lines: []string{"BBBB"}},
			},
			width: 6,
			want:  "AAAABB",
		},
		{
			name:  "clipped at the left edge",
			cards: []placed{{at: -2, size: 4, lines: []string{"CCDD"}}},
			width: 5,
			want:  "DD   ",
		},
		{
			name:  "clipped at the right edge",
			cards: []placed{{at: 3, size: 4, lines: []string{"EEFF"}}},
			width: 5,
			want:  "   EE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := composeRows(tt.cards, tt.width, 1)
			if got := ansi.Strip(rows[0]); got != tt.want {
				t.Fatalf("row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeRows_KeepsANSIWidth(t *testing.T) {
	cards := []placed{{at: 1, size: 3, lines: []string{"\x1b[31mRED\x1b[0m"}}}
	rows := composeRows(cards, 6, 2)

	if got := ansi.StringWidth(rows[0]); got != 6 {
		t.Fatalf("row width = %d, want 6", got)
	}
	if got := ansi.Strip(rows[0]); got != " RED  " {
		t.Fatalf("row = %q, want %q", got, " RED  ")
	}
	if rows[1] != strings.Repeat(" ", 6) {
		t.Fatalf("row past the card = %q, want blank", rows[1])
	}
}

func TestComposeColumns(t *testing.T) {
	cards := []placed{{at: 1, size: 2, lines: []string{"ab", "cd"}}}
	got := composeColumns(cards, 3, 4)
	want := []string{"   ", "ab ", "cd ", "   "}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"hello", 3, "hel"},
		{"hi", 4, "hi  "},
		{"same", 4, "same"},
	}
	for _, tt := range tests {
		if got := fitWidth(tt.in, tt.w); got != tt.want {
			t.Fatalf("fitWidth(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}

func assertBlock(t *testing.T, lines []string, w, h int) {
	t.Helper()
	if len(lines) != h {
		t.Fatalf("block has %d lines, want %d", len(lines), h)
	}
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != w {
			t.Fatalf("line %d width = %d, want %d", i, got, w)
		}
	}
}

func TestSlideCard(t *testing.T) {
	styles := GetTheme("Dracula").Styles()
	slide := config.Slide{Title: "Opening", Body: "first words", Color: "#ff79c6"}

	lines := slideCard(slide, carousel.SlideRecord{Index: 2, SlideIndex: 2}, 8, true, false, styles, 20, 7)
	assertBlock(t, lines, 20, 7)
	text := ansi.Strip(strings.Join(lines, "\n"))
	for _, want := range []string{"Opening", "first words", "3/8"} {
		if !strings.Contains(text, want) {
			t.Fatalf("card missing %q:\n%s", want, text)
		}
	}

	clone := slideCard(slide, carousel.SlideRecord{Index: -1, SlideIndex: 7, IsClone: true, CloneOf: 7}, 8, false, true, styles, 20, 7)
	if !strings.Contains(ansi.Strip(strings.Join(clone, "\n")), "↺") {
		t.Fatal("clone card missing the clone marker")
	}

	assertBlock(t, slideCard(slide, carousel.SlideRecord{}, 8, false, false, styles, 3, 2), 3, 2)
}

func TestThumbCard(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	slide := config.Slide{Title: "Closing", Color: "#50fa7b"}

	lines := thumbCard(slide, carousel.SlideRecord{Index: 4, SlideIndex: 4}, true, styles, 12, 3)
	assertBlock(t, lines, 12, 3)
	if !strings.Contains(ansi.Strip(lines[1]), "5 Clos") {
		t.Fatalf("thumb label = %q, want the slide number and title", ansi.Strip(lines[1]))
	}
}

func TestHitTest(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)

	tests := []struct {
		coord int
		want  int
		ok    bool
	}{
		{0, 0, true},
		{11, 0, true},
		{12, 0, false},
		{13, 1, true},
		{44, 3, true},
	}
	for _, tt := range tests {
		got, ok := hitTest(m.thumbs, tt.coord)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("hitTest(%d) = %d, %v, want %d, %v", tt.coord, got, ok, tt.want, tt.ok)
		}
	}
}
