package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("expected 80x24, got %dx%d", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetWithColor(5, 5, '┼', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != '┼' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}
	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %+v", c)
	}

	// Out of bounds writes are ignored and reads are blank.
	s.Set(-1, 0, 'A')
	s.SetWithColor(100, 0, 'A', ColorBlue)
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextWithColor(2, 1, "Moves", ColorCyan)

	for i, ch := range "Moves" {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Wide runes advance one cell each.
	s.DrawText(0, 2, "─┼─")
	if s.Row(2)[:len("─┼─")] != "─┼─" {
		t.Errorf("unexpected row %q", s.Row(2))
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorGreen)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorGreen {
		t.Error("centered text lost its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for xy, want := range corners {
		if got := s.Get(xy[0], xy[1]); got != want {
			t.Errorf("corner at %v: expected %q, got %q", xy, want, got)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorWhite {
		t.Error("box should carry its color")
	}
}

func TestScreenDrawRectAndLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')
	s.DrawHLine(0, 8, 4, '-', ColorGray)

	if s.Get(2, 2) != '#' || s.Get(4, 4) != '#' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect filled the wrong area")
	}
	if s.Row(8)[:5] != "---- " {
		t.Errorf("DrawHLine produced %q", s.Row(8))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextWithColor(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextWithColor(0, 0, "Hello", ColorYellow)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("expected 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorYellow {
		t.Error("content should survive enlarging")
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}
