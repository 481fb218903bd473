package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 10)
	if inner != NewRect(30, 7, 20, 10) {
		t.Errorf("unexpected centered rect %+v", inner)
	}
	if inner.Right() != 50 || inner.Bottom() != 17 {
		t.Errorf("unexpected edges %d %d", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{"within range", 5, 0, 10, 5},
		{"below min", -5, 0, 10, 0},
		{"above max", 15, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min returned the larger value")
	}
	if Max(3, 7) != 7 || Max(-1, -4) != -1 {
		t.Error("Max returned the smaller value")
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionUndo, ActionLeft)
	if !f.Has(ActionUndo) || !f.Has(ActionLeft) || f.Has(ActionRedo) {
		t.Errorf("unexpected frame %v", f.Actions)
	}
	f.Clear()
	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	if ActionSwitch.String() != "Switch" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
