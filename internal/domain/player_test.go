package domain

import "testing"

func TestPositionFromChoice(t *testing.T) {
	tests := []struct {
		choice int
		want   Position
		ok     bool
	}{
		{1, Goalkeeper, true},
		{2, Defender, true},
		{3, Midfielder, true},
		{4, Forward, true},
		{0, Position(0), false},
		{5, Position(5), false},
	}

	for _, tt := range tests {
		got, ok := PositionFromChoice(tt.choice)
		if ok != tt.ok {
			t.Fatalf("PositionFromChoice(%d) ok = %v, want %v", tt.choice, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("PositionFromChoice(%d) = %v, want %v", tt.choice, got, tt.want)
		}
	}
}

func TestPlayerString(t *testing.T) {
	p := Player{DNI: "111A", Name: "Leo", Position: Forward, Height: 1.7}

	want := "Player{dni=111A, name=Leo, position=Forward, height=1.70}"
	if got := p.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}
