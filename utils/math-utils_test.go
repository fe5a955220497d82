package utils

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0, 100, 50); got != 5 {
		t.Errorf("Lerp midpoint = %v, want 5", got)
	}
	if got := Lerp(0, 10, 0, 100, 200); got != 10 {
		t.Errorf("Lerp past the input range = %v, want clamped 10", got)
	}
	if got := Lerp(10, 0, 0, 100, 100); got != 0 {
		t.Errorf("reversed Lerp endpoint = %v, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(2.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(2.5, 0, 1) = %v, want 1", got)
	}
}
