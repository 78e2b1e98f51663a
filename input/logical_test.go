package input

import "testing"

func TestLogicalButtonString(t *testing.T) {
	tests := []struct {
		button   LogicalButton
		expected string
	}{
		{ButtonLeft, "Left"},
		{ButtonUp, "Up"},
		{ButtonRight, "Right"},
		{ButtonDown, "Down"},
		{ButtonA, "A"},
		{ButtonB, "B"},
		{ButtonX, "X"},
		{ButtonY, "Y"},
		{ButtonStart, "Start"},
		{ButtonSelect, "Select"},
		{ButtonLeftShoulder, "L"},
		{ButtonRightShoulder, "R"},
		{LogicalButton(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.button.String(); got != tc.expected {
			t.Errorf("LogicalButton(%d).String() = %q, want %q", tc.button, got, tc.expected)
		}
	}
}

func TestLogicalButtonNamesAreUnique(t *testing.T) {
	seen := make(map[string]LogicalButton)
	for b := LogicalButton(0); b < NumLogicalButtons; b++ {
		name := b.String()
		if name == "Unknown" {
			t.Errorf("button %d has no name", b)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("buttons %d and %d share name %q", prev, b, name)
		}
		seen[name] = b
	}
}
