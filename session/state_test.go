package session

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{Uninitialized, "Uninitialized"},
		{Booted, "Booted"},
		{Destroyed, "Destroyed"},
		{State(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.state.String()
			if got != tc.expected {
				t.Errorf("State(%d).String() = %q, want %q", tc.state, got, tc.expected)
			}
		})
	}
}
