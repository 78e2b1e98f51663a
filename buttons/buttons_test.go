package buttons

import (
	"testing"

	"github.com/SeanAsby/rustboyui/input"
)

func TestFamilyString(t *testing.T) {
	tests := []struct {
		family   Family
		expected string
	}{
		{SNES, "SNES"},
		{GameBoy, "Game Boy"},
		{Family(99), "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			got := tc.family.String()
			if got != tc.expected {
				t.Errorf("Family(%d).String() = %q, want %q", tc.family, got, tc.expected)
			}
		})
	}
}

func TestTranslateSNESCoversAllLogicalButtons(t *testing.T) {
	for b := input.LogicalButton(0); b < input.NumLogicalButtons; b++ {
		if _, ok := Translate(SNES, b); !ok {
			t.Errorf("Translate(SNES, %v) returned false; SNES maps the whole logical domain", b)
		}
	}
}

func TestTranslateSNESCodes(t *testing.T) {
	tests := []struct {
		button input.LogicalButton
		want   Code
	}{
		{input.ButtonB, SNESB},
		{input.ButtonY, SNESY},
		{input.ButtonSelect, SNESSelect},
		{input.ButtonStart, SNESStart},
		{input.ButtonUp, SNESUp},
		{input.ButtonDown, SNESDown},
		{input.ButtonLeft, SNESLeft},
		{input.ButtonRight, SNESRight},
		{input.ButtonA, SNESA},
		{input.ButtonX, SNESX},
		{input.ButtonLeftShoulder, SNESL},
		{input.ButtonRightShoulder, SNESR},
	}

	for _, tc := range tests {
		got, ok := Translate(SNES, tc.button)
		if !ok {
			t.Errorf("Translate(SNES, %v) returned false", tc.button)
			continue
		}
		if got != tc.want {
			t.Errorf("Translate(SNES, %v) = %d, want %d", tc.button, got, tc.want)
		}
	}
}

func TestTranslateSNESBitOrder(t *testing.T) {
	// Joypad register bit positions: B low through R high
	ordered := []Code{SNESB, SNESY, SNESSelect, SNESStart, SNESUp, SNESDown,
		SNESLeft, SNESRight, SNESA, SNESX, SNESL, SNESR}
	for i, code := range ordered {
		if code != Code(i) {
			t.Errorf("SNES code at position %d = %d, want %d", i, code, i)
		}
	}
}

func TestTranslateGameBoyCodes(t *testing.T) {
	tests := []struct {
		button input.LogicalButton
		want   Code
	}{
		{input.ButtonRight, GBRight},
		{input.ButtonLeft, GBLeft},
		{input.ButtonUp, GBUp},
		{input.ButtonDown, GBDown},
		{input.ButtonA, GBA},
		{input.ButtonB, GBB},
		{input.ButtonSelect, GBSelect},
		{input.ButtonStart, GBStart},
	}

	for _, tc := range tests {
		got, ok := Translate(GameBoy, tc.button)
		if !ok {
			t.Errorf("Translate(GameBoy, %v) returned false", tc.button)
			continue
		}
		if got != tc.want {
			t.Errorf("Translate(GameBoy, %v) = %d, want %d", tc.button, got, tc.want)
		}
	}
}

func TestTranslateGameBoyUnmapped(t *testing.T) {
	// A Game Boy has no X/Y face buttons and no shoulders; those logical
	// buttons translate to nothing and the event is dropped.
	unmapped := []input.LogicalButton{
		input.ButtonX,
		input.ButtonY,
		input.ButtonLeftShoulder,
		input.ButtonRightShoulder,
	}

	for _, b := range unmapped {
		if code, ok := Translate(GameBoy, b); ok {
			t.Errorf("Translate(GameBoy, %v) = %d, want unmapped", b, code)
		}
	}
}

func TestTranslateUnknownFamily(t *testing.T) {
	if _, ok := Translate(Family(99), input.ButtonA); ok {
		t.Error("Translate with unknown family returned true, want false")
	}
}
