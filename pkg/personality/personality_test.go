package personality

import (
	"strings"
	"testing"
)

func TestCombinedPrompt_AllAxisCombinations(t *testing.T) {
	for intensity := 0; intensity <= 9; intensity++ {
		for style := 0; style <= 9; style++ {
			prompt := CombinedPrompt(intensity, style)

			if prompt == "" {
				t.Fatalf("CombinedPrompt(%d, %d) returned empty string", intensity, style)
			}
			if !strings.Contains(prompt, intensityPrompts[intensity]) {
				t.Errorf("CombinedPrompt(%d, %d) missing intensity fragment", intensity, style)
			}
			if !strings.Contains(prompt, stylePrompts[style]) {
				t.Errorf("CombinedPrompt(%d, %d) missing style fragment", intensity, style)
			}
			if !strings.Contains(prompt, ConnectivePhrase) {
				t.Errorf("CombinedPrompt(%d, %d) missing connective", intensity, style)
			}
		}
	}
}

func TestCombinedPrompt_OutOfRangeFallsBackToZero(t *testing.T) {
	baseline := CombinedPrompt(0, 0)

	tests := []struct {
		name             string
		intensity, style int
	}{
		{"negative intensity", -1, 0},
		{"negative style", 0, -5},
		{"intensity above range", 10, 0},
		{"style above range", 0, 99},
		{"both out of range", -3, 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CombinedPrompt(tc.intensity, tc.style); got != baseline {
				t.Errorf("CombinedPrompt(%d, %d) = %q, want level-0 prompt %q",
					tc.intensity, tc.style, got, baseline)
			}
		})
	}
}

func TestSettings_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{"in range untouched", Settings{IntensityLevel: 7, StyleType: 3}, Settings{IntensityLevel: 7, StyleType: 3}},
		{"zero value untouched", Settings{}, Settings{}},
		{"negative collapses to zero", Settings{IntensityLevel: -2, StyleType: 4}, Settings{IntensityLevel: 0, StyleType: 4}},
		{"overflow collapses to zero", Settings{IntensityLevel: 3, StyleType: 15}, Settings{IntensityLevel: 3, StyleType: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalized(); got != tc.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
