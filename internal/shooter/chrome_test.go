package shooter

import (
	"reflect"
	"testing"
)

func TestChrome(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		score    int
		expected []Element
	}{
		{
			name:  "menu",
			state: StateMenu,
			expected: []Element{
				{Kind: ElementTitle, Text: "SPACE SHOOTER"},
				{Kind: ElementStartButton, Text: "Start Game"},
			},
		},
		{
			name:     "playing",
			state:    StatePlaying,
			score:    40,
			expected: nil,
		},
		{
			name:  "game over",
			state: StateGameOver,
			score: 130,
			expected: []Element{
				{Kind: ElementGameOverText, Text: "GAME OVER"},
				{Kind: ElementScore, Text: "Score: 130"},
				{Kind: ElementRestartButton, Text: "Restart"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chrome(tt.state, tt.score, "SPACE SHOOTER")
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Chrome() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestElementIsButton(t *testing.T) {
	buttons := map[ElementKind]bool{
		ElementTitle:         false,
		ElementStartButton:   true,
		ElementGameOverText:  false,
		ElementScore:         false,
		ElementRestartButton: true,
	}

	for kind, expected := range buttons {
		if got := (Element{Kind: kind}).IsButton(); got != expected {
			t.Errorf("Element{Kind: %d}.IsButton() = %v, expected %v", kind, got, expected)
		}
	}
}
