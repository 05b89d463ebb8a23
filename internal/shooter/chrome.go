package shooter

import "fmt"

// ElementKind identifies a piece of menu chrome owned by the host UI.
type ElementKind int

const (
	ElementTitle ElementKind = iota
	ElementStartButton
	ElementGameOverText
	ElementScore
	ElementRestartButton
)

// Element is one visible piece of chrome.
type Element struct {
	Kind ElementKind
	Text string
}

// IsButton reports whether the element is actionable.
func (el Element) IsButton() bool {
	return el.Kind == ElementStartButton || el.Kind == ElementRestartButton
}

// Chrome projects the session phase onto the chrome a UI layer should show.
// Nothing is shown while playing.
func Chrome(state State, score int, title string) []Element {
	switch state {
	case StateMenu:
		return []Element{
			{Kind: ElementTitle, Text: title},
			{Kind: ElementStartButton, Text: "Start Game"},
		}
	case StateGameOver:
		return []Element{
			{Kind: ElementGameOverText, Text: GameOverMsg},
			{Kind: ElementScore, Text: fmt.Sprintf("Score: %d", score)},
			{Kind: ElementRestartButton, Text: "Restart"},
		}
	default:
		return nil
	}
}
