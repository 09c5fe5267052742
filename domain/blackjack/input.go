package blackjack

import "strings"

// HitPrompt is shown before every player decision.
const HitPrompt = "Would you like an additional card (y / n)"

// Input supplies one line of user text per call. ReadLine blocks until the
// line is available; it returns io.EOF when no more input will come.
type Input interface {
	ReadLine(prompt string) (string, error)
}

// InputFunc adapts a function to Input.
type InputFunc func(prompt string) (string, error)

func (f InputFunc) ReadLine(prompt string) (string, error) { return f(prompt) }

// ParseYesNo accepts "y" or "n" in any case, ignoring surrounding spaces.
// ok is false for anything else.
func ParseYesNo(line string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y":
		return true, true
	case "n":
		return false, true
	}
	return false, false
}
