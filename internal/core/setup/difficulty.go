package setup

import (
	"fmt"
	"strings"
)

// Difficulty sets the share of snakes in a randomized layout.
type Difficulty uint8

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// SnakeProbability is the chance that a layout slot becomes a snake.
func (d Difficulty) SnakeProbability() float64 {
	switch d {
	case Easy:
		return 0.3
	case Hard:
		return 0.7
	default:
		return 0.5
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
