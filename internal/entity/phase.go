package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPhase = errors.New("invalid phase")
)

var _ = isComparable[Phase]

func isComparable[T comparable]() {}

// Phase is the signal shown by a traffic light. The zero value is Red.
type Phase uint8

const (
	Red Phase = iota
	Green
)

var phaseNames = map[Phase]string{
	Red:   "red",
	Green: "green",
}

func (p Phase) Toggle() Phase {
	if p == Green {
		return Red
	}

	return Green
}

func (p Phase) IsGreen() bool {
	return p == Green
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}

	return fmt.Sprintf("phase(%d)", uint8(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	name, ok := phaseNames[p]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPhase, uint8(p))
	}

	return []byte(name), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	}

	return Red, fmt.Errorf("%w: %q", ErrInvalidPhase, s)
}
