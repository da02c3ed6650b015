package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinMark = 0
	MaxMark = 100
)

var (
	ErrMarkOutOfRange = errors.New("mark must be between 0 and 100")
	ErrMarkNotInteger = errors.New("mark must be a whole number")
)

func AcceptMark(raw int) (int, error) {
	if raw < MinMark || raw > MaxMark {
		return 0, fmt.Errorf("%w: got %d", ErrMarkOutOfRange, raw)
	}
	return raw, nil
}

// ParseMark converts a line of user input into an accepted mark.
func ParseMark(raw string) (int, error) {
	mark, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMarkNotInteger, strings.TrimSpace(raw))
	}
	return AcceptMark(mark)
}
