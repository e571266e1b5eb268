// File: utils/timeparse.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedTimeError reports an unparsable clock string. Callers must not
// feed raw user input into interval math, so parsing fails fast instead of
// producing garbage minutes.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q, expected HH:mm", e.Value)
}

// ParseClockMinutes converts an "HH:mm" clock string into minutes from
// midnight. Legacy reservation records store their start this way.
func ParseClockMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: value}
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, &MalformedTimeError{Value: value}
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &MalformedTimeError{Value: value}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, &MalformedTimeError{Value: value}
	}
	return h*60 + m, nil
}
