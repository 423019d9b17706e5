// Package timeenc converts wall-clock times between the stored 24-hour
// "HH:MM" form and the 12-hour AM/PM form shown in forms.
package timeenc

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	AM = "AM"
	PM = "PM"
)

type Display struct {
	Hour12 int
	Minute int
	Period string
}

// Noon is the editing default used when a stored time is missing or
// malformed. Stored values themselves are never rewritten.
var Noon = Display{Hour12: 12, Minute: 0, Period: PM}

// Valid reports whether the value is a well-formed "HH:MM" wall-clock
// time.
func Valid(time24 string) bool {
	_, _, ok := parse(time24)
	return ok
}

func parse(time24 string) (hour, minute int, ok bool) {
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// ToDisplay splits a stored "HH:MM" into its 12-hour parts. Anything that
// does not parse comes back as Noon.
func ToDisplay(time24 string) Display {
	hour, minute, ok := parse(time24)
	if !ok {
		return Noon
	}

	d := Display{Minute: minute, Period: AM}
	switch {
	case hour == 0:
		d.Hour12 = 12
	case hour == 12:
		d.Hour12 = 12
		d.Period = PM
	case hour > 12:
		d.Hour12 = hour - 12
		d.Period = PM
	default:
		d.Hour12 = hour
	}
	return d
}

// ToStorage joins 12-hour parts back into "HH:MM". 12 AM maps to hour 00
// and 12 PM stays 12; every other PM hour gains twelve.
func ToStorage(hour12, minute int, period string) (string, error) {
	if hour12 < 1 || hour12 > 12 {
		return "", fmt.Errorf("toStorage: hour out of range: %d", hour12)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("toStorage: minute out of range: %d", minute)
	}

	var hour int
	switch period {
	case AM:
		hour = hour12
		if hour12 == 12 {
			hour = 0
		}
	case PM:
		hour = hour12
		if hour12 != 12 {
			hour = hour12 + 12
		}
	default:
		return "", fmt.Errorf("toStorage: invalid period: %q", period)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
