package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownAction = errors.New("unknown navigation action")

// Action is a month navigation step.
type Action int

const (
	Stay Action = iota
	Next
	Previous
	Today
)

// ParseAction accepts next, prev, previous and today. An empty string is
// Stay.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Stay, nil
	case "next":
		return Next, nil
	case "prev", "previous":
		return Previous, nil
	case "today":
		return Today, nil
	}
	return Stay, fmt.Errorf("%w %q", ErrUnknownAction, s)
}

func (a Action) String() string {
	switch a {
	case Stay:
		return "stay"
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Today:
		return "today"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Navigate returns the cursor after applying a. now is only consulted for
// Today and is read in its own location.
func Navigate(cursor Month, a Action, now time.Time) Month {
	switch a {
	case Next:
		return cursor.AddMonths(1)
	case Previous:
		return cursor.AddMonths(-1)
	case Today:
		return MonthOf(DateOf(now))
	}
	return cursor
}
