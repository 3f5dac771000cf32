// Package parse holds the small pure parsers for command arguments.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	weightRe = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)
	clockRe  = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)
)

// Clock is a time of day in the bot's fixed timezone.
type Clock struct {
	Hour   int
	Minute int
}

// String formats the clock as 24-hour HH:MM.
func (c Clock) String() string {
	return twoDigits(c.Hour) + ":" + twoDigits(c.Minute)
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Weight extracts the first signed decimal number from text, accepting
// either "." or "," as the decimal separator. The command name and any
// surrounding words are ignored. ok is false when no number is present.
func Weight(text string) (float64, bool) {
	m := weightRe.FindString(text)
	if m == "" {
		return 0, false
	}
	kg, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return kg, true
}

// TimeAndText interprets the first arg as a strict H:MM / HH:MM clock
// time and joins the rest into the message. When the first arg does not
// parse, ok is false and the message is the whole arg list rejoined, so
// callers can tell a malformed time from a missing message. Empty args
// yield ok=false with an empty message.
func TimeAndText(args []string) (Clock, string, bool) {
	if len(args) == 0 {
		return Clock{}, "", false
	}
	m := clockRe.FindStringSubmatch(args[0])
	if m == nil {
		return Clock{}, strings.TrimSpace(strings.Join(args, " ")), false
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return Clock{Hour: hh, Minute: mm}, strings.TrimSpace(strings.Join(args[1:], " ")), true
}
