package outletmap

import (
	"fmt"
	"regexp"
	"strconv"
)

// Clock is a canonical time of day with minute resolution and no date
// component.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Minutes returns the time as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// After reports whether c is later in the day than other.
func (c Clock) After(other Clock) bool {
	return c.Minutes() > other.Minutes()
}

// String formats the time in 12-hour form, e.g. "10:00 PM".
func (c Clock) String() string {
	meridiem := "AM"
	if c.Hour >= 12 {
		meridiem = "PM"
	}
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, meridiem)
}

// Operating-hours text embeds time tokens in two literal forms:
// "H:MM AM/PM" and compact "HAM/PM" (no colon, no minutes).
var closingTimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(AM|PM)`),
	regexp.MustCompile(`(\d{1,2})(AM|PM)`),
}

// ExtractClosingTime scans text for time tokens in either supported form
// and returns the last token in the string as the closing time. This
// assumes the final time mentioned denotes the closing boundary, because
// opening/closing pairs are listed in order; split-shift strings report the
// final segment's end.
//
// The second return value is false when no token matches. Callers must
// treat such an outlet as unparseable and exclude it from closing-time
// comparisons rather than erroring out.
func ExtractClosingTime(text string) (Clock, bool) {
	bestStart := -1
	var closing Clock

	for _, re := range closingTimePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if loc[0] <= bestStart {
				continue
			}
			c, ok := parseClockToken(text, re, loc)
			if !ok {
				continue
			}
			bestStart = loc[0]
			closing = c
		}
	}

	if bestStart < 0 {
		return Clock{}, false
	}
	return closing, true
}

// parseClockToken converts one regexp match into a Clock. The submatch
// layout is (hour, minute, meridiem) for the colon form and
// (hour, meridiem) for the compact form.
func parseClockToken(text string, re *regexp.Regexp, loc []int) (Clock, bool) {
	groups := make([]string, 0, 3)
	for i := 1; i*2 < len(loc); i++ {
		if loc[i*2] < 0 {
			continue
		}
		groups = append(groups, text[loc[i*2]:loc[i*2+1]])
	}

	var hourStr, minuteStr, meridiem string
	switch len(groups) {
	case 3:
		hourStr, minuteStr, meridiem = groups[0], groups[1], groups[2]
	case 2:
		hourStr, minuteStr, meridiem = groups[0], "0", groups[1]
	default:
		return Clock{}, false
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return Clock{}, false
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute > 59 {
		return Clock{}, false
	}

	hour %= 12
	if meridiem == "PM" {
		hour += 12
	}
	return Clock{Hour: hour, Minute: minute}, true
}
