package utils

import (
	"doctor-appointment-service/internal/pkg/constvars"
	"regexp"
	"strings"
	"time"
)

var (
	dateRegex     = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	timeSlotRegex = regexp.MustCompile(constvars.RegexTimeSlot)
)

// ParseDate parses a strict YYYY-MM-DD calendar date at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	if !dateRegex.MatchString(value) {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func IsValidDate(value string) bool {
	_, ok := ParseDate(value, time.UTC)
	return ok
}

// ParseTimeSlot splits an HH:MM-HH:MM label into its two wall-clock halves.
func ParseTimeSlot(value string) (start, end time.Time, ok bool) {
	if !timeSlotRegex.MatchString(value) {
		return time.Time{}, time.Time{}, false
	}
	halves := strings.SplitN(value, constvars.TimeSlotSeparator, 2)
	start, err := time.Parse(constvars.TimeLayoutHHMM, halves[0])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(constvars.TimeLayoutHHMM, halves[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func IsValidTimeSlot(value string) bool {
	_, _, ok := ParseTimeSlot(value)
	return ok
}

// IsValidSlotLabel additionally requires the slot to start before it ends.
func IsValidSlotLabel(value string) bool {
	start, end, ok := ParseTimeSlot(value)
	return ok && start.Before(end)
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsTodayOrLater reports whether date falls on now's calendar day or after it.
func IsTodayOrLater(date, now time.Time) bool {
	return !StartOfDay(date).Before(StartOfDay(now.In(date.Location())))
}
