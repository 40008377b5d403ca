package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative time phrases ("tonight", "next week", "weekend")
// to absolute times. The extraction prompt uses it to show the model concrete
// dates for each relative phrase it may encounter.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative phrase to the start of the day it refers to.
// baseTime is the reference point, usually time.Now(). Unknown phrases
// resolve to today rather than erroring.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.StartOfDay(baseTime), nil
	case "tomorrow", "tomorrow morning":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "next week":
		return p.nextWeekday(baseTime, time.Monday), nil
	case "weekend", "this weekend":
		return p.upcomingWeekday(baseTime, time.Saturday), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return p.StartOfDay(baseTime), nil
}

// Tonight returns today's evening window, 19:00 to 21:00.
func (p *Parser) Tonight(baseTime time.Time) Window {
	day := p.StartOfDay(baseTime)
	return Window{
		Start: day.Add(19 * time.Hour),
		End:   day.Add(21 * time.Hour),
	}
}

// TomorrowMorning returns tomorrow's morning window, 09:00 to 11:00.
func (p *Parser) TomorrowMorning(baseTime time.Time) Window {
	day := p.StartOfDay(baseTime.AddDate(0, 0, 1))
	return Window{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(11 * time.Hour),
	}
}

// NextWeek returns the start of next Monday.
func (p *Parser) NextWeek(baseTime time.Time) time.Time {
	return p.nextWeekday(baseTime, time.Monday)
}

// Weekend returns the start of the upcoming Saturday (today if baseTime is
// already Saturday).
func (p *Parser) Weekend(baseTime time.Time) time.Time {
	return p.upcomingWeekday(baseTime, time.Saturday)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	return p.nextWeekday(baseTime, targetWeekday), nil
}

// nextWeekday returns the start of the next occurrence of the target weekday,
// always strictly after baseTime's day.
func (p *Parser) nextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// upcomingWeekday is like nextWeekday but keeps baseTime's own day when it
// already falls on the target weekday.
func (p *Parser) upcomingWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil < 0 {
		daysUntil += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
