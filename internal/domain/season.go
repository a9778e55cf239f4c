package domain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SeasonName is one of the four broadcast quarters
type SeasonName string

const (
	SeasonWinter SeasonName = "Winter"
	SeasonSpring SeasonName = "Spring"
	SeasonSummer SeasonName = "Summer"
	SeasonFall   SeasonName = "Fall"
)

// first month of each quarter
var seasonStartMonth = map[SeasonName]int{
	SeasonWinter: 1,
	SeasonSpring: 4,
	SeasonSummer: 7,
	SeasonFall:   10,
}

// Season identifies a quarter of a year, e.g. "Spring 2013".
type Season struct {
	Name SeasonName
	Year int
}

// ParseSeason parses names of the form "<Winter|Spring|Summer|Fall> <year>".
func ParseSeason(s string) (Season, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Season{}, errors.Wrapf(ErrInvalidSeason, "%q", s)
	}

	name := SeasonName(strings.ToUpper(fields[0][:1]) + strings.ToLower(fields[0][1:]))
	if _, ok := seasonStartMonth[name]; !ok {
		return Season{}, errors.Wrapf(ErrInvalidSeason, "unknown season %q", fields[0])
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil || year <= 0 {
		return Season{}, errors.Wrapf(ErrInvalidSeason, "invalid year %q", fields[1])
	}

	return Season{Name: name, Year: year}, nil
}

// Interval returns the closed date range covered by the season.
func (s Season) Interval() (Date, Date) {
	month := seasonStartMonth[s.Name]
	start := Date{Year: s.Year, Month: month, Day: 1}
	end := Date{Year: s.Year, Month: month + 2, Day: daysIn(s.Year, month+2)}
	return start, end
}

func (s Season) String() string {
	return string(s.Name) + " " + strconv.Itoa(s.Year)
}

// SeasonInterval resolves a season name straight to its date range.
func SeasonInterval(name string) (Date, Date, error) {
	season, err := ParseSeason(name)
	if err != nil {
		return Date{}, Date{}, err
	}
	start, end := season.Interval()
	return start, end, nil
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
