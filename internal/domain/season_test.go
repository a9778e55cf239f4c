package domain_test

import (
	"errors"
	"testing"

	"github.com/varoOP/seasondb/internal/domain"
)

func TestSeasonInterval(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"Winter 2013", "2013-01-01", "2013-03-31"},
		{"Spring 2013", "2013-04-01", "2013-06-30"},
		{"Summer 2013", "2013-07-01", "2013-09-30"},
		{"Fall 2013", "2013-10-01", "2013-12-31"},
		{"winter 2012", "2012-01-01", "2012-03-31"},
	}

	for _, tt := range tests {
		start, end, err := domain.SeasonInterval(tt.name)
		if err != nil {
			t.Fatalf("SeasonInterval(%q): %v", tt.name, err)
		}
		if start.String() != tt.start || end.String() != tt.end {
			t.Fatalf("SeasonInterval(%q) = [%s, %s], want [%s, %s]", tt.name, start, end, tt.start, tt.end)
		}
	}
}

func TestParseSeasonInvalid(t *testing.T) {
	for _, name := range []string{"", "Spring", "Autumn 2013", "Spring year", "Spring 2013 extra"} {
		if _, err := domain.ParseSeason(name); !errors.Is(err, domain.ErrInvalidSeason) {
			t.Fatalf("ParseSeason(%q) error = %v, want ErrInvalidSeason", name, err)
		}
	}
}

func TestSeasonString(t *testing.T) {
	s, err := domain.ParseSeason("fall 2014")
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	if s.String() != "Fall 2014" {
		t.Fatalf("unexpected season name %q", s.String())
	}
}
