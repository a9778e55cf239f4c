package domain

import (
	"strings"
)

// SeriesType is the series type code carried by season files
type SeriesType int

const (
	SeriesTypeUnknown SeriesType = iota
	SeriesTypeTV
	SeriesTypeOVA
	SeriesTypeMovie
	SeriesTypeSpecial
	SeriesTypeONA
	SeriesTypeMusic
)

func (t SeriesType) String() string {
	switch t {
	case SeriesTypeTV:
		return "tv"
	case SeriesTypeOVA:
		return "ova"
	case SeriesTypeMovie:
		return "movie"
	case SeriesTypeSpecial:
		return "special"
	case SeriesTypeONA:
		return "ona"
	case SeriesTypeMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Anime stores information about an anime
type Anime struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Type         SeriesType `json:"type"`
	ImageURL     string     `json:"image_url,omitempty"`
	Producers    []string   `json:"producers,omitempty"`
	Genres       []string   `json:"genres,omitempty"`
	DateStart    Date       `json:"date_start"`
	DateEnd      Date       `json:"date_end"`
	Synopsis     string     `json:"synopsis,omitempty"`
	LastModified int64      `json:"last_modified"`
}

const adultGenre = "hentai"

// IsAdult reports whether the genre list marks the anime as adult content.
func (a *Anime) IsAdult() bool {
	genres := strings.Join(a.Genres, ", ")
	return strings.Contains(strings.ToLower(genres), adultGenre)
}

// Update merges src into a. Zero values in src leave the existing field alone.
func (a *Anime) Update(src *Anime) {
	a.ID = src.ID
	if src.Title != "" {
		a.Title = src.Title
	}
	if src.Type != SeriesTypeUnknown {
		a.Type = src.Type
	}
	if src.ImageURL != "" {
		a.ImageURL = src.ImageURL
	}
	if len(src.Producers) > 0 {
		a.Producers = append([]string(nil), src.Producers...)
	}
	if len(src.Genres) > 0 {
		a.Genres = append([]string(nil), src.Genres...)
	}
	if !src.DateStart.IsZero() {
		a.DateStart = src.DateStart
	}
	if !src.DateEnd.IsZero() {
		a.DateEnd = src.DateEnd
	}
	if src.Synopsis != "" {
		a.Synopsis = src.Synopsis
	}
	if src.LastModified != 0 {
		a.LastModified = src.LastModified
	}
}

// Clone returns a deep copy of a.
func (a *Anime) Clone() *Anime {
	c := *a
	c.Producers = append([]string(nil), a.Producers...)
	c.Genres = append([]string(nil), a.Genres...)
	return &c
}

// SplitList splits a comma separated list as stored in season files and the database.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(list []string) string {
	return strings.Join(list, ", ")
}
