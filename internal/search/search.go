package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/varoOP/seasondb/internal/domain"
)

// Titles ranks items whose title fuzzy-matches query, best match first.
// An empty query returns the items unchanged.
func Titles(query string, items []*domain.Anime) []*domain.Anime {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}

	matches := fuzzy.RankFindNormalizedFold(query, titles)

	// Sort by distance (lower is better), keep season order on ties
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})

	results := make([]*domain.Anime, 0, len(matches))
	for _, match := range matches {
		results = append(results, items[match.OriginalIndex])
	}
	return results
}
