package season

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
)

// refreshThreshold is the number of incomplete records a season may hold
// before a refresh is requested.
const refreshThreshold = 20

type Service interface {
	Load(ctx context.Context, file string) error
	IsRefreshRequired(ctx context.Context) (bool, error)
	Review(ctx context.Context, hideAdultContent bool) (domain.ReviewResult, error)
	Name() string
	Items() []int
}

type service struct {
	log       zerolog.Logger
	animeRepo domain.AnimeRepository
	seasonDir string

	name  string
	items []int
}

func NewService(log zerolog.Logger, animeRepo domain.AnimeRepository, seasonDir string) Service {
	return &service{
		log:       log.With().Str("module", "season").Logger(),
		animeRepo: animeRepo,
		seasonDir: seasonDir,
	}
}

func (s *service) Name() string {
	return s.name
}

func (s *service) Items() []int {
	return append([]int(nil), s.items...)
}

// Load reads a season file from the season directory and upserts its anime
// into the record store. A missing file loads as an empty season.
func (s *service) Load(ctx context.Context, file string) error {
	s.items = nil

	path := filepath.Join(s.seasonDir, file)
	doc, err := readSeasonFile(path)
	if err != nil {
		return err
	}

	s.name = innerText(xmlquery.FindOne(doc, "/season/info/name"))
	lastModified := parseLeadingInt(innerText(xmlquery.FindOne(doc, "/season/info/last_modified")))

	var items []int
	for _, node := range xmlquery.Find(doc, "/season/anime") {
		animeID := readInt(node, "series_animedb_id")
		if animeID <= 0 {
			s.log.Warn().Str("path", path).Str("series_animedb_id", readStr(node, "series_animedb_id")).Msg("Skipping anime without a valid id")
			continue
		}
		items = append(items, animeID)

		existing, err := s.animeRepo.FindItem(ctx, animeID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return errors.Wrapf(err, "failed to look up anime %d", animeID)
		}
		if existing != nil && existing.LastModified >= lastModified {
			continue
		}

		item := &domain.Anime{
			ID:           animeID,
			Title:        readStr(node, "series_title"),
			Type:         domain.SeriesType(readInt(node, "series_type")),
			ImageURL:     readStr(node, "series_image"),
			Producers:    domain.SplitList(readStr(node, "producers")),
			LastModified: lastModified,
		}

		if err := s.animeRepo.UpdateItem(ctx, item); err != nil {
			return errors.Wrapf(err, "failed to update anime %d", animeID)
		}
	}

	s.items = items

	s.log.Debug().
		Str("season", s.name).
		Str("path", path).
		Int("items", len(items)).
		Msg("Loaded season")

	return nil
}

// IsRefreshRequired reports whether too many season records lack a start
// date or synopsis.
func (s *service) IsRefreshRequired(ctx context.Context) (bool, error) {
	count := 0
	for _, animeID := range s.items {
		item, err := s.animeRepo.FindItem(ctx, animeID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, errors.Wrapf(err, "failed to look up anime %d", animeID)
		}

		if !item.DateStart.IsValid() || item.Synopsis == "" {
			count++
		}
		if count > refreshThreshold {
			return true, nil
		}
	}

	return false, nil
}

// Review removes items that aired outside the season or are filtered as adult
// content, then adds stored records that belong to the season but are missing.
func (s *service) Review(ctx context.Context, hideAdultContent bool) (domain.ReviewResult, error) {
	var result domain.ReviewResult

	dateStart, dateEnd, err := domain.SeasonInterval(s.name)
	if err != nil {
		return result, errors.Wrap(err, "failed to resolve season interval")
	}

	retained := make([]int, 0, len(s.items))
	members := make(map[int]struct{}, len(s.items))
	for _, animeID := range s.items {
		item, err := s.animeRepo.FindItem(ctx, animeID)
		if errors.Is(err, domain.ErrNotFound) {
			retained = append(retained, animeID)
			members[animeID] = struct{}{}
			continue
		}
		if err != nil {
			return domain.ReviewResult{}, errors.Wrapf(err, "failed to look up anime %d", animeID)
		}

		invalid := false
		if item.DateStart.IsValid() && !item.DateStart.Within(dateStart, dateEnd) {
			invalid = true
		}
		if hideAdultContent && item.IsAdult() {
			invalid = true
		}

		if invalid {
			result.Removed = append(result.Removed, animeID)
			s.log.Debug().
				Str("title", item.Title).
				Stringer("date_start", item.DateStart).
				Msg("Removed item")
			continue
		}

		retained = append(retained, animeID)
		members[animeID] = struct{}{}
	}

	records, err := s.animeRepo.Items(ctx)
	if err != nil {
		return domain.ReviewResult{}, errors.Wrap(err, "failed to list anime")
	}

	for _, item := range records {
		if _, ok := members[item.ID]; ok {
			continue
		}
		if hideAdultContent && item.IsAdult() {
			continue
		}

		if item.DateStart.HasYearMonth() && item.DateStart.Within(dateStart, dateEnd) {
			retained = append(retained, item.ID)
			members[item.ID] = struct{}{}
			result.Added = append(result.Added, item.ID)
			s.log.Debug().
				Str("title", item.Title).
				Stringer("date_start", item.DateStart).
				Msg("Added item")
		}
	}

	s.items = retained
	return result, nil
}

// readSeasonFile parses the season file at path. A missing file yields an
// empty document.
func readSeasonFile(path string) (*xmlquery.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &xmlquery.Node{Type: xmlquery.DocumentNode}, nil
		}
		return nil, errors.Wrapf(domain.ErrSeasonUnreadable, "%s: %v", path, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrSeasonUnreadable, "%s: %v", path, err)
	}

	if xmlquery.FindOne(doc, "/*") == nil {
		return nil, errors.Wrapf(domain.ErrSeasonUnreadable, "%s: no document element", path)
	}

	return doc, nil
}

func innerText(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

func readStr(n *xmlquery.Node, name string) string {
	return innerText(n.SelectElement(name))
}

func readInt(n *xmlquery.Node, name string) int {
	return int(parseLeadingInt(readStr(n, name)))
}

// parseLeadingInt reads an optionally signed run of leading digits, so "12abc"
// is 12. Text without leading digits is 0.
func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
