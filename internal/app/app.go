package app

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/config"
	"github.com/varoOP/seasondb/internal/database"
	"github.com/varoOP/seasondb/internal/dedupe"
	"github.com/varoOP/seasondb/internal/domain"
	"github.com/varoOP/seasondb/internal/logger"
	"github.com/varoOP/seasondb/internal/notification"
	"github.com/varoOP/seasondb/internal/repository"
	"github.com/varoOP/seasondb/internal/search"
	"github.com/varoOP/seasondb/internal/season"
)

// App represents the main application with all dependencies initialized
type App struct {
	log                 zerolog.Logger
	config              *domain.Config
	paths               *domain.Paths
	db                  *database.DB
	animeRepo           *database.AnimeRepo
	fileRepo            *repository.FileRepository
	dedupeService       dedupe.Service
	seasonService       season.Service
	notificationService domain.NotificationService
}

// Season is a loaded and reviewed season ready for display
type Season struct {
	Name            string
	Items           []*domain.Anime
	Review          domain.ReviewResult
	RefreshRequired bool
}

// NewApp creates a new application instance with all dependencies initialized
func NewApp() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return New(cfg, logger.NewLoggerWithLevel(cfg.LogLevel))
}

// New wires the application from an already loaded configuration
func New(cfg *domain.Config, log zerolog.Logger) (*App, error) {
	paths := domain.NewPaths(cfg)

	db, err := database.NewDB(paths.DatabasePath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	animeRepo := database.NewAnimeRepo(log, db)

	return &App{
		log:                 log,
		config:              cfg,
		paths:               paths,
		db:                  db,
		animeRepo:           animeRepo,
		fileRepo:            repository.NewFileRepository(log),
		dedupeService:       dedupe.NewService(log),
		seasonService:       season.NewService(log, animeRepo, paths.SeasonDir),
		notificationService: notification.NewService(log, cfg.DiscordWebhookURL),
	}, nil
}

// Close releases the database
func (a *App) Close() error {
	return a.db.Close()
}

// LoadSeason loads the season file, reviews it and optionally writes a YAML
// report to reportPath.
func (a *App) LoadSeason(ctx context.Context, file, reportPath string) (s *Season, err error) {
	// Send error notification if the load fails
	defer func() {
		if err != nil {
			a.reportFailure(ctx, file, err)
		}
	}()

	s, err = a.review(ctx, file)
	if err != nil {
		return nil, err
	}

	if reportPath != "" {
		report, err := a.buildReport(s)
		if err != nil {
			return nil, err
		}
		if err := a.fileRepo.StoreSeasonReport(ctx, reportPath, report); err != nil {
			return nil, fmt.Errorf("failed to store season report: %w", err)
		}
	}

	stats := domain.Statistics{
		Season:          s.Name,
		TotalItems:      len(s.Items),
		Removed:         len(s.Review.Removed),
		Added:           len(s.Review.Added),
		RefreshRequired: s.RefreshRequired,
	}

	a.log.Info().
		Str("season", stats.Season).
		Int("items", stats.TotalItems).
		Int("removed", stats.Removed).
		Int("added", stats.Added).
		Bool("refresh_required", stats.RefreshRequired).
		Msg("Season loaded")

	if notifyErr := a.notificationService.SendSuccess(ctx, stats); notifyErr != nil {
		a.log.Warn().Err(notifyErr).Msg("Failed to send success notification")
	}

	return s, nil
}

// CheckRefresh loads the season file and reports whether its records need a refresh
func (a *App) CheckRefresh(ctx context.Context, file string) (required bool, err error) {
	defer func() {
		if err != nil {
			a.reportFailure(ctx, file, err)
		}
	}()

	if err := a.seasonService.Load(ctx, file); err != nil {
		return false, fmt.Errorf("failed to load season: %w", err)
	}

	required, err = a.seasonService.IsRefreshRequired(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check season data: %w", err)
	}

	return required, nil
}

// Search loads and reviews the season, then fuzzy matches query against its titles
func (a *App) Search(ctx context.Context, file, query string) (results []*domain.Anime, err error) {
	defer func() {
		if err != nil {
			a.reportFailure(ctx, file, err)
		}
	}()

	s, err := a.review(ctx, file)
	if err != nil {
		return nil, err
	}
	return search.Titles(query, s.Items), nil
}

// Import seeds the anime store from a JSON export and returns the number of records written
func (a *App) Import(ctx context.Context, path string) (int, error) {
	items, err := a.fileRepo.GetAnime(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read anime file: %w", err)
	}

	dupeCount, items := a.dedupeService.CheckDupes(ctx, items)
	a.log.Debug().Int("dupe_count", dupeCount).Msg("Duplicate check complete")

	if err := a.animeRepo.ImportItems(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to import anime: %w", err)
	}

	a.log.Info().Int("count", len(items)).Str("path", path).Msg("Imported anime")
	return len(items), nil
}

// reportFailure logs a failed season command and sends it to the notification channels
func (a *App) reportFailure(ctx context.Context, file string, err error) {
	a.log.Error().Err(err).Str("file", file).Msg("Season load failed")
	if notifyErr := a.notificationService.SendError(ctx, err); notifyErr != nil {
		a.log.Warn().Err(notifyErr).Msg("Failed to send error notification")
	}
}

func (a *App) review(ctx context.Context, file string) (*Season, error) {
	if err := a.seasonService.Load(ctx, file); err != nil {
		return nil, fmt.Errorf("failed to load season: %w", err)
	}

	s := &Season{Name: a.seasonService.Name()}

	// A missing file loads as an empty season without a name to review against
	if s.Name != "" {
		result, err := a.seasonService.Review(ctx, a.config.HideAdultContent)
		if err != nil {
			return nil, fmt.Errorf("failed to review season: %w", err)
		}
		s.Review = result
	} else {
		a.log.Warn().Str("file", file).Msg("Season file has no name, skipping review")
	}

	required, err := a.seasonService.IsRefreshRequired(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check season data: %w", err)
	}
	s.RefreshRequired = required

	for _, id := range a.seasonService.Items() {
		item, err := a.animeRepo.FindItem(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to look up anime %d: %w", id, err)
		}
		s.Items = append(s.Items, item)
	}

	return s, nil
}

func (a *App) buildReport(s *Season) (*domain.SeasonReport, error) {
	dateStart, dateEnd, err := domain.SeasonInterval(s.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to build season report: %w", err)
	}

	report := &domain.SeasonReport{
		Season:    s.Name,
		DateStart: dateStart.String(),
		DateEnd:   dateEnd.String(),
	}
	for _, item := range s.Items {
		report.Items = append(report.Items, domain.ReportItem{
			ID:        item.ID,
			Title:     item.Title,
			Type:      item.Type.String(),
			DateStart: item.DateStart.String(),
			Genres:    item.Genres,
			Producers: item.Producers,
		})
	}

	return report, nil
}
