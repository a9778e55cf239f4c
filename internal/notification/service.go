package notification

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/varoOP/seasondb/internal/domain"
)

// Service fans season notifications out to the configured channels
type Service struct {
	log     zerolog.Logger
	discord *DiscordService
}

// NewService creates a notification service; an empty webhook URL disables Discord
func NewService(log zerolog.Logger, webhookURL string) domain.NotificationService {
	s := &Service{
		log: log.With().Str("module", "notification").Logger(),
	}
	if webhookURL != "" {
		s.discord = NewDiscordService(log, webhookURL)
	}
	return s
}

func (s *Service) SendSuccess(ctx context.Context, stats domain.Statistics) error {
	if s.discord == nil {
		s.log.Trace().Str("season", stats.Season).Msg("no notification channel configured")
		return nil
	}
	return s.discord.SendSuccess(ctx, stats)
}

func (s *Service) SendError(ctx context.Context, err error) error {
	if s.discord == nil {
		s.log.Trace().Err(err).Msg("no notification channel configured")
		return nil
	}
	return s.discord.SendError(ctx, err)
}
