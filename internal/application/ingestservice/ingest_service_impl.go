package ingestservice

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain/interfaces"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/balancerepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/eventrepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/currency"
)

// rate holds the derivation constants for one event kind. The table is built
// once from config so revisions cannot drift apart on constants again.
type rate struct {
	perSecond   float64
	perMegabyte float64
}

type ingestService struct {
	eventRepo   eventrepo.IEventRepository
	balanceRepo balancerepo.IBalanceRepository
	wsManager   interfaces.WebSocketManager
	rates       map[domain.EventKind]rate
	currency    *currency.CurrencyUtils
	logger      zerolog.Logger
}

func New(
	eventRepo eventrepo.IEventRepository,
	balanceRepo balancerepo.IBalanceRepository,
	wsManager interfaces.WebSocketManager,
	cfg config.RatesConfig,
	logger zerolog.Logger,
) IIngestService {
	return &ingestService{
		eventRepo:   eventRepo,
		balanceRepo: balanceRepo,
		wsManager:   wsManager,
		rates: map[domain.EventKind]rate{
			domain.EventKindStream: {
				perSecond:   cfg.Stream.PerSecond,
				perMegabyte: cfg.Stream.PerMegabyte,
			},
		},
		currency: currency.NewCurrencyUtils(),
		logger:   logger,
	}
}

func (s *ingestService) LogStream(ctx context.Context, req *domain.StreamEventRequest) (float64, error) {
	if req.VideoID == "" {
		return 0, domain.NewValidationError("videoId")
	}
	if req.Provider == "" {
		return 0, domain.NewValidationError("provider")
	}

	amount := s.deriveAmount(domain.EventKindStream, req.Seconds, req.DataUsedMB, req.EarnedAmount)

	event := &domain.Event{
		Kind:       domain.EventKindStream,
		VideoID:    req.VideoID,
		SessionID:  req.SessionID,
		UserID:     req.UserID,
		Provider:   req.Provider,
		Seconds:    req.Seconds,
		DataUsedMB: req.DataUsedMB,
		Amount:     amount,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return 0, fmt.Errorf("failed to log stream event: %v", err)
	}

	if err := s.balanceRepo.IncrementEarnings(ctx, req.Provider, amount); err != nil {
		return 0, fmt.Errorf("failed to credit provider %s: %v", req.Provider, err)
	}

	s.logger.Info().
		Str("video_id", req.VideoID).
		Str("provider", req.Provider).
		Float64("seconds", req.Seconds).
		Float64("earned", amount).
		Msg("Stream event logged")

	s.broadcast("stream", req.VideoID, req.Provider, amount)
	return amount, nil
}

func (s *ingestService) LogDownload(ctx context.Context, req *domain.DownloadEventRequest) error {
	if req.VideoID == "" {
		return domain.NewValidationError("videoId")
	}

	event := &domain.Event{
		Kind:      domain.EventKindDownload,
		VideoID:   req.VideoID,
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Provider:  req.Provider,
		SizeBytes: req.Size,
		Amount:    req.Amount,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to log download event: %v", err)
	}

	// Paid downloads with an attributable provider flow to the ledger so the
	// balance invariant covers every earning event.
	if req.Provider != "" && req.Amount > 0 {
		if err := s.balanceRepo.IncrementEarnings(ctx, req.Provider, req.Amount); err != nil {
			return fmt.Errorf("failed to credit provider %s: %v", req.Provider, err)
		}
	}

	s.logger.Info().
		Str("video_id", req.VideoID).
		Str("provider", req.Provider).
		Float64("size", req.Size).
		Msg("Download event logged")

	s.broadcast("download", req.VideoID, req.Provider, req.Amount)
	return nil
}

func (s *ingestService) LogView(ctx context.Context, req *domain.ViewEventRequest) error {
	if req.VideoID == "" {
		return domain.NewValidationError("videoId")
	}
	if req.Provider == "" {
		return domain.NewValidationError("provider")
	}

	event := &domain.Event{
		Kind:       domain.EventKindView,
		VideoID:    req.VideoID,
		UserID:     req.UserID,
		Provider:   req.Provider,
		EventLabel: req.Event,
		DataUsedMB: req.DataUsedMB,
		Amount:     req.EarnedAmount,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to log view event: %v", err)
	}

	s.logger.Info().
		Str("video_id", req.VideoID).
		Str("provider", req.Provider).
		Str("event", req.Event).
		Msg("View event logged")

	s.broadcast("view", req.VideoID, req.Provider, req.EarnedAmount)
	return nil
}

// deriveAmount applies the rate table when the caller did not supply an
// explicit amount. An explicit zero is respected, not recomputed.
func (s *ingestService) deriveAmount(kind domain.EventKind, seconds, dataUsedMB float64, supplied *float64) float64 {
	if supplied != nil {
		return *supplied
	}
	r := s.rates[kind]
	return s.currency.RoundNGN(seconds*r.perSecond + dataUsedMB*r.perMegabyte)
}

func (s *ingestService) broadcast(eventType, videoID, provider string, amount float64) {
	if s.wsManager == nil {
		return
	}
	update := &domain.EventUpdate{
		Type:      eventType,
		VideoID:   videoID,
		Provider:  provider,
		Amount:    amount,
		Timestamp: time.Now(),
	}
	if err := s.wsManager.Broadcast(update); err != nil {
		s.logger.Err(err).Msg("Failed to broadcast event update")
	}
}
