package service

import (
	"context"
	"fmt"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

type Quote struct {
	backend  QuoteBackend
	notifier model.Notifier
	logger   *logger.Logger
}

func NewQuote(backend QuoteBackend, notifier model.Notifier, logger *logger.Logger) *Quote {
	return &Quote{backend: backend, notifier: notifier, logger: logger}
}

func (s *Quote) Create(ctx context.Context, form model.QuoteForm) (model.Quote, error) {
	if err := validate(form); err != nil {
		return model.Quote{}, err
	}
	q, err := s.backend.CreateQuote(ctx, form)
	if err != nil {
		s.logger.Error("Quote service: failed to create quote",
			"request_id", form.RepairRequestID,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to create quote"))
		return model.Quote{}, fmt.Errorf("failed to create quote: %w", err)
	}
	s.notifier.Success("Quote created successfully!")
	return q, nil
}

func (s *Quote) Accept(ctx context.Context, quoteID int64) (model.Quote, error) {
	q, err := s.backend.AcceptQuote(ctx, quoteID)
	if err != nil {
		s.logger.Error("Quote service: failed to accept quote",
			"quote_id", quoteID,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to accept quote"))
		return model.Quote{}, fmt.Errorf("failed to accept quote: %w", err)
	}
	s.notifier.Success("Quote accepted successfully!")
	return q, nil
}

func (s *Quote) List(ctx context.Context, requestID int64) ([]model.Quote, error) {
	qs, err := s.backend.RequestQuotes(ctx, requestID)
	if err != nil {
		s.logger.Error("Quote service: failed to list quotes",
			"request_id", requestID,
			"error", err.Error())
		s.notifier.Error("Failed to retrieve quotes")
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return qs, nil
}
