package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

// ErrAlreadyReviewed is returned when the repair request already has a review.
var ErrAlreadyReviewed = errors.New("repair request already reviewed")

type Review struct {
	backend  ReviewBackend
	notifier model.Notifier
	logger   *logger.Logger
}

func NewReview(backend ReviewBackend, notifier model.Notifier, logger *logger.Logger) *Review {
	return &Review{backend: backend, notifier: notifier, logger: logger}
}

// Submit posts a review unless the request was already reviewed.
func (s *Review) Submit(ctx context.Context, form model.ReviewForm) (model.Review, error) {
	if err := validate(form); err != nil {
		return model.Review{}, err
	}

	reviewed, err := s.backend.HasReview(ctx, form.RepairRequestID)
	if err != nil {
		s.logger.Error("Review service: failed to check review status",
			"request_id", form.RepairRequestID,
			"error", err.Error())
		s.notifier.Error("Failed to check review status")
		return model.Review{}, fmt.Errorf("failed to check review status: %w", err)
	}
	if reviewed {
		s.notifier.Info("You have already reviewed this repair")
		return model.Review{}, ErrAlreadyReviewed
	}

	r, err := s.backend.SubmitReview(ctx, form)
	if err != nil {
		s.logger.Error("Review service: failed to submit review",
			"request_id", form.RepairRequestID,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to submit review"))
		return model.Review{}, fmt.Errorf("failed to submit review: %w", err)
	}
	s.notifier.Success("Review submitted successfully!")
	return r, nil
}

func (s *Review) ShopReviews(ctx context.Context, shopID int64) ([]model.Review, error) {
	rs, err := s.backend.ShopReviews(ctx, shopID)
	if err != nil {
		s.logger.Error("Review service: failed to list shop reviews",
			"shop_id", shopID,
			"error", err.Error())
		s.notifier.Error("Failed to retrieve shop reviews")
		return nil, fmt.Errorf("failed to list shop reviews: %w", err)
	}
	return rs, nil
}
