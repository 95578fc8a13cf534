package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dtroode/repairctl/internal/model"
)

func (c *Client) SubmitReview(ctx context.Context, form model.ReviewForm) (model.Review, error) {
	var out model.Review
	if err := c.doJSON(ctx, http.MethodPost, "/reviews", nil, form, &out); err != nil {
		return model.Review{}, err
	}
	return out, nil
}

func (c *Client) ShopReviews(ctx context.Context, shopID int64) ([]model.Review, error) {
	var out []model.Review
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/shop/"+strconv.FormatInt(shopID, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HasReview reports whether the repair request was already reviewed.
func (c *Client) HasReview(ctx context.Context, requestID int64) (bool, error) {
	var out struct {
		HasReviewed bool `json:"hasReviewed"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/reviews/check/"+strconv.FormatInt(requestID, 10), nil, nil, &out); err != nil {
		return false, err
	}
	return out.HasReviewed, nil
}
