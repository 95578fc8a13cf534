package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dtroode/repairctl/internal/model"
)

func (c *Client) CreateQuote(ctx context.Context, form model.QuoteForm) (model.Quote, error) {
	var out model.Quote
	if err := c.doJSON(ctx, http.MethodPost, "/quotes", nil, form, &out); err != nil {
		return model.Quote{}, err
	}
	return out, nil
}

func (c *Client) AcceptQuote(ctx context.Context, quoteID int64) (model.Quote, error) {
	var out model.Quote
	if err := c.doJSON(ctx, http.MethodPost, "/quotes/"+strconv.FormatInt(quoteID, 10)+"/accept", nil, nil, &out); err != nil {
		return model.Quote{}, err
	}
	return out, nil
}

// RequestQuotes lists the quotes made on a repair request.
func (c *Client) RequestQuotes(ctx context.Context, requestID int64) ([]model.Quote, error) {
	var out []model.Quote
	if err := c.doJSON(ctx, http.MethodGet, "/quotes/request/"+strconv.FormatInt(requestID, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
