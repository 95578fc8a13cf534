package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dtroode/repairctl/internal/model"
)

func (c *Client) Shops(ctx context.Context) ([]model.Shop, error) {
	var out []model.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/shops", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Shop(ctx context.Context, shopID int64) (model.Shop, error) {
	var out model.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/shops/"+strconv.FormatInt(shopID, 10), nil, nil, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

// OwnerShop returns the shop registered by the given owner.
func (c *Client) OwnerShop(ctx context.Context, ownerID int64) (model.Shop, error) {
	var out model.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/shops/owner/"+strconv.FormatInt(ownerID, 10), nil, nil, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

func (c *Client) RegisterShop(ctx context.Context, form model.ShopForm) (model.Shop, error) {
	var out model.Shop
	if err := c.doJSON(ctx, http.MethodPost, "/shops", nil, form, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

func (c *Client) UpdateShop(ctx context.Context, shopID int64, form model.ShopForm) (model.Shop, error) {
	var out model.Shop
	if err := c.doJSON(ctx, http.MethodPut, "/shops/"+strconv.FormatInt(shopID, 10), nil, form, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}
