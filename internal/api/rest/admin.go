package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dtroode/repairctl/internal/model"
)

func (c *Client) Dashboard(ctx context.Context) (model.DashboardStatistics, error) {
	var out model.DashboardStatistics
	if err := c.doJSON(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &out); err != nil {
		return model.DashboardStatistics{}, err
	}
	return out, nil
}

func (c *Client) Users(ctx context.Context) ([]model.Profile, error) {
	var out []model.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UserDetails(ctx context.Context, userID int64) (model.Profile, error) {
	var out model.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/admin/users/"+strconv.FormatInt(userID, 10), nil, nil, &out); err != nil {
		return model.Profile{}, err
	}
	return out, nil
}

// UpdateUserStatus sends status and the optional reason as query parameters.
func (c *Client) UpdateUserStatus(ctx context.Context, userID int64, status model.UserStatus, reason string) (model.Profile, error) {
	var out model.Profile
	path := "/admin/users/" + strconv.FormatInt(userID, 10) + "/status"
	if err := c.doJSON(ctx, http.MethodPut, path, statusQuery(string(status), reason), nil, &out); err != nil {
		return model.Profile{}, err
	}
	return out, nil
}

func (c *Client) AdminResetPassword(ctx context.Context, userID int64) error {
	path := "/admin/users/" + strconv.FormatInt(userID, 10) + "/reset-password"
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, nil)
}

func (c *Client) AdminShops(ctx context.Context) ([]model.Shop, error) {
	var out []model.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/admin/shops", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminShop(ctx context.Context, shopID int64) (model.Shop, error) {
	var out model.Shop
	if err := c.doJSON(ctx, http.MethodGet, "/admin/shops/"+strconv.FormatInt(shopID, 10), nil, nil, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

func (c *Client) UpdateShopStatus(ctx context.Context, shopID int64, status model.ShopStatus, reason string) (model.Shop, error) {
	var out model.Shop
	path := "/admin/shops/" + strconv.FormatInt(shopID, 10) + "/status"
	if err := c.doJSON(ctx, http.MethodPut, path, statusQuery(string(status), reason), nil, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

func (c *Client) VerifyShop(ctx context.Context, shopID int64) (model.Shop, error) {
	var out model.Shop
	path := "/admin/shops/" + strconv.FormatInt(shopID, 10) + "/verify"
	if err := c.doJSON(ctx, http.MethodPut, path, nil, nil, &out); err != nil {
		return model.Shop{}, err
	}
	return out, nil
}

// AdminRepairRequests lists repair requests newest first. A zero Size uses
// the backend default.
func (c *Client) AdminRepairRequests(ctx context.Context, q model.PageQuery) (model.Page[model.RepairRequest], error) {
	query := url.Values{"sort": {"createdAt,desc"}}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	query.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		query.Set("size", strconv.Itoa(q.Size))
	}

	var out model.Page[model.RepairRequest]
	if err := c.doJSON(ctx, http.MethodGet, "/admin/repair-requests", query, nil, &out); err != nil {
		return model.Page[model.RepairRequest]{}, err
	}
	return out, nil
}

func (c *Client) AdminRepairRequest(ctx context.Context, requestID int64) (model.RepairRequest, error) {
	var out model.RepairRequest
	path := "/admin/repair-requests/" + strconv.FormatInt(requestID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return model.RepairRequest{}, err
	}
	return out, nil
}

func statusQuery(status, reason string) url.Values {
	q := url.Values{"status": {status}}
	if reason != "" {
		q.Set("reason", reason)
	}
	return q
}
