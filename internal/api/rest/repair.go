package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/dtroode/repairctl/internal/intake"
	"github.com/dtroode/repairctl/internal/model"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// CreateRepairRequest submits form as the "request" part and each payload
// as an "images" part of one multipart request.
func (c *Client) CreateRepairRequest(ctx context.Context, form model.RepairRequestForm, images []intake.Payload) (model.RepairRequest, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	reqHeader := make(textproto.MIMEHeader)
	reqHeader.Set("Content-Disposition", `form-data; name="request"`)
	reqHeader.Set("Content-Type", "application/json")
	part, err := mw.CreatePart(reqHeader)
	if err != nil {
		return model.RepairRequest{}, fmt.Errorf("failed to create request part: %w", err)
	}
	if err := json.NewEncoder(part).Encode(form); err != nil {
		return model.RepairRequest{}, fmt.Errorf("failed to marshal request part: %w", err)
	}

	for _, img := range images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename="%s"`, quoteEscaper.Replace(img.Name)))
		h.Set("Content-Type", img.ContentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			return model.RepairRequest{}, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return model.RepairRequest{}, fmt.Errorf("failed to write image part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return model.RepairRequest{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/repair-requests", nil), &buf)
	if err != nil {
		return model.RepairRequest{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out model.RepairRequest
	if err := c.send(req, &out); err != nil {
		return model.RepairRequest{}, err
	}
	return out, nil
}

// CustomerRequests lists the repair requests of the logged in customer.
func (c *Client) CustomerRequests(ctx context.Context) ([]model.RepairRequest, error) {
	var out []model.RepairRequest
	if err := c.doJSON(ctx, http.MethodGet, "/repair-requests/customer", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShopRequests lists the repair requests visible to the logged in shop owner.
func (c *Client) ShopRequests(ctx context.Context) ([]model.RepairRequest, error) {
	var out []model.RepairRequest
	if err := c.doJSON(ctx, http.MethodGet, "/repair-requests/shop", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) (model.RepairRequest, error) {
	var out model.RepairRequest
	path := "/repair-requests/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.doJSON(ctx, http.MethodPut, path, url.Values{"status": {string(status)}}, nil, &out); err != nil {
		return model.RepairRequest{}, err
	}
	return out, nil
}
