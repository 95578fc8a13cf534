package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

type Repair struct {
	backend  RepairBackend
	notifier model.Notifier
	logger   *logger.Logger
}

func NewRepair(backend RepairBackend, notifier model.Notifier, logger *logger.Logger) *Repair {
	return &Repair{backend: backend, notifier: notifier, logger: logger}
}

// Submit sends the form with every READY image of batch. Images that failed
// validation or compression are left out. The batch is released after a
// successful submission; on failure it is kept so the user can retry.
func (s *Repair) Submit(ctx context.Context, form model.RepairRequestForm, batch ImageBatch) (model.RepairRequest, error) {
	if err := validate(form); err != nil {
		return model.RepairRequest{}, err
	}

	if err := batch.Wait(ctx); err != nil {
		return model.RepairRequest{}, fmt.Errorf("failed to wait for images: %w", err)
	}
	payloads := batch.CollectPayloads()

	s.logger.Debug("Repair service: submitting repair request",
		"brand", form.DeviceBrand,
		"model", form.DeviceModel,
		"images", len(payloads))

	req, err := s.backend.CreateRepairRequest(ctx, form, payloads)
	if err != nil {
		s.logger.Error("Repair service: failed to submit repair request",
			"status", rest.StatusOf(err),
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to submit repair request"))
		return model.RepairRequest{}, fmt.Errorf("failed to create repair request: %w", err)
	}

	if err := batch.ReleaseAll(ctx); err != nil {
		s.logger.Warn("Repair service: failed to release image previews",
			"error", err.Error())
	}

	s.logger.Info("Repair service: repair request submitted",
		"request_id", req.ID,
		"images", len(payloads))
	s.notifier.Success("Repair request submitted successfully!")
	return req, nil
}

// List returns the repair requests visible to a user with the given role.
func (s *Repair) List(ctx context.Context, role model.Role) ([]model.RepairRequest, error) {
	var (
		out      []model.RepairRequest
		err      error
		errorMsg string
	)
	switch role {
	case model.RoleShopOwner:
		out, err = s.backend.ShopRequests(ctx)
		errorMsg = "Failed to retrieve shop repair requests"
	case model.RoleCustomer:
		out, err = s.backend.CustomerRequests(ctx)
		errorMsg = "Failed to retrieve your repair requests"
	default:
		return nil, fmt.Errorf("no repair request listing for role %s", role)
	}
	if err != nil {
		s.logger.Error("Repair service: failed to list repair requests",
			"role", role,
			"error", err.Error())
		s.notifier.Error(errorMsg)
		return nil, fmt.Errorf("failed to list repair requests: %w", err)
	}
	return out, nil
}

func (s *Repair) UpdateStatus(ctx context.Context, id int64, status model.RequestStatus) (model.RepairRequest, error) {
	req, err := s.backend.UpdateRequestStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("Repair service: failed to update status",
			"request_id", id,
			"status", status,
			"error", err.Error())
		s.notifier.Error("Failed to update request status")
		return model.RepairRequest{}, fmt.Errorf("failed to update request status: %w", err)
	}
	s.notifier.Success(fmt.Sprintf("Request status updated to %s", strings.ToLower(string(status))))
	return req, nil
}
