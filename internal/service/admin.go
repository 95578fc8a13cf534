package service

import (
	"context"
	"fmt"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

type Admin struct {
	backend  AdminBackend
	notifier model.Notifier
	logger   *logger.Logger
}

func NewAdmin(backend AdminBackend, notifier model.Notifier, logger *logger.Logger) *Admin {
	return &Admin{backend: backend, notifier: notifier, logger: logger}
}

func (s *Admin) Dashboard(ctx context.Context) (model.DashboardStatistics, error) {
	stats, err := s.backend.Dashboard(ctx)
	if err != nil {
		s.logger.Error("Admin service: failed to load dashboard",
			"error", err.Error())
		s.notifier.Error("Failed to load dashboard statistics")
		return model.DashboardStatistics{}, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return stats, nil
}

func (s *Admin) Users(ctx context.Context) ([]model.Profile, error) {
	users, err := s.backend.Users(ctx)
	if err != nil {
		s.logger.Error("Admin service: failed to load users",
			"error", err.Error())
		s.notifier.Error("Failed to load users")
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (s *Admin) User(ctx context.Context, userID int64) (model.Profile, error) {
	u, err := s.backend.UserDetails(ctx, userID)
	if err != nil {
		s.logger.Error("Admin service: failed to load user",
			"user_id", userID,
			"error", err.Error())
		s.notifier.Error("Failed to load user details")
		return model.Profile{}, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}

func (s *Admin) UpdateUserStatus(ctx context.Context, userID int64, status model.UserStatus, reason string) (model.Profile, error) {
	u, err := s.backend.UpdateUserStatus(ctx, userID, status, reason)
	if err != nil {
		s.logger.Error("Admin service: failed to update user status",
			"user_id", userID,
			"status", status,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to update user status"))
		return model.Profile{}, fmt.Errorf("failed to update user status: %w", err)
	}
	s.logger.Info("Admin service: user status updated",
		"user_id", userID,
		"status", status)
	s.notifier.Success("User status updated successfully!")
	return u, nil
}

// ResetUserPassword makes the backend email a reset link to the user.
func (s *Admin) ResetUserPassword(ctx context.Context, userID int64) error {
	if err := s.backend.AdminResetPassword(ctx, userID); err != nil {
		s.logger.Error("Admin service: failed to reset user password",
			"user_id", userID,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to send password reset email"))
		return fmt.Errorf("failed to reset user password: %w", err)
	}
	s.notifier.Success("Password reset email sent successfully!")
	return nil
}

func (s *Admin) Shops(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.backend.AdminShops(ctx)
	if err != nil {
		s.logger.Error("Admin service: failed to load shops",
			"error", err.Error())
		s.notifier.Error("Failed to load shops")
		return nil, fmt.Errorf("failed to load shops: %w", err)
	}
	return shops, nil
}

func (s *Admin) Shop(ctx context.Context, shopID int64) (model.Shop, error) {
	shop, err := s.backend.AdminShop(ctx, shopID)
	if err != nil {
		s.logger.Error("Admin service: failed to load shop",
			"shop_id", shopID,
			"error", err.Error())
		s.notifier.Error("Failed to load shop details")
		return model.Shop{}, fmt.Errorf("failed to load shop: %w", err)
	}
	return shop, nil
}

func (s *Admin) UpdateShopStatus(ctx context.Context, shopID int64, status model.ShopStatus, reason string) (model.Shop, error) {
	shop, err := s.backend.UpdateShopStatus(ctx, shopID, status, reason)
	if err != nil {
		s.logger.Error("Admin service: failed to update shop status",
			"shop_id", shopID,
			"status", status,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to update shop status"))
		return model.Shop{}, fmt.Errorf("failed to update shop status: %w", err)
	}
	s.logger.Info("Admin service: shop status updated",
		"shop_id", shopID,
		"status", status)
	s.notifier.Success("Shop status updated successfully!")
	return shop, nil
}

func (s *Admin) VerifyShop(ctx context.Context, shopID int64) (model.Shop, error) {
	shop, err := s.backend.VerifyShop(ctx, shopID)
	if err != nil {
		s.logger.Error("Admin service: failed to verify shop",
			"shop_id", shopID,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to verify shop"))
		return model.Shop{}, fmt.Errorf("failed to verify shop: %w", err)
	}
	s.notifier.Success("Shop verified successfully!")
	return shop, nil
}

// RepairRequests pages through every repair request on the platform. A
// failure is only logged; the caller decides how to report it.
func (s *Admin) RepairRequests(ctx context.Context, q model.PageQuery) (model.Page[model.RepairRequest], error) {
	page, err := s.backend.AdminRepairRequests(ctx, q)
	if err != nil {
		s.logger.Error("Admin service: failed to load repair requests",
			"status", q.Status,
			"page", q.Page,
			"error", err.Error())
		return model.Page[model.RepairRequest]{}, fmt.Errorf("failed to load repair requests: %w", err)
	}
	return page, nil
}

func (s *Admin) RepairRequest(ctx context.Context, requestID int64) (model.RepairRequest, error) {
	req, err := s.backend.AdminRepairRequest(ctx, requestID)
	if err != nil {
		s.logger.Error("Admin service: failed to load repair request",
			"request_id", requestID,
			"error", err.Error())
		s.notifier.Error("Failed to load repair request details")
		return model.RepairRequest{}, fmt.Errorf("failed to load repair request: %w", err)
	}
	return req, nil
}
