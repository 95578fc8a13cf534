package service

import (
	"context"
	"fmt"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/logger"
	"github.com/dtroode/repairctl/internal/model"
)

type Shop struct {
	backend  ShopBackend
	notifier model.Notifier
	logger   *logger.Logger
}

func NewShop(backend ShopBackend, notifier model.Notifier, logger *logger.Logger) *Shop {
	return &Shop{backend: backend, notifier: notifier, logger: logger}
}

func (s *Shop) List(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.backend.Shops(ctx)
	if err != nil {
		s.logger.Error("Shop service: failed to list shops",
			"error", err.Error())
		s.notifier.Error("Failed to retrieve shops")
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

func (s *Shop) Get(ctx context.Context, shopID int64) (model.Shop, error) {
	shop, err := s.backend.Shop(ctx, shopID)
	if err != nil {
		s.logger.Error("Shop service: failed to get shop",
			"shop_id", shopID,
			"error", err.Error())
		s.notifier.Error("Failed to retrieve shop details")
		return model.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}
	return shop, nil
}

// Mine returns the shop registered by the given owner.
func (s *Shop) Mine(ctx context.Context, ownerID int64) (model.Shop, error) {
	shop, err := s.backend.OwnerShop(ctx, ownerID)
	if err != nil {
		s.logger.Error("Shop service: failed to get owner shop",
			"owner_id", ownerID,
			"error", err.Error())
		s.notifier.Error("Failed to retrieve your shop details")
		return model.Shop{}, fmt.Errorf("failed to get owner shop: %w", err)
	}
	return shop, nil
}

func (s *Shop) Register(ctx context.Context, form model.ShopForm) (model.Shop, error) {
	if err := validate(form); err != nil {
		return model.Shop{}, err
	}
	shop, err := s.backend.RegisterShop(ctx, form)
	if err != nil {
		s.logger.Error("Shop service: failed to register shop",
			"shop_name", form.ShopName,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Shop registration failed"))
		return model.Shop{}, fmt.Errorf("failed to register shop: %w", err)
	}
	s.logger.Info("Shop service: shop registered",
		"shop_id", shop.ID)
	s.notifier.Success("Shop registered successfully!")
	return shop, nil
}

func (s *Shop) Update(ctx context.Context, shopID int64, form model.ShopForm) (model.Shop, error) {
	if err := validate(form); err != nil {
		return model.Shop{}, err
	}
	shop, err := s.backend.UpdateShop(ctx, shopID, form)
	if err != nil {
		s.logger.Error("Shop service: failed to update shop",
			"shop_id", shopID,
			"error", err.Error())
		s.notifier.Error(rest.MessageOr(err, "Failed to update shop details"))
		return model.Shop{}, fmt.Errorf("failed to update shop: %w", err)
	}
	s.notifier.Success("Shop details updated successfully!")
	return shop, nil
}
