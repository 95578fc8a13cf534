package service

import (
	"context"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/intake"
	"github.com/dtroode/repairctl/internal/model"
)

var (
	_ AuthBackend   = (*rest.Client)(nil)
	_ RepairBackend = (*rest.Client)(nil)
	_ QuoteBackend  = (*rest.Client)(nil)
	_ ReviewBackend = (*rest.Client)(nil)
	_ AdminBackend  = (*rest.Client)(nil)
	_ ShopBackend   = (*rest.Client)(nil)
	_ ImageBatch    = (*intake.Batch)(nil)
)

// AuthBackend is the authentication part of the backend API.
type AuthBackend interface {
	Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error)
	Register(ctx context.Context, reg model.Registration) (model.Profile, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, reset model.PasswordReset) error
	ChangePassword(ctx context.Context, change model.PasswordChange) error
}

// RepairBackend is the repair request part of the backend API.
type RepairBackend interface {
	CreateRepairRequest(ctx context.Context, form model.RepairRequestForm, images []intake.Payload) (model.RepairRequest, error)
	CustomerRequests(ctx context.Context) ([]model.RepairRequest, error)
	ShopRequests(ctx context.Context) ([]model.RepairRequest, error)
	UpdateRequestStatus(ctx context.Context, id int64, status model.RequestStatus) (model.RepairRequest, error)
}

// QuoteBackend is the quote part of the backend API.
type QuoteBackend interface {
	CreateQuote(ctx context.Context, form model.QuoteForm) (model.Quote, error)
	AcceptQuote(ctx context.Context, quoteID int64) (model.Quote, error)
	RequestQuotes(ctx context.Context, requestID int64) ([]model.Quote, error)
}

// ReviewBackend is the review part of the backend API.
type ReviewBackend interface {
	SubmitReview(ctx context.Context, form model.ReviewForm) (model.Review, error)
	ShopReviews(ctx context.Context, shopID int64) ([]model.Review, error)
	HasReview(ctx context.Context, requestID int64) (bool, error)
}

// AdminBackend is the administration part of the backend API.
type AdminBackend interface {
	Dashboard(ctx context.Context) (model.DashboardStatistics, error)
	Users(ctx context.Context) ([]model.Profile, error)
	UserDetails(ctx context.Context, userID int64) (model.Profile, error)
	UpdateUserStatus(ctx context.Context, userID int64, status model.UserStatus, reason string) (model.Profile, error)
	AdminResetPassword(ctx context.Context, userID int64) error
	AdminShops(ctx context.Context) ([]model.Shop, error)
	AdminShop(ctx context.Context, shopID int64) (model.Shop, error)
	UpdateShopStatus(ctx context.Context, shopID int64, status model.ShopStatus, reason string) (model.Shop, error)
	VerifyShop(ctx context.Context, shopID int64) (model.Shop, error)
	AdminRepairRequests(ctx context.Context, q model.PageQuery) (model.Page[model.RepairRequest], error)
	AdminRepairRequest(ctx context.Context, requestID int64) (model.RepairRequest, error)
}

// ShopBackend is the shop directory part of the backend API.
type ShopBackend interface {
	Shops(ctx context.Context) ([]model.Shop, error)
	Shop(ctx context.Context, shopID int64) (model.Shop, error)
	OwnerShop(ctx context.Context, ownerID int64) (model.Shop, error)
	RegisterShop(ctx context.Context, form model.ShopForm) (model.Shop, error)
	UpdateShop(ctx context.Context, shopID int64, form model.ShopForm) (model.Shop, error)
}

// SessionManager is the part of session.Manager the workflows use.
type SessionManager interface {
	Login(ctx context.Context, profile model.Profile, token string, remember bool) error
	Logout(ctx context.Context)
	CurrentUser() *model.Profile
}

// ImageBatch is the part of intake.Batch a submission uses.
type ImageBatch interface {
	Wait(ctx context.Context) error
	CollectPayloads() []intake.Payload
	ReleaseAll(ctx context.Context) error
}
