package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/repairctl/internal/api/rest"
	"github.com/dtroode/repairctl/internal/mocks"
	"github.com/dtroode/repairctl/internal/model"
	"github.com/dtroode/repairctl/internal/testutil"
)

func TestQuote_Create(t *testing.T) {
	form := model.QuoteForm{RepairRequestID: 3, EstimatedCost: 129.99, Description: "Screen replacement", EstimatedDays: 2}

	tests := map[string]struct {
		err     error
		wantMsg string
		method  string
	}{
		"success": {
			wantMsg: "Quote created successfully!",
			method:  "Success",
		},
		"backend message": {
			err:     &rest.Error{Status: http.StatusConflict, Message: "Quote already exists"},
			wantMsg: "Quote already exists",
			method:  "Error",
		},
		"fallback": {
			err:     errors.New("boom"),
			wantMsg: "Failed to create quote",
			method:  "Error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewQuoteBackend(t)
			notifier := mocks.NewNotifier(t)
			svc := NewQuote(backend, notifier, testutil.MakeNoopLogger())

			backend.On("CreateQuote", mock.Anything, form).Return(model.Quote{ID: 9}, tt.err).Once()
			notifier.On(tt.method, tt.wantMsg).Once()

			q, err := svc.Create(context.Background(), form)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(9), q.ID)
		})
	}
}

func TestQuote_Create_InvalidForm(t *testing.T) {
	t.Parallel()
	svc := NewQuote(mocks.NewQuoteBackend(t), mocks.NewNotifier(t), testutil.MakeNoopLogger())

	_, err := svc.Create(context.Background(), model.QuoteForm{RepairRequestID: 3, Description: "x", EstimatedDays: 1})
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestQuote_AcceptAndList(t *testing.T) {
	t.Parallel()
	backend := mocks.NewQuoteBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := NewQuote(backend, notifier, testutil.MakeNoopLogger())
	ctx := context.Background()

	backend.On("AcceptQuote", mock.Anything, int64(9)).Return(model.Quote{ID: 9, Status: "ACCEPTED"}, nil).Once()
	notifier.On("Success", "Quote accepted successfully!").Once()
	backend.On("RequestQuotes", mock.Anything, int64(3)).Return(nil, errors.New("boom")).Once()
	notifier.On("Error", "Failed to retrieve quotes").Once()

	q, err := svc.Accept(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", q.Status)

	_, err = svc.List(ctx, 3)
	require.Error(t, err)
}

func TestReview_Submit(t *testing.T) {
	form := model.ReviewForm{RepairRequestID: 4, Rating: 5, Comment: "Fast and friendly"}
	boom := errors.New("boom")

	tests := map[string]struct {
		reviewed  bool
		checkErr  error
		submitErr error
		notify    string
		msg       string
		wantErr   error
	}{
		"submitted": {
			notify: "Success",
			msg:    "Review submitted successfully!",
		},
		"already reviewed": {
			reviewed: true,
			notify:   "Info",
			msg:      "You have already reviewed this repair",
			wantErr:  ErrAlreadyReviewed,
		},
		"check failure": {
			checkErr: boom,
			notify:   "Error",
			msg:      "Failed to check review status",
			wantErr:  boom,
		},
		"submit failure": {
			submitErr: &rest.Error{Status: http.StatusBadRequest, Message: "Repair not completed"},
			notify:    "Error",
			msg:       "Repair not completed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewReviewBackend(t)
			notifier := mocks.NewNotifier(t)
			svc := NewReview(backend, notifier, testutil.MakeNoopLogger())

			backend.On("HasReview", mock.Anything, int64(4)).Return(tt.reviewed, tt.checkErr).Once()
			if !tt.reviewed && tt.checkErr == nil {
				backend.On("SubmitReview", mock.Anything, form).Return(model.Review{ID: 1, Rating: 5}, tt.submitErr).Once()
			}
			notifier.On(tt.notify, tt.msg).Once()

			_, err := svc.Submit(context.Background(), form)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.submitErr != nil:
				assert.ErrorIs(t, err, tt.submitErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestReview_Submit_InvalidRating(t *testing.T) {
	t.Parallel()
	svc := NewReview(mocks.NewReviewBackend(t), mocks.NewNotifier(t), testutil.MakeNoopLogger())

	_, err := svc.Submit(context.Background(), model.ReviewForm{RepairRequestID: 4, Rating: 6, Comment: "ok"})
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func TestReview_ShopReviews(t *testing.T) {
	t.Parallel()
	backend := mocks.NewReviewBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := NewReview(backend, notifier, testutil.MakeNoopLogger())

	backend.On("ShopReviews", mock.Anything, int64(2)).Return([]model.Review{{ID: 1}}, nil).Once()
	backend.On("ShopReviews", mock.Anything, int64(3)).Return(nil, errors.New("boom")).Once()
	notifier.On("Error", "Failed to retrieve shop reviews").Once()

	rs, err := svc.ShopReviews(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, rs, 1)

	_, err = svc.ShopReviews(context.Background(), 3)
	require.Error(t, err)
}

func TestAdmin(t *testing.T) {
	t.Parallel()
	backend := mocks.NewAdminBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := NewAdmin(backend, notifier, testutil.MakeNoopLogger())
	ctx := context.Background()

	stats := model.DashboardStatistics{}
	stats.UserStats.Total = 12

	backend.On("Dashboard", mock.Anything).Return(stats, nil).Once()
	backend.On("Users", mock.Anything).Return(nil, &rest.Error{Status: http.StatusForbidden}).Once()
	notifier.On("Error", "Failed to load users").Once()

	got, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.UserStats.Total)

	_, err = svc.Users(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, rest.StatusOf(err))
}

func TestAdmin_Moderation(t *testing.T) {
	conflict := &rest.Error{Status: http.StatusConflict, Message: "Shop is already verified"}
	boom := errors.New("boom")

	tests := map[string]struct {
		setup  func(b *mocks.AdminBackend)
		call   func(ctx context.Context, svc *Admin) error
		method string
		msg    string
		err    error
	}{
		"update user status": {
			setup: func(b *mocks.AdminBackend) {
				b.On("UpdateUserStatus", mock.Anything, int64(7), model.UserSuspended, "spam").
					Return(model.Profile{ID: 7}, nil).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.UpdateUserStatus(ctx, 7, model.UserSuspended, "spam")
				return err
			},
			method: "Success",
			msg:    "User status updated successfully!",
		},
		"update user status fallback": {
			setup: func(b *mocks.AdminBackend) {
				b.On("UpdateUserStatus", mock.Anything, int64(7), model.UserBlocked, "").
					Return(model.Profile{}, boom).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.UpdateUserStatus(ctx, 7, model.UserBlocked, "")
				return err
			},
			method: "Error",
			msg:    "Failed to update user status",
			err:    boom,
		},
		"reset user password": {
			setup: func(b *mocks.AdminBackend) {
				b.On("AdminResetPassword", mock.Anything, int64(7)).Return(nil).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				return svc.ResetUserPassword(ctx, 7)
			},
			method: "Success",
			msg:    "Password reset email sent successfully!",
		},
		"update shop status": {
			setup: func(b *mocks.AdminBackend) {
				b.On("UpdateShopStatus", mock.Anything, int64(3), model.ShopDeactivated, "fake address").
					Return(model.Shop{ID: 3, Status: model.ShopDeactivated}, nil).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.UpdateShopStatus(ctx, 3, model.ShopDeactivated, "fake address")
				return err
			},
			method: "Success",
			msg:    "Shop status updated successfully!",
		},
		"verify shop": {
			setup: func(b *mocks.AdminBackend) {
				b.On("VerifyShop", mock.Anything, int64(3)).Return(model.Shop{ID: 3, Verified: true}, nil).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.VerifyShop(ctx, 3)
				return err
			},
			method: "Success",
			msg:    "Shop verified successfully!",
		},
		"verify shop backend message": {
			setup: func(b *mocks.AdminBackend) {
				b.On("VerifyShop", mock.Anything, int64(3)).Return(model.Shop{}, conflict).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.VerifyShop(ctx, 3)
				return err
			},
			method: "Error",
			msg:    "Shop is already verified",
			err:    conflict,
		},
		"shops": {
			setup: func(b *mocks.AdminBackend) {
				b.On("AdminShops", mock.Anything).Return(nil, boom).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.Shops(ctx)
				return err
			},
			method: "Error",
			msg:    "Failed to load shops",
			err:    boom,
		},
		"shop details": {
			setup: func(b *mocks.AdminBackend) {
				b.On("AdminShop", mock.Anything, int64(3)).Return(model.Shop{}, boom).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.Shop(ctx, 3)
				return err
			},
			method: "Error",
			msg:    "Failed to load shop details",
			err:    boom,
		},
		"user details": {
			setup: func(b *mocks.AdminBackend) {
				b.On("UserDetails", mock.Anything, int64(7)).Return(model.Profile{}, boom).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.User(ctx, 7)
				return err
			},
			method: "Error",
			msg:    "Failed to load user details",
			err:    boom,
		},
		"repair request details": {
			setup: func(b *mocks.AdminBackend) {
				b.On("AdminRepairRequest", mock.Anything, int64(11)).Return(model.RepairRequest{}, boom).Once()
			},
			call: func(ctx context.Context, svc *Admin) error {
				_, err := svc.RepairRequest(ctx, 11)
				return err
			},
			method: "Error",
			msg:    "Failed to load repair request details",
			err:    boom,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewAdminBackend(t)
			notifier := mocks.NewNotifier(t)
			svc := NewAdmin(backend, notifier, testutil.MakeNoopLogger())

			tt.setup(backend)
			notifier.On(tt.method, tt.msg).Once()

			err := tt.call(context.Background(), svc)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdmin_RepairRequests(t *testing.T) {
	t.Parallel()
	backend := mocks.NewAdminBackend(t)
	svc := NewAdmin(backend, mocks.NewNotifier(t), testutil.MakeNoopLogger())
	ctx := context.Background()

	q := model.PageQuery{Status: model.StatusPending, Page: 1, Size: 5}
	backend.On("AdminRepairRequests", mock.Anything, q).Return(model.Page[model.RepairRequest]{
		Content:       []model.RepairRequest{{ID: 6}},
		PageNumber:    1,
		TotalElements: 6,
		TotalPages:    2,
		Last:          true,
	}, nil).Once()
	backend.On("AdminRepairRequests", mock.Anything, model.PageQuery{}).
		Return(model.Page[model.RepairRequest]{}, errors.New("boom")).Once()

	page, err := svc.RepairRequests(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(6), page.Content[0].ID)
	assert.True(t, page.Last)

	// Listing failures are logged only.
	_, err = svc.RepairRequests(ctx, model.PageQuery{})
	require.Error(t, err)
}

func TestShop_Register(t *testing.T) {
	form := model.ShopForm{ShopName: "Fix-It", Address: "1 Main St", Services: []string{"Screen"}}

	tests := map[string]struct {
		err     error
		method  string
		wantMsg string
	}{
		"success": {
			method:  "Success",
			wantMsg: "Shop registered successfully!",
		},
		"backend message": {
			err:     &rest.Error{Status: http.StatusConflict, Message: "You already own a shop"},
			method:  "Error",
			wantMsg: "You already own a shop",
		},
		"fallback": {
			err:     errors.New("boom"),
			method:  "Error",
			wantMsg: "Shop registration failed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewShopBackend(t)
			notifier := mocks.NewNotifier(t)
			svc := NewShop(backend, notifier, testutil.MakeNoopLogger())

			backend.On("RegisterShop", mock.Anything, form).Return(model.Shop{ID: 4, ShopName: "Fix-It"}, tt.err).Once()
			notifier.On(tt.method, tt.wantMsg).Once()

			shop, err := svc.Register(context.Background(), form)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), shop.ID)
		})
	}
}

func TestShop_InvalidForm(t *testing.T) {
	t.Parallel()
	svc := NewShop(mocks.NewShopBackend(t), mocks.NewNotifier(t), testutil.MakeNoopLogger())
	lat := 123.0

	tests := map[string]model.ShopForm{
		"missing name":    {Address: "1 Main St"},
		"missing address": {ShopName: "Fix-It"},
		"bad latitude":    {ShopName: "Fix-It", Address: "1 Main St", Latitude: &lat},
		"bad photo url":   {ShopName: "Fix-It", Address: "1 Main St", PhotoURLs: []string{"not a url"}},
	}
	for name, form := range tests {
		_, err := svc.Register(context.Background(), form)
		assert.ErrorIs(t, err, ErrInvalidForm, name)
		_, err = svc.Update(context.Background(), 4, form)
		assert.ErrorIs(t, err, ErrInvalidForm, name)
	}
}

func TestShop_Lookups(t *testing.T) {
	t.Parallel()
	backend := mocks.NewShopBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := NewShop(backend, notifier, testutil.MakeNoopLogger())
	ctx := context.Background()
	boom := errors.New("boom")

	backend.On("Shops", mock.Anything).Return([]model.Shop{{ID: 1}, {ID: 2}}, nil).Once()
	backend.On("Shop", mock.Anything, int64(9)).Return(model.Shop{}, boom).Once()
	notifier.On("Error", "Failed to retrieve shop details").Once()
	backend.On("OwnerShop", mock.Anything, int64(5)).Return(model.Shop{}, boom).Once()
	notifier.On("Error", "Failed to retrieve your shop details").Once()
	form := model.ShopForm{ShopName: "Fix-It", Address: "2 Main St"}
	backend.On("UpdateShop", mock.Anything, int64(4), form).Return(model.Shop{ID: 4, Address: "2 Main St"}, nil).Once()
	notifier.On("Success", "Shop details updated successfully!").Once()

	shops, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shops, 2)

	_, err = svc.Get(ctx, 9)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Mine(ctx, 5)
	assert.ErrorIs(t, err, boom)

	shop, err := svc.Update(ctx, 4, form)
	require.NoError(t, err)
	assert.Equal(t, "2 Main St", shop.Address)
}
