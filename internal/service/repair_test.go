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
	"github.com/dtroode/repairctl/internal/intake"
	"github.com/dtroode/repairctl/internal/mocks"
	"github.com/dtroode/repairctl/internal/model"
	"github.com/dtroode/repairctl/internal/testutil"
)

var repairForm = model.RepairRequestForm{
	DeviceBrand:        "Samsung",
	DeviceModel:        "Galaxy S21",
	IMEINumber:         "356938035643809",
	ProblemCategory:    model.ProblemScreenDamage,
	ProblemDescription: "Cracked after a drop",
}

func TestRepair_Submit(t *testing.T) {
	t.Parallel()
	backend := mocks.NewRepairBackend(t)
	notifier := mocks.NewNotifier(t)
	batch := mocks.NewImageBatch(t)
	svc := NewRepair(backend, notifier, testutil.MakeNoopLogger())

	payloads := []intake.Payload{
		{Name: "front.jpg", ContentType: "image/jpeg", Width: 1200, Height: 900, Data: []byte{0xff, 0xd8}},
	}

	batch.On("Wait", mock.Anything).Return(nil).Once()
	batch.On("CollectPayloads").Return(payloads).Once()
	backend.On("CreateRepairRequest", mock.Anything, repairForm, payloads).
		Return(model.RepairRequest{ID: 42, Status: model.StatusPending}, nil).Once()
	batch.On("ReleaseAll", mock.Anything).Return(nil).Once()
	notifier.On("Success", "Repair request submitted successfully!").Once()

	req, err := svc.Submit(context.Background(), repairForm, batch)
	require.NoError(t, err)
	assert.Equal(t, int64(42), req.ID)
}

func TestRepair_Submit_KeepsBatchOnFailure(t *testing.T) {
	tests := map[string]struct {
		err     error
		wantMsg string
	}{
		"backend message": {
			err:     &rest.Error{Status: http.StatusBadRequest, Message: "Too many images"},
			wantMsg: "Too many images",
		},
		"fallback": {
			err:     errors.New("connection reset"),
			wantMsg: "Failed to submit repair request",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewRepairBackend(t)
			notifier := mocks.NewNotifier(t)
			batch := mocks.NewImageBatch(t)
			svc := NewRepair(backend, notifier, testutil.MakeNoopLogger())

			batch.On("Wait", mock.Anything).Return(nil).Once()
			batch.On("CollectPayloads").Return([]intake.Payload(nil)).Once()
			backend.On("CreateRepairRequest", mock.Anything, repairForm, []intake.Payload(nil)).
				Return(model.RepairRequest{}, tt.err).Once()
			notifier.On("Error", tt.wantMsg).Once()

			_, err := svc.Submit(context.Background(), repairForm, batch)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			batch.AssertNotCalled(t, "ReleaseAll", mock.Anything)
		})
	}
}

func TestRepair_Submit_InvalidForm(t *testing.T) {
	t.Parallel()
	svc := NewRepair(mocks.NewRepairBackend(t), mocks.NewNotifier(t), testutil.MakeNoopLogger())
	batch := mocks.NewImageBatch(t)

	form := repairForm
	form.IMEINumber = "12345"

	_, err := svc.Submit(context.Background(), form, batch)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Contains(t, err.Error(), "imeiNumber")
}

func TestRepair_Submit_WaitCancelled(t *testing.T) {
	t.Parallel()
	svc := NewRepair(mocks.NewRepairBackend(t), mocks.NewNotifier(t), testutil.MakeNoopLogger())
	batch := mocks.NewImageBatch(t)

	batch.On("Wait", mock.Anything).Return(context.Canceled).Once()

	_, err := svc.Submit(context.Background(), repairForm, batch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepair_List(t *testing.T) {
	ctx := context.Background()
	requests := []model.RepairRequest{{ID: 1}, {ID: 2}}

	tests := map[string]struct {
		role    model.Role
		method  string
		err     error
		wantMsg string
		wantErr bool
	}{
		"customer": {
			role:   model.RoleCustomer,
			method: "CustomerRequests",
		},
		"shop owner": {
			role:   model.RoleShopOwner,
			method: "ShopRequests",
		},
		"customer failure": {
			role:    model.RoleCustomer,
			method:  "CustomerRequests",
			err:     errors.New("boom"),
			wantMsg: "Failed to retrieve your repair requests",
			wantErr: true,
		},
		"shop owner failure": {
			role:    model.RoleShopOwner,
			method:  "ShopRequests",
			err:     errors.New("boom"),
			wantMsg: "Failed to retrieve shop repair requests",
			wantErr: true,
		},
		"admin has no listing": {
			role:    model.RoleAdmin,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			backend := mocks.NewRepairBackend(t)
			notifier := mocks.NewNotifier(t)
			svc := NewRepair(backend, notifier, testutil.MakeNoopLogger())

			if tt.method != "" {
				if tt.err != nil {
					backend.On(tt.method, mock.Anything).Return(nil, tt.err).Once()
					notifier.On("Error", tt.wantMsg).Once()
				} else {
					backend.On(tt.method, mock.Anything).Return(requests, nil).Once()
				}
			}

			got, err := svc.List(ctx, tt.role)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, requests, got)
		})
	}
}

func TestRepair_UpdateStatus(t *testing.T) {
	t.Parallel()
	backend := mocks.NewRepairBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := NewRepair(backend, notifier, testutil.MakeNoopLogger())

	backend.On("UpdateRequestStatus", mock.Anything, int64(5), model.StatusInProgress).
		Return(model.RepairRequest{ID: 5, Status: model.StatusInProgress}, nil).Once()
	notifier.On("Success", "Request status updated to in_progress").Once()

	req, err := svc.UpdateStatus(context.Background(), 5, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, req.Status)
}

func TestRepair_UpdateStatus_Failure(t *testing.T) {
	t.Parallel()
	backend := mocks.NewRepairBackend(t)
	notifier := mocks.NewNotifier(t)
	svc := NewRepair(backend, notifier, testutil.MakeNoopLogger())

	backend.On("UpdateRequestStatus", mock.Anything, int64(5), model.StatusCompleted).
		Return(model.RepairRequest{}, &rest.Error{Status: http.StatusForbidden}).Once()
	notifier.On("Error", "Failed to update request status").Once()

	_, err := svc.UpdateStatus(context.Background(), 5, model.StatusCompleted)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, rest.StatusOf(err))
}
