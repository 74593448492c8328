package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestLedgerService_Adjust(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adjuster := NewMockAccountAdjuster(ctrl)
	reader := NewMockAccountReader(ctrl)
	svc := NewLedgerService(adjuster, reader, nil)

	// Successful credit
	adjuster.EXPECT().Adjust(ctx, accountID, int64(500)).Return(int64(1500), nil)
	balance, err := svc.Adjust(ctx, accountID, 500)
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), balance)

	// Debit rejected by the guard on an existing account
	adjuster.EXPECT().Adjust(ctx, accountID, int64(-2000)).Return(int64(0), sql.ErrNoRows)
	reader.EXPECT().Exists(ctx, accountID).Return(true, nil)
	_, err = svc.Adjust(ctx, accountID, -2000)
	assert.Equal(t, ErrInsufficientFunds, err)

	// Guard miss on a missing account
	adjuster.EXPECT().Adjust(ctx, accountID, int64(-100)).Return(int64(0), sql.ErrNoRows)
	reader.EXPECT().Exists(ctx, accountID).Return(false, nil)
	_, err = svc.Adjust(ctx, accountID, -100)
	assert.Equal(t, ErrAccountNotFound, err)

	// Unexpected repository error
	adjuster.EXPECT().Adjust(ctx, accountID, int64(10)).Return(int64(0), errors.New("db down"))
	_, err = svc.Adjust(ctx, accountID, 10)
	assert.EqualError(t, err, "db down")
}

func TestLedgerService_GetBalance(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(ctrl *gomock.Controller) AccountReader
		expected  int64
		expectErr error
	}{
		{
			name: "successful fetch",
			mockSetup: func(ctrl *gomock.Controller) AccountReader {
				reader := NewMockAccountReader(ctrl)
				reader.EXPECT().GetByID(ctx, accountID).Return(&models.AccountDB{
					AccountID: accountID,
					Balance:   4200,
				}, nil)
				return reader
			},
			expected: 4200,
		},
		{
			name: "missing account",
			mockSetup: func(ctrl *gomock.Controller) AccountReader {
				reader := NewMockAccountReader(ctrl)
				reader.EXPECT().GetByID(ctx, accountID).Return(nil, sql.ErrNoRows)
				return reader
			},
			expectErr: ErrAccountNotFound,
		},
		{
			name: "read error",
			mockSetup: func(ctrl *gomock.Controller) AccountReader {
				reader := NewMockAccountReader(ctrl)
				reader.EXPECT().GetByID(ctx, accountID).Return(nil, errors.New("db error"))
				return reader
			},
			expectErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewLedgerService(nil, tt.mockSetup(ctrl), nil)
			balance, err := svc.GetBalance(ctx, accountID)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestLedgerService_Topup(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adjuster := NewMockAccountAdjuster(ctrl)
	reader := NewMockAccountReader(ctrl)
	events := NewMockPublisher(ctrl)

	adjuster.EXPECT().Adjust(ctx, accountID, int64(1000)).Return(int64(1000), nil)
	events.EXPECT().Publish(ctx, gomock.AssignableToTypeOf(models.Event{})).Do(func(_ context.Context, event models.Event) {
		assert.Equal(t, models.EventTopup, event.Type)
		assert.Equal(t, accountID.String(), event.AccountID)
		assert.Equal(t, int64(1000), event.Amount)
	})

	svc := NewLedgerService(adjuster, reader, events)
	balance, err := svc.Topup(ctx, accountID, 1000)

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
}

func TestLedgerService_Topup_NoEventOnFailure(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adjuster := NewMockAccountAdjuster(ctrl)
	reader := NewMockAccountReader(ctrl)
	events := NewMockPublisher(ctrl)

	adjuster.EXPECT().Adjust(ctx, accountID, int64(100)).Return(int64(0), errors.New("db down"))

	svc := NewLedgerService(adjuster, reader, events)
	_, err := svc.Topup(ctx, accountID, 100)

	assert.Error(t, err)
}
