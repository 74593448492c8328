package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/models"
	"github.com/inklore/economy-service/internal/services"
	"github.com/stretchr/testify/assert"
)

// giftRequest builds a request with the giftID route parameter set.
func giftRequest(t *testing.T, target, giftID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("giftID", giftID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAcceptGiftHandler(t *testing.T) {
	receiverID := uuid.New()
	giftID := uuid.New()
	validToken := "valid-token"

	acceptedGift := &models.GiftDB{
		GiftID:     giftID,
		ReceiverID: receiverID,
		Kind:       models.GiftKindMoney,
		Status:     models.GiftStatusAccepted,
	}

	tests := []struct {
		name               string
		giftID             string
		setupMocks         func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:   "successful accept",
			giftID: giftID.String(),
			setupMocks: func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), giftID, receiverID).Return(acceptedGift, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "gift",
		},
		{
			name:   "invalid gift id",
			giftID: "not-a-uuid",
			setupMocks: func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "gift not found",
			giftID: giftID.String(),
			setupMocks: func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), giftID, receiverID).Return(nil, services.ErrGiftNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:   "addressed to another user",
			giftID: giftID.String(),
			setupMocks: func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), giftID, receiverID).Return(nil, services.ErrNotYourGift)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedKey:        "error",
		},
		{
			name:   "expired gift",
			giftID: giftID.String(),
			setupMocks: func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), giftID, receiverID).Return(nil, services.ErrGiftExpired)
			},
			expectedStatusCode: http.StatusGone,
			expectedKey:        "error",
		},
		{
			name:   "already resolved",
			giftID: giftID.String(),
			setupMocks: func(mockSvc *MockGiftResolver, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
				mockSvc.EXPECT().Accept(gomock.Any(), giftID, receiverID).Return(nil, services.ErrAlreadyResolved)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockGiftTokener(ctrl)
			mockSvc := NewMockGiftResolver(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			req := giftRequest(t, "/gifts/"+tt.giftID+"/accept", tt.giftID)
			rr := httptest.NewRecorder()

			handler := NewAcceptGiftHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestRejectGiftHandler(t *testing.T) {
	receiverID := uuid.New()
	giftID := uuid.New()
	validToken := "valid-token"

	rejectedGift := &models.GiftDB{
		GiftID:     giftID,
		ReceiverID: receiverID,
		Kind:       models.GiftKindMoney,
		Status:     models.GiftStatusRejected,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockGiftTokener(ctrl)
	mockSvc := NewMockGiftResolver(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: receiverID}, nil)
	mockSvc.EXPECT().Reject(gomock.Any(), giftID, receiverID).Return(rejectedGift, nil)

	req := giftRequest(t, "/gifts/"+giftID.String()+"/reject", giftID.String())
	rr := httptest.NewRecorder()

	NewRejectGiftHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResolveGiftResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Gift rejected", resp.Message)
	assert.Equal(t, models.GiftStatusRejected, resp.Gift.Status)
}
