package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListIncomingGiftsHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	amount := int64(250)
	gifts := []models.GiftDB{
		{GiftID: uuid.New(), ReceiverID: userID, Kind: models.GiftKindMoney, Amount: &amount, Status: models.GiftStatusPending},
	}

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockGiftLister, mockTokener *MockGiftTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful listing",
			setupMocks: func(mockSvc *MockGiftLister, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListIncoming(gomock.Any(), userID).Return(gifts, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "gifts",
		},
		{
			name: "unauthorized",
			setupMocks: func(mockSvc *MockGiftLister, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			setupMocks: func(mockSvc *MockGiftLister, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().ListIncoming(gomock.Any(), userID).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockGiftTokener(ctrl)
			mockSvc := NewMockGiftLister(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/gifts/incoming", nil)
			rr := httptest.NewRecorder()

			handler := NewListIncomingGiftsHandler(mockSvc, mockTokener)
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

func TestListOutgoingGiftsHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockGiftTokener(ctrl)
	mockSvc := NewMockGiftLister(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
	mockSvc.EXPECT().ListOutgoing(gomock.Any(), userID).Return([]models.GiftDB{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/gifts/outgoing", nil)
	rr := httptest.NewRecorder()

	NewListOutgoingGiftsHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp GiftListResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Empty(t, resp.Gifts)
}
