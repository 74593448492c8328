package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/models"
	"github.com/inklore/economy-service/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSendGiftHandler(t *testing.T) {
	senderID := uuid.New()
	receiverID := uuid.New()
	validToken := "valid-token"

	amount := int64(500)
	sentGift := &models.GiftDB{
		GiftID:     uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Kind:       models.GiftKindMoney,
		Amount:     &amount,
		Status:     models.GiftStatusPending,
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful money gift",
			requestBody: SendGiftRequest{
				ReceiverID: receiverID,
				Kind:       models.GiftKindMoney,
				Amount:     500,
			},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: senderID}, nil)
				mockSvc.EXPECT().Send(gomock.Any(), senderID, receiverID, models.GiftKindMoney, int64(500), nil).Return(sentGift, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "gift",
		},
		{
			name:        "unauthorized",
			requestBody: SendGiftRequest{ReceiverID: receiverID, Kind: models.GiftKindMoney, Amount: 500},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "gift to self",
			requestBody: SendGiftRequest{ReceiverID: senderID, Kind: models.GiftKindMoney, Amount: 500},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: senderID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "no channel of trust",
			requestBody: SendGiftRequest{ReceiverID: receiverID, Kind: models.GiftKindMoney, Amount: 500},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: senderID}, nil)
				mockSvc.EXPECT().Send(gomock.Any(), senderID, receiverID, models.GiftKindMoney, int64(500), nil).Return(nil, services.ErrNoChannel)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedKey:        "error",
		},
		{
			name:        "insufficient funds",
			requestBody: SendGiftRequest{ReceiverID: receiverID, Kind: models.GiftKindMoney, Amount: 500},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: senderID}, nil)
				mockSvc.EXPECT().Send(gomock.Any(), senderID, receiverID, models.GiftKindMoney, int64(500), nil).Return(nil, services.ErrInsufficientFunds)
			},
			expectedStatusCode: http.StatusPaymentRequired,
			expectedKey:        "error",
		},
		{
			name:        "item not owned",
			requestBody: SendGiftRequest{ReceiverID: receiverID, Kind: models.GiftKindItem},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: senderID}, nil)
				mockSvc.EXPECT().Send(gomock.Any(), senderID, receiverID, models.GiftKindItem, int64(0), nil).Return(nil, services.ErrNotOwned)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:        "invalid payload",
			requestBody: SendGiftRequest{ReceiverID: receiverID, Kind: "subscription"},
			setupMocks: func(mockSvc *MockGiftSender, mockTokener *MockGiftTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: senderID}, nil)
				mockSvc.EXPECT().Send(gomock.Any(), senderID, receiverID, "subscription", int64(0), nil).Return(nil, services.ErrInvalidGiftPayload)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockGiftTokener(ctrl)
			mockSvc := NewMockGiftSender(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/gifts", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewSendGiftHandler(mockSvc, mockTokener)
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
