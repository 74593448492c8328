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

func TestListInventoryHandler(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	validToken := "valid-token"

	entries := []models.InventoryEntryDB{
		{AccountID: userID, ItemID: itemID, ItemType: models.ItemTypeFrame, Equipped: true},
	}

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful listing",
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().List(gomock.Any(), userID).Return(entries, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "items",
		},
		{
			name: "unauthorized",
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal server error",
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().List(gomock.Any(), userID).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockInventoryTokener(ctrl)
			mockSvc := NewMockInventoryManager(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
			rr := httptest.NewRecorder()

			handler := NewListInventoryHandler(mockSvc, mockTokener)
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

func TestEquipHandler(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful equip",
			requestBody: EquipRequest{ItemID: itemID},
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Equip(gomock.Any(), userID, itemID).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:        "invalid request body",
			requestBody: "invalid-json",
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "missing item id",
			requestBody: EquipRequest{},
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "item not owned",
			requestBody: EquipRequest{ItemID: itemID},
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Equip(gomock.Any(), userID, itemID).Return(services.ErrNotOwned)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:        "internal server error",
			requestBody: EquipRequest{ItemID: itemID},
			setupMocks: func(mockSvc *MockInventoryManager, mockTokener *MockInventoryTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Equip(gomock.Any(), userID, itemID).Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockInventoryTokener(ctrl)
			mockSvc := NewMockInventoryManager(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/inventory/equip", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewEquipHandler(mockSvc, mockTokener)
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

func TestUnequipHandler(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	validToken := "valid-token"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockInventoryTokener(ctrl)
	mockSvc := NewMockInventoryManager(ctrl)

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
	mockSvc.EXPECT().Unequip(gomock.Any(), userID, itemID).Return(nil)

	bodyBytes, _ := json.Marshal(EquipRequest{ItemID: itemID})
	req := httptest.NewRequest(http.MethodPost, "/inventory/unequip", bytes.NewReader(bodyBytes))
	rr := httptest.NewRecorder()

	NewUnequipHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp EquipResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Item unequipped", resp.Message)
}
