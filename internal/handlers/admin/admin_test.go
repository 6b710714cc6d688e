package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/dto"
	"github.com/GlebRadaev/starsbot/internal/service/statsservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	stats       *MockStatsService
	withdrawals *MockWithdrawalService
	users       *MockUserService
}

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		stats:       NewMockStatsService(ctrl),
		withdrawals: NewMockWithdrawalService(ctrl),
		users:       NewMockUserService(ctrl),
	}
	defer ctrl.Finish()
	return New(m.stats, m.withdrawals, m.users), m
}

func TestStatsHandler(t *testing.T) {
	handler, m := NewMock(t)
	expires := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.StatsResponseDTO
	}{
		{
			name: "With boost",
			prepareMock: func() {
				m.stats.EXPECT().Summary(gomock.Any()).Return(&statsservice.Summary{
					Stats: domain.Stats{TotalUsers: 3, TotalStars: 10.5, TotalWithdrawn: 15, PendingWithdrawals: 1},
					Boost: &domain.Boost{Multiplier: 2, ExpiresAt: expires},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.StatsResponseDTO{
				TotalUsers: 3, TotalStars: 10.5, TotalWithdrawn: 15, PendingWithdrawals: 1,
				Boost: &dto.BoostDTO{Multiplier: 2, ExpiresAt: expires},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				m.stats.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			w := httptest.NewRecorder()
			handler.Stats(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.StatsResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestPendingWithdrawalsHandler(t *testing.T) {
	handler, m := NewMock(t)
	item := "rose"

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Default limit",
			prepareMock: func() {
				m.withdrawals.EXPECT().Pending(gomock.Any(), 50).Return([]domain.Withdrawal{
					{ID: 1, UserID: 5, Amount: 15, Status: domain.WithdrawalPending},
					{ID: 2, UserID: 6, Amount: 25, Item: &item, Status: domain.WithdrawalPending},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Limit is capped",
			query: "?limit=1000",
			prepareMock: func() {
				m.withdrawals.EXPECT().Pending(gomock.Any(), 200).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad limit",
			query:        "?limit=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Repository failure",
			query: "?limit=5",
			prepareMock: func() {
				m.withdrawals.EXPECT().Pending(gomock.Any(), 5).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals/pending"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.PendingWithdrawals(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WithdrawalDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen == 2 {
					assert.Equal(t, "rose", body[1].Item)
				}
			}
		})
	}
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetUserHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "5",
			prepareMock: func() {
				m.users.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Username: "bob", Stars: 3}, nil)
				m.withdrawals.EXPECT().History(gomock.Any(), int64(5), 20).Return([]domain.Withdrawal{{ID: 1, UserID: 5, Amount: 15}}, nil)
				m.users.EXPECT().History(gomock.Any(), int64(5), 20).Return([]domain.Transaction{
					{UserID: 5, Amount: 2, Type: domain.TxDaily, Description: "daily bonus"},
					{UserID: 5, Amount: -15, Type: domain.TxWithdrawal, Description: "withdrawal #1"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			id:   "6",
			prepareMock: func() {
				m.users.EXPECT().Get(gomock.Any(), int64(6)).Return(nil, domain.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad id",
			id:           "bob",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "History failure",
			id:   "5",
			prepareMock: func() {
				m.users.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.User{ID: 5}, nil)
				m.withdrawals.EXPECT().History(gomock.Any(), int64(5), 20).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Ledger failure",
			id:   "5",
			prepareMock: func() {
				m.users.EXPECT().Get(gomock.Any(), int64(5)).Return(&domain.User{ID: 5}, nil)
				m.withdrawals.EXPECT().History(gomock.Any(), int64(5), 20).Return(nil, nil)
				m.users.EXPECT().History(gomock.Any(), int64(5), 20).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withID(httptest.NewRequest(http.MethodGet, "/api/admin/users/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()
			handler.GetUser(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "bob", body.Username)
				assert.Len(t, body.Withdrawals, 1)
				require.Len(t, body.Transactions, 2)
				assert.Equal(t, "withdrawal", body.Transactions[1].Type)
			}
		})
	}
}
