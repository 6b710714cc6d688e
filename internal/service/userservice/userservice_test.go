package userservice

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *MockRepo
	ledger   *MockLedgerRepo
	settings *MockSettings
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockRepo(ctrl),
		ledger:   NewMockLedgerRepo(ctrl),
		settings: NewMockSettings(ctrl),
	}
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	service := New(m.repo, m.ledger, m.settings, tx)
	defer ctrl.Finish()
	return service, m
}

func TestParseReferral(t *testing.T) {
	tests := []struct {
		payload string
		id      int64
		ok      bool
	}{
		{"ref123", 123, true},
		{"ref", 0, false},
		{"ref-5", 0, false},
		{"duel_4", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			id, ok := ParseReferral(tt.payload)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)
	economy := &domain.Economy{ReferralReward: 2}

	tests := []struct {
		name           string
		input          RegisterInput
		prepareMock    func()
		expectedError  error
		wantCreated    bool
		wantReferrerID *int64
	}{
		{
			name:  "Existing user",
			input: RegisterInput{ID: 1, Username: "alice", Payload: "ref2"},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, false, nil)
			},
		},
		{
			name:  "New user without payload",
			input: RegisterInput{ID: 1},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, true, nil)
			},
			wantCreated: true,
		},
		{
			name:  "Self referral ignored",
			input: RegisterInput{ID: 1, Payload: "ref1"},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, true, nil)
			},
			wantCreated: true,
		},
		{
			name:  "Unknown referrer ignored",
			input: RegisterInput{ID: 1, Payload: "ref9"},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, true, nil)
				m.repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)
			},
			wantCreated: true,
		},
		{
			name:  "Referral rewarded",
			input: RegisterInput{ID: 1, Username: "alice", Payload: "ref2"},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), &domain.User{ID: 1, Username: "alice"}).Return(&domain.User{ID: 1}, true, nil)
				m.repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domain.User{ID: 2}, nil)
				m.settings.EXPECT().Economy(gomock.Any()).Return(economy, nil)
				m.repo.EXPECT().SetReferrer(gomock.Any(), int64(1), int64(2)).Return(nil)
				m.repo.EXPECT().IncrementReferrals(gomock.Any(), int64(2)).Return(nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(2), 2.0).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), &domain.Transaction{
					UserID: 2, Amount: 2, Type: domain.TxReferral, Description: "referral 1",
				}).Return(nil)
			},
			wantCreated:    true,
			wantReferrerID: func() *int64 { id := int64(2); return &id }(),
		},
		{
			name:  "Credit fails",
			input: RegisterInput{ID: 1, Payload: "ref2"},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1}, true, nil)
				m.repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&domain.User{ID: 2}, nil)
				m.settings.EXPECT().Economy(gomock.Any()).Return(economy, nil)
				m.repo.EXPECT().SetReferrer(gomock.Any(), int64(1), int64(2)).Return(nil)
				m.repo.EXPECT().IncrementReferrals(gomock.Any(), int64(2)).Return(nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(2), 2.0).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Upsert fails",
			input: RegisterInput{ID: 1},
			prepareMock: func() {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Register(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, result.Created)
			assert.Equal(t, tt.wantReferrerID, result.ReferrerID)
			if tt.wantReferrerID != nil {
				assert.Equal(t, tt.wantReferrerID, result.User.ReferredBy)
				assert.Equal(t, 2.0, result.Reward)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, Stars: 4}, nil)
	user, err := service.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, user.Stars)

	m.repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)
	_, err = service.Get(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	m.repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("db error"))
	_, err = service.Get(context.Background(), 3)
	assert.EqualError(t, err, "db error")
}

func TestGive(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		amount        float64
		prepareMock   func()
		expectedError error
		wantStars     float64
	}{
		{
			name:   "Credit",
			amount: 10,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Stars: 1}, nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(5), 10.0).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), &domain.Transaction{
					UserID: 5, Amount: 10, Type: domain.TxAdmin, Description: "admin 99",
				}).Return(nil)
			},
			wantStars: 11,
		},
		{
			name:   "Debit",
			amount: -1,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Stars: 1}, nil)
				m.repo.EXPECT().Debit(gomock.Any(), int64(5), 1.0).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStars: 0,
		},
		{
			name:   "Debit more than balance",
			amount: -5,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5, Stars: 1}, nil)
				m.repo.EXPECT().Debit(gomock.Any(), int64(5), 5.0).Return(domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "Unknown user",
			amount: 5,
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:          "Zero amount",
			amount:        0,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Infinite amount",
			amount:        math.Inf(1),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative infinity",
			amount:        math.Inf(-1),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "NaN",
			amount:        math.NaN(),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Give(context.Background(), 99, 5, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStars, user.Stars)
		})
	}
}

func TestTopAndHistory(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().Top(gomock.Any(), 10).Return([]domain.User{{ID: 1}, {ID: 2}}, nil)
	users, err := service.Top(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, users, 2)

	m.ledger.EXPECT().ListByUser(gomock.Any(), int64(1), 5).Return(nil, errors.New("db error"))
	_, err = service.History(context.Background(), 1, 5)
	assert.Error(t, err)
}
