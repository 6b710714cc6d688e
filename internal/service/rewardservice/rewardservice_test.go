package rewardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *MockRepo
	ledger   *MockLedgerRepo
	groups   *MockGroupRepo
	settings *MockSettings
}

var (
	now     = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	economy = &domain.Economy{
		DailyMin: 1, DailyMax: 3, DailyCooldown: 24 * time.Hour,
		LuckMin: 0, LuckMax: 5, LuckCooldown: 6 * time.Hour,
		GroupReward: 1, GroupMinMembers: 10,
	}
)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockRepo(ctrl),
		ledger:   NewMockLedgerRepo(ctrl),
		groups:   NewMockGroupRepo(ctrl),
		settings: NewMockSettings(ctrl),
	}
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	service := New(m.repo, m.ledger, m.groups, m.settings, tx)
	service.now = func() time.Time { return now }
	service.randInt = func(n int) int { return n - 1 }
	defer ctrl.Finish()
	return service, m
}

func ago(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

func TestClaimDaily(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		multiplier    float64
		prepareMock   func()
		expected      *Reward
		expectedError error
		cooldownLeft  time.Duration
	}{
		{
			name:       "First claim",
			multiplier: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(1), 3.0).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), &domain.Transaction{
					UserID: 1, Amount: 3, Type: domain.TxDaily, Description: "daily bonus",
				}).Return(nil)
				m.repo.EXPECT().SetLastDaily(gomock.Any(), int64(1), now).Return(nil)
			},
			expected: &Reward{Amount: 3, Base: 3, Multiplier: 1, Next: now.Add(24 * time.Hour)},
		},
		{
			name:       "Boosted claim after cooldown",
			multiplier: 1.5,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, LastDaily: ago(25 * time.Hour)}, nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(1), 4.5).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().SetLastDaily(gomock.Any(), int64(1), now).Return(nil)
			},
			expected: &Reward{Amount: 4.5, Base: 3, Multiplier: 1.5, Next: now.Add(24 * time.Hour)},
		},
		{
			name:       "Cooldown ends exactly now",
			multiplier: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, LastDaily: ago(24 * time.Hour)}, nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(1), 3.0).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().SetLastDaily(gomock.Any(), int64(1), now).Return(nil)
			},
			expected: &Reward{Amount: 3, Base: 3, Multiplier: 1, Next: now.Add(24 * time.Hour)},
		},
		{
			name:       "One second before cooldown ends",
			multiplier: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, LastDaily: ago(24*time.Hour - time.Second)}, nil)
			},
			cooldownLeft: time.Second,
		},
		{
			name:       "Still on cooldown",
			multiplier: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, LastDaily: ago(20 * time.Hour)}, nil)
			},
			cooldownLeft: 4 * time.Hour,
		},
		{
			name:       "Unknown user",
			multiplier: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:       "Credit fails",
			multiplier: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(1), 3.0).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.settings.EXPECT().Economy(gomock.Any()).Return(economy, nil)
			m.settings.EXPECT().Multiplier(gomock.Any()).Return(tt.multiplier, nil)
			tt.prepareMock()

			reward, err := service.ClaimDaily(context.Background(), 1)
			switch {
			case tt.cooldownLeft > 0:
				var cooldown *CooldownError
				require.ErrorAs(t, err, &cooldown)
				assert.Equal(t, tt.cooldownLeft, cooldown.Left)
			case tt.expectedError != nil:
				assert.EqualError(t, err, tt.expectedError.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, reward)
			}
		})
	}
}

func TestPlayLuck(t *testing.T) {
	service, m := NewMock(t)
	service.randInt = func(int) int { return 0 }

	m.settings.EXPECT().Economy(gomock.Any()).Return(economy, nil)
	m.settings.EXPECT().Multiplier(gomock.Any()).Return(2.0, nil)
	m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(1)).Return(&domain.User{ID: 1, LastLuck: ago(7 * time.Hour)}, nil)
	m.repo.EXPECT().SetLastLuck(gomock.Any(), int64(1), now).Return(nil)

	reward, err := service.PlayLuck(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, reward.Amount)
	assert.Equal(t, now.Add(6*time.Hour), reward.Next)
}

func TestCooldowns(t *testing.T) {
	service, m := NewMock(t)

	m.settings.EXPECT().Economy(gomock.Any()).Return(economy, nil)
	m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).
		Return(&domain.User{ID: 1, LastDaily: ago(23 * time.Hour), LastLuck: ago(7 * time.Hour)}, nil)

	dailyLeft, luckLeft, err := service.Cooldowns(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, dailyLeft)
	assert.Zero(t, luckLeft)
}

func TestBetween(t *testing.T) {
	service, _ := NewMock(t)
	service.randInt = func(n int) int { return n - 1 }
	assert.Equal(t, 5, service.between(1, 5))
	assert.Equal(t, 5, service.between(5, 1))
	service.randInt = func(int) int { return 0 }
	assert.Equal(t, 1, service.between(1, 5))
}

func TestRewardGroup(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name        string
		members     int
		admins      []int64
		prepareMock func()
		expected    []GroupReward
		expectErr   bool
	}{
		{
			name:     "Too small",
			members:  5,
			admins:   []int64{1},
			expected: nil,
		},
		{
			name:    "Pays registered admins once",
			members: 25,
			admins:  []int64{1, 2, 3},
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
				m.groups.EXPECT().Claim(gomock.Any(), int64(-100), int64(1)).Return(true, nil)
				m.repo.EXPECT().Credit(gomock.Any(), int64(1), 1.0).Return(nil)
				m.ledger.EXPECT().Add(gomock.Any(), &domain.Transaction{
					UserID: 1, Amount: 1, Type: domain.TxGroup, Description: "group -100",
				}).Return(nil)

				m.repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, nil)

				m.repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&domain.User{ID: 3}, nil)
				m.groups.EXPECT().Claim(gomock.Any(), int64(-100), int64(3)).Return(false, nil)
			},
			expected: []GroupReward{{UserID: 1, Amount: 1}},
		},
		{
			name:    "Claim fails",
			members: 25,
			admins:  []int64{1},
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
				m.groups.EXPECT().Claim(gomock.Any(), int64(-100), int64(1)).Return(false, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.settings.EXPECT().Economy(gomock.Any()).Return(economy, nil)
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			rewarded, err := service.RewardGroup(context.Background(), -100, tt.members, tt.admins)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, rewarded)
		})
	}
}
