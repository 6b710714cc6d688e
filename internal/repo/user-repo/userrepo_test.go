package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var userColumnNames = []string{"user_id", "username", "first_name", "last_name", "stars", "referrals",
	"total_earned", "total_withdrawn", "referred_by", "ref_code", "last_daily", "last_luck", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	referrer := int64(7)

	tests := []struct {
		name      string
		userID    int64
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumnNames).
					AddRow(int64(1), "alice", "Alice", "", 12.5, 3, 20.0, 7.5, &referrer, "ref1", &now, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(queryGetByID)).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID: 1, Username: "alice", FirstName: "Alice", Stars: 12.5, Referrals: 3, TotalEarned: 20,
				TotalWithdrawn: 7.5, ReferredBy: &referrer, RefCode: "ref1", LastDaily: &now, CreatedAt: now,
			},
		},
		{
			name:   "User not found",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetByID)).
					WithArgs(int64(2)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetByID)).
					WithArgs(int64(3)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(userColumnNames).
		AddRow(int64(5), "", "Bob", "", 1.0, 0, 1.0, 0.0, nil, "ref5", nil, &now, now)
	mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	user, err := repo.GetForUpdate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Bob", user.FirstName)
	assert.Nil(t, user.LastDaily)
	assert.Equal(t, &now, user.LastLuck)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	returning := []string{"created", "stars", "referrals", "total_earned", "total_withdrawn",
		"referred_by", "last_daily", "last_luck", "created_at"}

	tests := []struct {
		name        string
		user        *domain.User
		mockSetup   func()
		expectErr   bool
		wantCreated bool
	}{
		{
			name: "New user",
			user: &domain.User{ID: 10, Username: "neo", FirstName: "Thomas"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryUpsert)).
					WithArgs(int64(10), "neo", "Thomas", "", "ref10").
					WillReturnRows(pgxmock.NewRows(returning).AddRow(true, 0.0, 0, 0.0, 0.0, nil, nil, nil, now))
			},
			wantCreated: true,
		},
		{
			name: "Existing user",
			user: &domain.User{ID: 11, Username: "trinity"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryUpsert)).
					WithArgs(int64(11), "trinity", "", "", "ref11").
					WillReturnRows(pgxmock.NewRows(returning).AddRow(false, 4.0, 1, 9.0, 5.0, nil, nil, nil, now))
			},
			wantCreated: false,
		},
		{
			name: "Database error",
			user: &domain.User{ID: 12},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryUpsert)).
					WithArgs(int64(12), "", "", "", "ref12").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, created, err := repo.Upsert(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, domain.RefCodeFor(tt.user.ID), user.RefCode)
			assert.Equal(t, now, user.CreatedAt)
		})
	}
}

func TestRepository_BalanceMutations(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		query       string
		call        func() error
		affected    int64
		dbErr       error
		expectedErr error
	}{
		{
			name:     "Credit",
			query:    queryCredit,
			call:     func() error { return repo.Credit(ctx, 1, 2.5) },
			affected: 1,
		},
		{
			name:        "Credit unknown user",
			query:       queryCredit,
			call:        func() error { return repo.Credit(ctx, 1, 2.5) },
			affected:    0,
			expectedErr: domain.ErrUserNotFound,
		},
		{
			name:     "AddStars",
			query:    queryAddStars,
			call:     func() error { return repo.AddStars(ctx, 1, 2.5) },
			affected: 1,
		},
		{
			name:     "Debit",
			query:    queryDebit,
			call:     func() error { return repo.Debit(ctx, 1, 2.5) },
			affected: 1,
		},
		{
			name:        "Debit insufficient funds",
			query:       queryDebit,
			call:        func() error { return repo.Debit(ctx, 1, 2.5) },
			affected:    0,
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name:        "Withdraw insufficient funds",
			query:       queryWithdraw,
			call:        func() error { return repo.Withdraw(ctx, 1, 2.5) },
			affected:    0,
			expectedErr: domain.ErrInsufficientFunds,
		},
		{
			name:     "Refund",
			query:    queryRefund,
			call:     func() error { return repo.Refund(ctx, 1, 2.5) },
			affected: 1,
		},
		{
			name:        "Database error",
			query:       queryCredit,
			call:        func() error { return repo.Credit(ctx, 1, 2.5) },
			dbErr:       errors.New("database error"),
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := mock.ExpectExec(regexp.QuoteMeta(tt.query)).WithArgs(int64(1), 2.5)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			err := tt.call()
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Timestamps(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(querySetLastDaily)).
		WithArgs(int64(1), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(querySetLastLuck)).
		WithArgs(int64(1), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.SetLastDaily(ctx, 1, now))
	assert.ErrorIs(t, repo.SetLastLuck(ctx, 1, now), domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Referrals(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(querySetReferrer)).
		WithArgs(int64(2), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta(queryIncrementReferrals)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.SetReferrer(ctx, 2, 1))
	assert.NoError(t, repo.IncrementReferrals(ctx, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Top(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		wantLen   int
	}{
		{
			name: "Two users",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumnNames).
					AddRow(int64(1), "a", "", "", 50.0, 0, 50.0, 0.0, nil, "ref1", nil, nil, now).
					AddRow(int64(2), "b", "", "", 10.0, 0, 10.0, 0.0, nil, "ref2", nil, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(queryTop)).WithArgs(10).WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "Scan error",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumnNames).
					AddRow("bad", "a", "", "", 50.0, 0, 50.0, 0.0, nil, "ref1", nil, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(queryTop)).WithArgs(10).WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryTop)).WithArgs(10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			users, err := repo.Top(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, users, tt.wantLen)
			assert.Equal(t, "a", users[0].Username)
		})
	}
}

func TestRepository_ListIDs(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryListIDs)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(1)).AddRow(int64(2)))

	ids, err := repo.ListIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryStats)).
		WillReturnRows(pgxmock.NewRows([]string{"users", "stars", "withdrawn", "pending"}).
			AddRow(3, 42.5, 15.0, 1))

	stats, err := repo.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &domain.Stats{TotalUsers: 3, TotalStars: 42.5, TotalWithdrawn: 15, PendingWithdrawals: 1}, stats)

	mock.ExpectQuery(regexp.QuoteMeta(queryStats)).WillReturnError(errors.New("database error"))
	_, err = repo.Stats(context.Background())
	assert.Error(t, err)
}
