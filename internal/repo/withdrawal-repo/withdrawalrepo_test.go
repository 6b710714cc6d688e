package withdrawalrepo

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

var withdrawalColumnNames = []string{"id", "user_id", "amount", "item", "status", "admin_id", "message_id",
	"created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	bear := "bear"

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func()
		expectErr  bool
		result     *domain.Withdrawal
	}{
		{
			name:       "Create stars withdrawal",
			withdrawal: &domain.Withdrawal{UserID: 1, Amount: 15},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryCreate)).
					WithArgs(int64(1), 15.0, (*string)(nil), domain.WithdrawalPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))
			},
			result: &domain.Withdrawal{ID: 1, UserID: 1, Amount: 15, Status: domain.WithdrawalPending, CreatedAt: now},
		},
		{
			name:       "Create gift withdrawal",
			withdrawal: &domain.Withdrawal{UserID: 1, Amount: 25, Item: &bear},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryCreate)).
					WithArgs(int64(1), 25.0, &bear, domain.WithdrawalPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), now))
			},
			result: &domain.Withdrawal{ID: 2, UserID: 1, Amount: 25, Item: &bear, Status: domain.WithdrawalPending, CreatedAt: now},
		},
		{
			name:       "Database error",
			withdrawal: &domain.Withdrawal{UserID: 1, Amount: 15},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryCreate)).
					WithArgs(int64(1), 15.0, (*string)(nil), domain.WithdrawalPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(ctx, tt.withdrawal)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Withdrawal
	}{
		{
			name: "Withdrawal found",
			id:   3,
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalColumnNames).
					AddRow(int64(3), int64(1), 50.0, nil, domain.WithdrawalPending, nil, nil, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).WithArgs(int64(3)).WillReturnRows(rows)
			},
			result: &domain.Withdrawal{ID: 3, UserID: 1, Amount: 50, Status: domain.WithdrawalPending, CreatedAt: now},
		},
		{
			name: "Withdrawal not found",
			id:   4,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).WithArgs(int64(4)).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).WithArgs(int64(5)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetForUpdate(ctx, tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(querySetStatus)).
		WithArgs(int64(1), domain.WithdrawalApproved, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(querySetStatus)).
		WithArgs(int64(1), domain.WithdrawalRejected, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.SetStatus(ctx, 1, domain.WithdrawalApproved, 99))
	assert.ErrorIs(t, repo.SetStatus(ctx, 1, domain.WithdrawalRejected, 99), domain.ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AttachMessage(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(queryAttachMessage)).
		WithArgs(int64(1), 321).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(queryAttachMessage)).
		WithArgs(int64(2), 322).
		WillReturnError(errors.New("database error"))

	assert.NoError(t, repo.AttachMessage(ctx, 1, 321))
	assert.Error(t, repo.AttachMessage(ctx, 2, 322))
}

func TestRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		call      func() ([]domain.Withdrawal, error)
		expectErr bool
		wantLen   int
	}{
		{
			name: "By user",
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalColumnNames).
					AddRow(int64(1), int64(7), 15.0, nil, domain.WithdrawalApproved, nil, nil, now, &now).
					AddRow(int64(2), int64(7), 25.0, nil, domain.WithdrawalPending, nil, nil, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(queryListByUser)).WithArgs(int64(7), 10).WillReturnRows(rows)
			},
			call:    func() ([]domain.Withdrawal, error) { return repo.ListByUser(ctx, 7, 10) },
			wantLen: 2,
		},
		{
			name: "Pending empty",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryListPending)).WithArgs(20).
					WillReturnRows(pgxmock.NewRows(withdrawalColumnNames))
			},
			call:    func() ([]domain.Withdrawal, error) { return repo.ListPending(ctx, 20) },
			wantLen: 0,
		},
		{
			name: "Scan error",
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalColumnNames).
					AddRow(int64(1), int64(7), "oops", nil, domain.WithdrawalPending, nil, nil, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(queryListPending)).WithArgs(20).WillReturnRows(rows)
			},
			call:      func() ([]domain.Withdrawal, error) { return repo.ListPending(ctx, 20) },
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryListPending)).WithArgs(20).WillReturnError(errors.New("database error"))
			},
			call:      func() ([]domain.Withdrawal, error) { return repo.ListPending(ctx, 20) },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := tt.call()

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}
