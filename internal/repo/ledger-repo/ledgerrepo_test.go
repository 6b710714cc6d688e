package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Add(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		tx        *domain.Transaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Entry saved",
			tx:   &domain.Transaction{UserID: 1, Amount: 2, Type: domain.TxDaily, Description: "daily bonus"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryAdd)).
					WithArgs(int64(1), 2.0, domain.TxDaily, "daily bonus").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))
			},
		},
		{
			name: "Database error",
			tx:   &domain.Transaction{UserID: 1, Amount: -15, Type: domain.TxWithdrawal},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryAdd)).
					WithArgs(int64(1), -15.0, domain.TxWithdrawal, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Add(context.Background(), tt.tx)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(5), tt.tx.ID)
			assert.Equal(t, now, tt.tx.CreatedAt)
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "type", "description", "created_at"}).
		AddRow(int64(2), int64(1), 3.0, domain.TxLuck, "luck", now).
		AddRow(int64(1), int64(1), 2.0, domain.TxDaily, "daily", now)
	mock.ExpectQuery(regexp.QuoteMeta(queryListByUser)).WithArgs(int64(1), 5).WillReturnRows(rows)

	txs, err := repo.ListByUser(context.Background(), 1, 5)
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, domain.TxLuck, txs[0].Type)

	mock.ExpectQuery(regexp.QuoteMeta(queryListByUser)).WithArgs(int64(1), 5).WillReturnError(errors.New("database error"))
	_, err = repo.ListByUser(context.Background(), 1, 5)
	assert.Error(t, err)
}
