package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
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

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		key       string
		mockSetup func()
		expectErr bool
		value     string
		found     bool
	}{
		{
			name: "Stored value",
			key:  "daily_max",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGet)).WithArgs("daily_max").
					WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("5"))
			},
			value: "5",
			found: true,
		},
		{
			name: "Missing key",
			key:  "boost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGet)).WithArgs("boost").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			key:  "boost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGet)).WithArgs("boost").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			value, found, err := repo.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestRepository_All(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryAll)).
		WillReturnRows(pgxmock.NewRows([]string{"key", "value"}).AddRow("daily_min", "2").AddRow("daily_max", "4"))

	settings, err := repo.All(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"daily_min": "2", "daily_max": "4"}, settings)
}

func TestRepository_SetDelete(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(querySet)).WithArgs("ref_reward", "3").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(queryDelete)).WithArgs("boost").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(querySet)).WithArgs("ref_reward", "4").
		WillReturnError(errors.New("database error"))

	assert.NoError(t, repo.Set(ctx, "ref_reward", "3"))
	assert.NoError(t, repo.Delete(ctx, "boost"))
	assert.Error(t, repo.Set(ctx, "ref_reward", "4"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
