package duelrepo

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

var duelColumnNames = []string{"id", "creator_id", "opponent_id", "stake", "status", "winner_id", "created_at", "finished_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queryCreate)).
		WithArgs(int64(1), 5.0, domain.DuelOpen).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	duel, err := repo.Create(context.Background(), &domain.Duel{CreatorID: 1, Stake: 5})
	assert.NoError(t, err)
	assert.Equal(t, &domain.Duel{ID: 3, CreatorID: 1, Stake: 5, Status: domain.DuelOpen, CreatedAt: now}, duel)

	mock.ExpectQuery(regexp.QuoteMeta(queryCreate)).
		WithArgs(int64(1), 5.0, domain.DuelOpen).
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), &domain.Duel{CreatorID: 1, Stake: 5})
	assert.Error(t, err)
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Duel
	}{
		{
			name: "Duel found",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).WithArgs(int64(3)).
					WillReturnRows(pgxmock.NewRows(duelColumnNames).
						AddRow(int64(3), int64(1), nil, 5.0, domain.DuelOpen, nil, now, nil))
			},
			result: &domain.Duel{ID: 3, CreatorID: 1, Stake: 5, Status: domain.DuelOpen, CreatedAt: now},
		},
		{
			name: "Duel not found",
			id:   4,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryGetForUpdate)).WithArgs(int64(4)).WillReturnError(pgx.ErrNoRows)
			},
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
			result, err := repo.GetForUpdate(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListOpen(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queryListOpen)).WithArgs(5).
		WillReturnRows(pgxmock.NewRows(duelColumnNames).
			AddRow(int64(3), int64(1), nil, 5.0, domain.DuelOpen, nil, now, nil))

	duels, err := repo.ListOpen(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, duels, 1)
}

func TestRepository_FinishCancel(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(queryFinish)).WithArgs(int64(3), int64(2), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(queryCancel)).WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta(queryCancel)).WithArgs(int64(4)).
		WillReturnError(errors.New("database error"))

	assert.NoError(t, repo.Finish(ctx, 3, 2, 1))
	assert.ErrorIs(t, repo.Cancel(ctx, 3), domain.ErrAlreadyProcessed)
	assert.Error(t, repo.Cancel(ctx, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queryGetByID)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(duelColumnNames).
			AddRow(int64(3), int64(1), nil, 5.0, domain.DuelOpen, nil, now, nil))

	duel, err := repo.GetByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), duel.CreatorID)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetByID)).
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)

	duel, err = repo.GetByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, duel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
