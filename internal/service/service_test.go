package service

import (
	"testing"

	"github.com/GlebRadaev/starsbot/internal/config"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/GlebRadaev/starsbot/internal/repo"
	"github.com/GlebRadaev/starsbot/pkg/auth"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(repos, &config.Config{AdminIDs: "1"}, auth.NewJWTService("secret"))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.SettingsService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.PromoService)
	assert.NotNil(t, services.ShopService)
	assert.NotNil(t, services.DuelService)
	assert.NotNil(t, services.PostService)
	assert.NotNil(t, services.StatsService)
}
