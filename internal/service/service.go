package service

import (
	"github.com/GlebRadaev/starsbot/internal/config"
	"github.com/GlebRadaev/starsbot/internal/repo"
	"github.com/GlebRadaev/starsbot/internal/service/authservice"
	"github.com/GlebRadaev/starsbot/internal/service/duelservice"
	"github.com/GlebRadaev/starsbot/internal/service/postservice"
	"github.com/GlebRadaev/starsbot/internal/service/promoservice"
	"github.com/GlebRadaev/starsbot/internal/service/rewardservice"
	"github.com/GlebRadaev/starsbot/internal/service/settingsservice"
	"github.com/GlebRadaev/starsbot/internal/service/shopservice"
	"github.com/GlebRadaev/starsbot/internal/service/statsservice"
	"github.com/GlebRadaev/starsbot/internal/service/userservice"
	"github.com/GlebRadaev/starsbot/internal/service/withdrawalservice"
	"github.com/GlebRadaev/starsbot/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	SettingsService   *settingsservice.Service
	UserService       *userservice.Service
	RewardService     *rewardservice.Service
	WithdrawalService *withdrawalservice.Service
	PromoService      *promoservice.Service
	ShopService       *shopservice.Service
	DuelService       *duelservice.Service
	PostService       *postservice.Service
	StatsService      *statsservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, jwtService auth.JWTServiceInterface) *Services {
	tx := repo.TxManager
	settings := settingsservice.New(repo.Settings)

	return &Services{
		AuthService:       authservice.New(cfg, cfg.AdminPasswordHash, &auth.HashService{}, jwtService),
		SettingsService:   settings,
		UserService:       userservice.New(repo.UserRepo, repo.Ledger, settings, tx),
		RewardService:     rewardservice.New(repo.UserRepo, repo.Ledger, repo.Group, settings, tx),
		WithdrawalService: withdrawalservice.New(repo.Withdrawal, repo.UserRepo, repo.Inventory, repo.Ledger, settings, tx),
		PromoService:      promoservice.New(repo.Promo, repo.UserRepo, repo.Ledger, tx),
		ShopService:       shopservice.New(repo.UserRepo, repo.Inventory, repo.Market, repo.Ledger, settings, tx),
		DuelService:       duelservice.New(repo.Duel, repo.UserRepo, repo.Ledger, tx),
		PostService:       postservice.New(repo.Post, repo.UserRepo, repo.Ledger, settings, tx),
		StatsService:      statsservice.New(repo.UserRepo, settings),
	}
}
