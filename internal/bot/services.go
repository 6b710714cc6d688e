package bot

import (
	"context"
	"time"

	"github.com/GlebRadaev/starsbot/internal/broadcast"
	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/service/rewardservice"
	"github.com/GlebRadaev/starsbot/internal/service/statsservice"
	"github.com/GlebRadaev/starsbot/internal/service/userservice"
	"github.com/GlebRadaev/starsbot/internal/service/withdrawalservice"
)

//go:generate mockgen -source=services.go -destination=mock_services.go -package=bot

type UserService interface {
	Register(ctx context.Context, in userservice.RegisterInput) (*userservice.RegisterResult, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
	Top(ctx context.Context, limit int) ([]domain.User, error)
	Give(ctx context.Context, adminID, userID int64, amount float64) (*domain.User, error)
}

type RewardService interface {
	ClaimDaily(ctx context.Context, userID int64) (*rewardservice.Reward, error)
	PlayLuck(ctx context.Context, userID int64) (*rewardservice.Reward, error)
	Cooldowns(ctx context.Context, userID int64) (dailyLeft, luckLeft time.Duration, err error)
	RewardGroup(ctx context.Context, chatID int64, memberCount int, adminIDs []int64) ([]rewardservice.GroupReward, error)
}

type WithdrawalService interface {
	Options(ctx context.Context, userID int64) (*withdrawalservice.Options, error)
	Request(ctx context.Context, userID int64, amount float64) (*domain.Withdrawal, error)
	RequestGift(ctx context.Context, userID int64, item string) (*domain.Withdrawal, error)
	AttachMessage(ctx context.Context, id int64, messageID int) error
	Approve(ctx context.Context, id, adminID int64) (*domain.Withdrawal, error)
	Reject(ctx context.Context, id, adminID int64) (*domain.Withdrawal, error)
	Pending(ctx context.Context, limit int) ([]domain.Withdrawal, error)
}

type PromoService interface {
	Create(ctx context.Context, code string, reward float64, maxUses int, ttl time.Duration) (*domain.PromoCode, error)
	Activate(ctx context.Context, userID int64, code string) (*domain.PromoCode, error)
}

type ShopService interface {
	Gifts(ctx context.Context) ([]domain.Gift, error)
	BuyGift(ctx context.Context, userID int64, key string) (*domain.Gift, error)
	Inventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error)
	Sell(ctx context.Context, userID int64, item string, price float64) (*domain.MarketLot, error)
	Market(ctx context.Context, limit int) ([]domain.MarketLot, error)
	BuyLot(ctx context.Context, buyerID, lotID int64) (*domain.MarketLot, error)
	CancelLot(ctx context.Context, userID, lotID int64) (*domain.MarketLot, error)
}

type DuelService interface {
	Create(ctx context.Context, userID int64, stake float64) (*domain.Duel, error)
	Get(ctx context.Context, id int64) (*domain.Duel, error)
	Join(ctx context.Context, userID, duelID int64) (*domain.Duel, error)
	Cancel(ctx context.Context, userID, duelID int64) (*domain.Duel, error)
	ListOpen(ctx context.Context, limit int) ([]domain.Duel, error)
}

type PostService interface {
	Create(ctx context.Context, adminID int64, text string) (*domain.Post, error)
	Recipients(ctx context.Context) ([]int64, error)
	Claim(ctx context.Context, userID int64, postID string) (*domain.Post, error)
}

type StatsService interface {
	Summary(ctx context.Context) (*statsservice.Summary, error)
}

type SettingsService interface {
	Economy(ctx context.Context) (*domain.Economy, error)
	Set(ctx context.Context, key, value string) error
	SetBoost(ctx context.Context, multiplier float64, d time.Duration) (*domain.Boost, error)
}

type Broadcaster interface {
	Send(ctx context.Context, ids []int64, deliver broadcast.Deliver) (*broadcast.Report, error)
}

type Services struct {
	Users       UserService
	Rewards     RewardService
	Withdrawals WithdrawalService
	Promos      PromoService
	Shop        ShopService
	Duels       DuelService
	Posts       PostService
	Stats       StatsService
	Settings    SettingsService
}
