package settingsservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settingsservice.go -destination=mock_settingsservice.go -package=settingsservice

type Repo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const (
	KeyDailyMin          = "daily_min"
	KeyDailyMax          = "daily_max"
	KeyDailyCooldown     = "daily_cooldown_hours"
	KeyLuckMin           = "luck_min"
	KeyLuckMax           = "luck_max"
	KeyLuckCooldown      = "luck_cooldown_hours"
	KeyRefReward         = "ref_reward"
	KeyGroupReward       = "group_reward"
	KeyGroupMinMembers   = "group_min_members"
	KeyPostReward        = "post_reward"
	KeyMinWithdrawal     = "min_withdrawal"
	KeyWithdrawalOptions = "withdrawal_options"
	KeyGiftPrices        = "gift_prices"
	KeyBoost             = "boost"
)

var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrInvalidValue   = errors.New("invalid setting value")
	ErrUnknownGift    = errors.New("unknown gift")
)

const defaultGifts = `[
	{"key":"heart","title":"❤️ Сердце","price":15},
	{"key":"bear","title":"🧸 Мишка","price":15},
	{"key":"rose","title":"🌹 Роза","price":25},
	{"key":"box","title":"🎁 Подарок","price":25},
	{"key":"cake","title":"🎂 Торт","price":50},
	{"key":"rocket","title":"🚀 Ракета","price":50},
	{"key":"trophy","title":"🏆 Кубок","price":100},
	{"key":"ring","title":"💍 Кольцо","price":100}
]`

var defaults = map[string]string{
	KeyDailyMin:          "1",
	KeyDailyMax:          "3",
	KeyDailyCooldown:     "24",
	KeyLuckMin:           "0",
	KeyLuckMax:           "5",
	KeyLuckCooldown:      "6",
	KeyRefReward:         "2",
	KeyGroupReward:       "1",
	KeyGroupMinMembers:   "10",
	KeyPostReward:        "0.3",
	KeyMinWithdrawal:     "15",
	KeyWithdrawalOptions: "[15,25,50,100]",
	KeyGiftPrices:        defaultGifts,
}

// intKeys hold whole numbers, the rest of the scalar keys are floats.
var intKeys = map[string]bool{
	KeyDailyMin:        true,
	KeyDailyMax:        true,
	KeyDailyCooldown:   true,
	KeyLuckMin:         true,
	KeyLuckMax:         true,
	KeyLuckCooldown:    true,
	KeyGroupMinMembers: true,
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Keys lists every setting an admin may change with Set.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Service) values(ctx context.Context) (map[string]string, error) {
	stored, err := s.repo.All(ctx)
	if err != nil {
		zap.L().Error("failed to load settings", zap.Error(err))
		return nil, err
	}
	merged := make(map[string]string, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range stored {
		if _, ok := defaults[k]; !ok {
			continue
		}
		if err := check(k, v); err != nil {
			zap.L().Warn("ignoring broken setting", zap.String("key", k), zap.String("value", v), zap.Error(err))
			continue
		}
		merged[k] = v
	}
	return merged, nil
}

// Economy returns the current tunables with stored overrides applied.
func (s *Service) Economy(ctx context.Context) (*domain.Economy, error) {
	v, err := s.values(ctx)
	if err != nil {
		return nil, err
	}

	atoi := func(k string) int {
		n, _ := strconv.Atoi(v[k])
		return n
	}
	atof := func(k string) float64 {
		f, _ := strconv.ParseFloat(v[k], 64)
		return f
	}

	var options []float64
	_ = json.Unmarshal([]byte(v[KeyWithdrawalOptions]), &options)
	sort.Float64s(options)

	return &domain.Economy{
		DailyMin:          atoi(KeyDailyMin),
		DailyMax:          atoi(KeyDailyMax),
		DailyCooldown:     time.Duration(atoi(KeyDailyCooldown)) * time.Hour,
		LuckMin:           atoi(KeyLuckMin),
		LuckMax:           atoi(KeyLuckMax),
		LuckCooldown:      time.Duration(atoi(KeyLuckCooldown)) * time.Hour,
		ReferralReward:    atof(KeyRefReward),
		GroupReward:       atof(KeyGroupReward),
		GroupMinMembers:   atoi(KeyGroupMinMembers),
		PostReward:        atof(KeyPostReward),
		MinWithdrawal:     atof(KeyMinWithdrawal),
		WithdrawalOptions: options,
	}, nil
}

// Set validates and stores one setting.
func (s *Service) Set(ctx context.Context, key, value string) error {
	if _, ok := defaults[key]; !ok {
		return ErrUnknownSetting
	}
	if err := check(key, value); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, key, value); err != nil {
		zap.L().Error("failed to save setting", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func check(key, value string) error {
	switch key {
	case KeyWithdrawalOptions:
		var options []float64
		if err := json.Unmarshal([]byte(value), &options); err != nil || len(options) == 0 {
			return fmt.Errorf("%w: expected a JSON list of amounts", ErrInvalidValue)
		}
		for _, o := range options {
			if !validate.IsAmount(o) {
				return fmt.Errorf("%w: amount %v", ErrInvalidValue, o)
			}
		}
		return nil
	case KeyGiftPrices:
		_, err := parseGifts(value)
		return err
	}

	if intKeys[key] {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: expected a non-negative integer", ErrInvalidValue)
		}
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("%w: expected a non-negative number", ErrInvalidValue)
	}
	return nil
}

func parseGifts(raw string) ([]domain.Gift, error) {
	var gifts []domain.Gift
	if err := json.Unmarshal([]byte(raw), &gifts); err != nil || len(gifts) == 0 {
		return nil, fmt.Errorf("%w: expected a JSON list of gifts", ErrInvalidValue)
	}
	seen := make(map[string]bool, len(gifts))
	for _, g := range gifts {
		if !validate.IsItemKey(g.Key) || seen[g.Key] || g.Title == "" || !validate.IsAmount(g.Price) {
			return nil, fmt.Errorf("%w: gift %q", ErrInvalidValue, g.Key)
		}
		seen[g.Key] = true
	}
	return gifts, nil
}

func (s *Service) Gifts(ctx context.Context) ([]domain.Gift, error) {
	v, err := s.values(ctx)
	if err != nil {
		return nil, err
	}
	return parseGifts(v[KeyGiftPrices])
}

func (s *Service) Gift(ctx context.Context, key string) (*domain.Gift, error) {
	gifts, err := s.Gifts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range gifts {
		if gifts[i].Key == key {
			return &gifts[i], nil
		}
	}
	return nil, ErrUnknownGift
}

func (s *Service) storedBoost(ctx context.Context) (*domain.Boost, error) {
	raw, ok, err := s.repo.Get(ctx, KeyBoost)
	if err != nil {
		zap.L().Error("failed to load boost", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var boost domain.Boost
	if err := json.Unmarshal([]byte(raw), &boost); err != nil {
		zap.L().Warn("ignoring broken boost value", zap.String("value", raw), zap.Error(err))
		return nil, nil
	}
	return &boost, nil
}

// Boost returns the running boost or nil.
func (s *Service) Boost(ctx context.Context) (*domain.Boost, error) {
	boost, err := s.storedBoost(ctx)
	if err != nil || !boost.Active(s.now()) {
		return nil, err
	}
	return boost, nil
}

// Multiplier is the factor applied to daily and luck rewards right now.
func (s *Service) Multiplier(ctx context.Context) (float64, error) {
	boost, err := s.Boost(ctx)
	if err != nil {
		return 0, err
	}
	if boost == nil {
		return 1, nil
	}
	return boost.Multiplier, nil
}

func (s *Service) SetBoost(ctx context.Context, multiplier float64, d time.Duration) (*domain.Boost, error) {
	if multiplier <= 0 || d <= 0 {
		return nil, ErrInvalidValue
	}
	boost := &domain.Boost{Multiplier: multiplier, ExpiresAt: s.now().Add(d).UTC()}
	raw, err := json.Marshal(boost)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Set(ctx, KeyBoost, string(raw)); err != nil {
		zap.L().Error("failed to save boost", zap.Error(err))
		return nil, err
	}
	return boost, nil
}

// ClearExpiredBoost drops a boost whose time is up and reports whether it did.
func (s *Service) ClearExpiredBoost(ctx context.Context, now time.Time) (bool, error) {
	boost, err := s.storedBoost(ctx)
	if err != nil {
		return false, err
	}
	if boost == nil || now.Before(boost.ExpiresAt) {
		return false, nil
	}
	if err := s.repo.Delete(ctx, KeyBoost); err != nil {
		zap.L().Error("failed to clear boost", zap.Error(err))
		return false, err
	}
	return true, nil
}
