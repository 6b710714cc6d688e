package shopservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/pg"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=shopservice.go -destination=mock_shopservice.go -package=shopservice

type UserRepo interface {
	Debit(ctx context.Context, userID int64, amount float64) error
	AddStars(ctx context.Context, userID int64, amount float64) error
}

type InventoryRepo interface {
	Add(ctx context.Context, userID int64, item string, quantity int) error
	Remove(ctx context.Context, userID int64, item string) error
	List(ctx context.Context, userID int64) ([]domain.InventoryItem, error)
}

type MarketRepo interface {
	Create(ctx context.Context, lot *domain.MarketLot) (*domain.MarketLot, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.MarketLot, error)
	ListOpen(ctx context.Context, limit int) ([]domain.MarketLot, error)
	Close(ctx context.Context, id int64, status domain.LotStatus, buyerID *int64) error
}

type LedgerRepo interface {
	Add(ctx context.Context, tx *domain.Transaction) error
}

type Settings interface {
	Gifts(ctx context.Context) ([]domain.Gift, error)
	Gift(ctx context.Context, key string) (*domain.Gift, error)
}

var (
	ErrLotNotFound = errors.New("lot not found")
	ErrLotClosed   = errors.New("lot is no longer on sale")
	ErrOwnLot      = errors.New("can't buy own lot")
	ErrNotSeller   = errors.New("lot belongs to another user")
)

type Service struct {
	users     UserRepo
	inventory InventoryRepo
	market    MarketRepo
	ledger    LedgerRepo
	settings  Settings
	txManager pg.TXManager
}

func New(users UserRepo, inventory InventoryRepo, market MarketRepo, ledger LedgerRepo, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		users:     users,
		inventory: inventory,
		market:    market,
		ledger:    ledger,
		settings:  settings,
		txManager: txManager,
	}
}

func (s *Service) Gifts(ctx context.Context) ([]domain.Gift, error) {
	return s.settings.Gifts(ctx)
}

// BuyGift pays the shop price and puts one gift into the inventory.
func (s *Service) BuyGift(ctx context.Context, userID int64, key string) (*domain.Gift, error) {
	gift, err := s.settings.Gift(ctx, key)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.users.Debit(ctx, userID, gift.Price); err != nil {
			return err
		}
		if err := s.inventory.Add(ctx, userID, gift.Key, 1); err != nil {
			return err
		}
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      -gift.Price,
			Type:        domain.TxGift,
			Description: "gift " + gift.Key,
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Error("failed to buy gift", zap.Int64("user_id", userID), zap.String("item", key), zap.Error(err))
		}
		return nil, err
	}
	return gift, nil
}

func (s *Service) Inventory(ctx context.Context, userID int64) ([]domain.InventoryItem, error) {
	return s.inventory.List(ctx, userID)
}

// Sell moves one item from the inventory onto the market.
func (s *Service) Sell(ctx context.Context, userID int64, item string, price float64) (*domain.MarketLot, error) {
	if !validate.IsItemKey(item) {
		return nil, domain.ErrItemNotOwned
	}
	if !validate.IsAmount(price) {
		return nil, domain.ErrInvalidAmount
	}

	var lot *domain.MarketLot
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.inventory.Remove(ctx, userID, item); err != nil {
			return err
		}
		var err error
		lot, err = s.market.Create(ctx, &domain.MarketLot{SellerID: userID, Item: item, Price: price})
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrItemNotOwned) {
			zap.L().Error("failed to open lot", zap.Int64("user_id", userID), zap.String("item", item), zap.Error(err))
		}
		return nil, err
	}
	return lot, nil
}

func (s *Service) Market(ctx context.Context, limit int) ([]domain.MarketLot, error) {
	return s.market.ListOpen(ctx, limit)
}

func (s *Service) openLot(ctx context.Context, lotID int64) (*domain.MarketLot, error) {
	lot, err := s.market.GetForUpdate(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, ErrLotNotFound
	}
	if lot.Status != domain.LotOpen {
		return nil, ErrLotClosed
	}
	return lot, nil
}

// BuyLot pays the seller and hands the item over to the buyer.
func (s *Service) BuyLot(ctx context.Context, buyerID, lotID int64) (*domain.MarketLot, error) {
	var lot *domain.MarketLot
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if lot, err = s.openLot(ctx, lotID); err != nil {
			return err
		}
		if lot.SellerID == buyerID {
			return ErrOwnLot
		}
		if err := s.users.Debit(ctx, buyerID, lot.Price); err != nil {
			return err
		}
		if err := s.users.AddStars(ctx, lot.SellerID, lot.Price); err != nil {
			return err
		}
		if err := s.inventory.Add(ctx, buyerID, lot.Item, 1); err != nil {
			return err
		}
		if err := s.market.Close(ctx, lot.ID, domain.LotSold, &buyerID); err != nil {
			return err
		}
		if err := s.ledger.Add(ctx, &domain.Transaction{
			UserID:      buyerID,
			Amount:      -lot.Price,
			Type:        domain.TxMarket,
			Description: fmt.Sprintf("lot #%d bought", lot.ID),
		}); err != nil {
			return err
		}
		return s.ledger.Add(ctx, &domain.Transaction{
			UserID:      lot.SellerID,
			Amount:      lot.Price,
			Type:        domain.TxMarket,
			Description: fmt.Sprintf("lot #%d sold", lot.ID),
		})
	})
	if err != nil {
		s.logLot("buy", buyerID, lotID, err)
		return nil, err
	}
	lot.Status = domain.LotSold
	lot.BuyerID = &buyerID
	return lot, nil
}

// CancelLot takes the seller's own open lot off the market.
func (s *Service) CancelLot(ctx context.Context, userID, lotID int64) (*domain.MarketLot, error) {
	var lot *domain.MarketLot
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if lot, err = s.openLot(ctx, lotID); err != nil {
			return err
		}
		if lot.SellerID != userID {
			return ErrNotSeller
		}
		if err := s.inventory.Add(ctx, userID, lot.Item, 1); err != nil {
			return err
		}
		return s.market.Close(ctx, lot.ID, domain.LotCancelled, nil)
	})
	if err != nil {
		s.logLot("cancel", userID, lotID, err)
		return nil, err
	}
	lot.Status = domain.LotCancelled
	return lot, nil
}

func (s *Service) logLot(action string, userID, lotID int64, err error) {
	for _, expected := range []error{ErrLotNotFound, ErrLotClosed, ErrOwnLot, ErrNotSeller, domain.ErrInsufficientFunds, domain.ErrAlreadyProcessed} {
		if errors.Is(err, expected) {
			return
		}
	}
	zap.L().Error("failed to "+action+" lot", zap.Int64("user_id", userID), zap.Int64("lot_id", lotID), zap.Error(err))
}
