package domain

import (
	"fmt"
	"time"
)

type User struct {
	ID             int64      `db:"user_id"`
	Username       string     `db:"username"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Stars          float64    `db:"stars"`
	Referrals      int        `db:"referrals"`
	TotalEarned    float64    `db:"total_earned"`
	TotalWithdrawn float64    `db:"total_withdrawn"`
	ReferredBy     *int64     `db:"referred_by"`
	RefCode        string     `db:"ref_code"`
	LastDaily      *time.Time `db:"last_daily"`
	LastLuck       *time.Time `db:"last_luck"`
	CreatedAt      time.Time  `db:"created_at"`
}

// DisplayName picks the most readable name telegram gave us.
func (u *User) DisplayName() string {
	switch {
	case u.Username != "":
		return "@" + u.Username
	case u.FirstName != "":
		return u.FirstName
	default:
		return fmt.Sprintf("User%d", u.ID)
	}
}

func RefCodeFor(userID int64) string {
	return fmt.Sprintf("ref%d", userID)
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type Withdrawal struct {
	ID        int64            `db:"id"`
	UserID    int64            `db:"user_id"`
	Amount    float64          `db:"amount"`
	Item      *string          `db:"item"`
	Status    WithdrawalStatus `db:"status"`
	AdminID   *int64           `db:"admin_id"`
	MessageID *int             `db:"message_id"`
	CreatedAt time.Time        `db:"created_at"`
	UpdatedAt *time.Time       `db:"updated_at"`
}

func (w *Withdrawal) IsGift() bool {
	return w.Item != nil && *w.Item != ""
}

type TransactionType string

const (
	TxDaily      TransactionType = "daily"
	TxLuck       TransactionType = "luck"
	TxReferral   TransactionType = "referral"
	TxGroup      TransactionType = "group"
	TxPost       TransactionType = "post"
	TxPromo      TransactionType = "promo"
	TxAdmin      TransactionType = "admin"
	TxWithdrawal TransactionType = "withdrawal"
	TxRefund     TransactionType = "refund"
	TxGift       TransactionType = "gift"
	TxMarket     TransactionType = "market"
	TxDuel       TransactionType = "duel"
)

type Transaction struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Amount      float64         `db:"amount"`
	Type        TransactionType `db:"type"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

type PromoCode struct {
	Code      string     `db:"code"`
	Reward    float64    `db:"reward"`
	MaxUses   int        `db:"max_uses"`
	Uses      int        `db:"uses"`
	ExpiresAt *time.Time `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
}

type Gift struct {
	Key   string  `json:"key"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type InventoryItem struct {
	UserID   int64  `db:"user_id"`
	Item     string `db:"item"`
	Quantity int    `db:"quantity"`
}

type LotStatus string

const (
	LotOpen      LotStatus = "open"
	LotSold      LotStatus = "sold"
	LotCancelled LotStatus = "cancelled"
)

type MarketLot struct {
	ID        int64      `db:"id"`
	SellerID  int64      `db:"seller_id"`
	Item      string     `db:"item"`
	Price     float64    `db:"price"`
	Status    LotStatus  `db:"status"`
	BuyerID   *int64     `db:"buyer_id"`
	CreatedAt time.Time  `db:"created_at"`
	ClosedAt  *time.Time `db:"closed_at"`
}

type Post struct {
	ID        string    `db:"id"`
	Text      string    `db:"text"`
	Reward    float64   `db:"reward"`
	CreatedBy int64     `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type DuelStatus string

const (
	DuelOpen      DuelStatus = "open"
	DuelFinished  DuelStatus = "finished"
	DuelCancelled DuelStatus = "cancelled"
)

type Duel struct {
	ID         int64      `db:"id"`
	CreatorID  int64      `db:"creator_id"`
	OpponentID *int64     `db:"opponent_id"`
	Stake      float64    `db:"stake"`
	Status     DuelStatus `db:"status"`
	WinnerID   *int64     `db:"winner_id"`
	CreatedAt  time.Time  `db:"created_at"`
	FinishedAt *time.Time `db:"finished_at"`
}

type Boost struct {
	Multiplier float64   `json:"multiplier"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (b *Boost) Active(now time.Time) bool {
	return b != nil && b.Multiplier > 0 && now.Before(b.ExpiresAt)
}

// Economy is the set of tunables read from the settings table.
type Economy struct {
	DailyMin          int
	DailyMax          int
	DailyCooldown     time.Duration
	LuckMin           int
	LuckMax           int
	LuckCooldown      time.Duration
	ReferralReward    float64
	GroupReward       float64
	GroupMinMembers   int
	PostReward        float64
	MinWithdrawal     float64
	WithdrawalOptions []float64
}

type Stats struct {
	TotalUsers         int     `db:"total_users"`
	TotalStars         float64 `db:"total_stars"`
	TotalWithdrawn     float64 `db:"total_withdrawn"`
	PendingWithdrawals int     `db:"pending_withdrawals"`
}
