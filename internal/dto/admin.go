package dto

import (
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
)

type BoostDTO struct {
	Multiplier float64   `json:"multiplier" example:"2"`
	ExpiresAt  time.Time `json:"expires_at" example:"2025-03-01T18:00:00Z"`
}

type StatsResponseDTO struct {
	TotalUsers         int       `json:"total_users" example:"1520"`
	TotalStars         float64   `json:"total_stars" example:"8410.5"`
	TotalWithdrawn     float64   `json:"total_withdrawn" example:"2300"`
	PendingWithdrawals int       `json:"pending_withdrawals" example:"4"`
	Boost              *BoostDTO `json:"boost,omitempty"`
}

type WithdrawalDTO struct {
	ID        int64     `json:"id" example:"42"`
	UserID    int64     `json:"user_id" example:"123456789"`
	Amount    float64   `json:"amount" example:"25"`
	Item      string    `json:"item,omitempty" example:"rose"`
	Status    string    `json:"status" example:"pending"`
	CreatedAt time.Time `json:"created_at" example:"2025-03-01T12:00:00Z"`
}

type UserResponseDTO struct {
	ID             int64            `json:"id" example:"123456789"`
	Username       string           `json:"username,omitempty" example:"durov"`
	FirstName      string           `json:"first_name,omitempty" example:"Pavel"`
	Stars          float64          `json:"stars" example:"12.5"`
	Referrals      int              `json:"referrals" example:"3"`
	TotalEarned    float64          `json:"total_earned" example:"40"`
	TotalWithdrawn float64          `json:"total_withdrawn" example:"25"`
	ReferredBy     *int64           `json:"referred_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at" example:"2025-03-01T12:00:00Z"`
	Withdrawals    []WithdrawalDTO  `json:"withdrawals"`
	Transactions   []TransactionDTO `json:"transactions"`
}

type TransactionDTO struct {
	Amount      float64   `json:"amount" example:"2"`
	Type        string    `json:"type" example:"daily"`
	Description string    `json:"description" example:"daily bonus"`
	CreatedAt   time.Time `json:"created_at" example:"2025-03-01T12:00:00Z"`
}

func NewWithdrawalDTO(w domain.Withdrawal) WithdrawalDTO {
	out := WithdrawalDTO{
		ID:        w.ID,
		UserID:    w.UserID,
		Amount:    w.Amount,
		Status:    string(w.Status),
		CreatedAt: w.CreatedAt,
	}
	if w.IsGift() {
		out.Item = *w.Item
	}
	return out
}

func NewTransactionDTO(tx domain.Transaction) TransactionDTO {
	return TransactionDTO{
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}
