package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/dto"
	"github.com/GlebRadaev/starsbot/internal/service/statsservice"
	"github.com/GlebRadaev/starsbot/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type StatsService interface {
	Summary(ctx context.Context) (*statsservice.Summary, error)
}

type WithdrawalService interface {
	Pending(ctx context.Context, limit int) ([]domain.Withdrawal, error)
	History(ctx context.Context, userID int64, limit int) ([]domain.Withdrawal, error)
}

type UserService interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	History(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
}

const (
	defaultLimit = 50
	maxLimit     = 200
	historyLimit = 20
)

type AdminHandler struct {
	stats       StatsService
	withdrawals WithdrawalService
	users       UserService
}

func New(stats StatsService, withdrawals WithdrawalService, users UserService) *AdminHandler {
	return &AdminHandler{
		stats:       stats,
		withdrawals: withdrawals,
		users:       users,
	}
}

// Stats godoc
//
//	@Summary		Bot statistics
//	@Description	Real totals from the database and the running boost, if any.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.StatsResponseDTO{
		TotalUsers:         summary.TotalUsers,
		TotalStars:         summary.TotalStars,
		TotalWithdrawn:     summary.TotalWithdrawn,
		PendingWithdrawals: summary.PendingWithdrawals,
	}
	if summary.Boost != nil {
		resp.Boost = &dto.BoostDTO{Multiplier: summary.Boost.Multiplier, ExpiresAt: summary.Boost.ExpiresAt}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PendingWithdrawals godoc
//
//	@Summary		Pending withdrawals
//	@Description	Withdrawal and gift requests waiting for an admin decision, oldest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Max rows (default 50, max 200)"
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/pending [get]
func (h *AdminHandler) PendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = min(n, maxLimit)
	}

	withdrawals, err := h.withdrawals.Pending(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.WithdrawalDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.NewWithdrawalDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUser godoc
//
//	@Summary		User card
//	@Description	Balance, counters, the latest withdrawals and ledger entries of one user.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Telegram user id"
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	history, err := h.withdrawals.History(r.Context(), userID, historyLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	ledger, err := h.users.History(r.Context(), userID, historyLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	resp := dto.UserResponseDTO{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		Stars:          user.Stars,
		Referrals:      user.Referrals,
		TotalEarned:    user.TotalEarned,
		TotalWithdrawn: user.TotalWithdrawn,
		ReferredBy:     user.ReferredBy,
		CreatedAt:      user.CreatedAt,
		Withdrawals:    make([]dto.WithdrawalDTO, len(history)),
		Transactions:   make([]dto.TransactionDTO, len(ledger)),
	}
	for i, wd := range history {
		resp.Withdrawals[i] = dto.NewWithdrawalDTO(wd)
	}
	for i, tx := range ledger {
		resp.Transactions[i] = dto.NewTransactionDTO(tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
