package bot

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/service/settingsservice"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pendingLimit = 10

func (b *Bot) adminPanel(_ context.Context, req *request) error {
	kb := adminKeyboard()
	b.show(req, adminText(), &kb)
	return nil
}

func (b *Bot) adminStats(ctx context.Context, req *request) error {
	s, err := b.svc.Stats.Summary(ctx)
	if err != nil {
		return err
	}
	kb := adminKeyboard()
	b.show(req, statsText(s.TotalUsers, s.PendingWithdrawals, s.TotalStars, s.TotalWithdrawn, s.Boost, b.now()), &kb)
	return nil
}

func (b *Bot) adminPending(ctx context.Context, req *request) error {
	list, err := b.svc.Withdrawals.Pending(ctx, pendingLimit)
	if err != nil {
		return err
	}
	kb := pendingKeyboard(list)
	b.show(req, pendingText(list), &kb)
	return nil
}

func (b *Bot) approve(ctx context.Context, req *request) error {
	return b.decide(ctx, req, b.svc.Withdrawals.Approve)
}

func (b *Bot) reject(ctx context.Context, req *request) error {
	return b.decide(ctx, req, b.svc.Withdrawals.Reject)
}

// decide settles a request, updates its channel card and tells the user.
func (b *Bot) decide(ctx context.Context, req *request, settle func(ctx context.Context, id, adminID int64) (*domain.Withdrawal, error)) error {
	id, err := parseID(req.args)
	if err != nil {
		return err
	}
	w, err := settle(ctx, id, req.from.ID)
	if err != nil {
		return err
	}

	admin := "@" + req.from.UserName
	if req.from.UserName == "" {
		admin = req.from.FirstName
	}
	card := decisionCardText(w, admin, b.now())
	onCard := b.cfg.WithdrawalChannel != 0 && req.chatID == b.cfg.WithdrawalChannel
	if !onCard && w.MessageID != nil && b.cfg.WithdrawalChannel != 0 {
		edit := tgbotapi.NewEditMessageText(b.cfg.WithdrawalChannel, *w.MessageID, card)
		edit.ParseMode = tgbotapi.ModeHTML
		b.deliver(b.cfg.WithdrawalChannel, edit)
	}
	b.sendTo(w.UserID, decisionUserText(w, b.cfg.SupportUsername), nil)

	verdict := "одобрена"
	if w.Status == domain.WithdrawalRejected {
		verdict = "отклонена"
	}
	b.answer(req, fmt.Sprintf("Заявка #%d %s", w.ID, verdict), false)

	if onCard {
		b.show(req, card, nil)
		return nil
	}
	return b.adminPending(ctx, req)
}

func (b *Bot) give(ctx context.Context, req *request) error {
	const usage = usageError("Использование: /give ID СУММА")
	fields := strings.Fields(req.args)
	if len(fields) != 2 {
		return usage
	}
	userID, err := parseID(fields[0])
	if err != nil {
		return usage
	}
	amount, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || !validate.IsAmount(math.Abs(amount)) {
		return usage
	}
	user, err := b.svc.Users.Give(ctx, req.from.ID, userID, amount)
	if err != nil {
		return err
	}
	b.show(req, fmt.Sprintf("✅ Пользователю <code>%d</code>: %+g ⭐\nБаланс: <b>%s</b>", userID, amount, formatStars(user.Stars)), nil)
	if amount > 0 {
		b.sendTo(userID, fmt.Sprintf("🎁 Администратор начислил вам <b>+%s</b> ⭐", formatStars(amount)), nil)
	}
	return nil
}

func (b *Bot) addPromo(ctx context.Context, req *request) error {
	const usage = usageError("Использование: /addpromo КОД НАГРАДА [АКТИВАЦИЙ] [ЧАСОВ]")
	fields := strings.Fields(req.args)
	if len(fields) < 2 || len(fields) > 4 {
		return usage
	}
	reward, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return usage
	}
	var uses, hours int
	if len(fields) > 2 {
		if uses, err = strconv.Atoi(fields[2]); err != nil {
			return usage
		}
	}
	if len(fields) > 3 {
		if hours, err = strconv.Atoi(fields[3]); err != nil {
			return usage
		}
	}

	promo, err := b.svc.Promos.Create(ctx, fields[0], reward, uses, time.Duration(hours)*time.Hour)
	if err != nil {
		return err
	}
	limit := "без лимита"
	if promo.MaxUses > 0 {
		limit = strconv.Itoa(promo.MaxUses)
	}
	expires := "бессрочно"
	if promo.ExpiresAt != nil {
		expires = "до " + promo.ExpiresAt.Format(timeLayout)
	}
	b.show(req, fmt.Sprintf("🎁 Промокод <code>%s</code> создан\n\nНаграда: %s ⭐\nАктиваций: %s\nДействует: %s",
		escape(promo.Code), formatStars(promo.Reward), limit, expires), nil)
	return nil
}

// send stores the post and broadcasts it in the background. The admin gets
// a report once every user has been tried.
func (b *Bot) send(ctx context.Context, req *request) error {
	if req.args == "" {
		return usageError("Использование: /send ТЕКСТ")
	}
	post, err := b.svc.Posts.Create(ctx, req.from.ID, req.args)
	if err != nil {
		return err
	}
	ids, err := b.svc.Posts.Recipients(ctx)
	if err != nil {
		return err
	}
	b.show(req, fmt.Sprintf("📤 Рассылка запущена: %d получателей", len(ids)), nil)

	adminChat := req.chatID
	runCtx := b.runCtx
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		report, err := b.broadcaster.Send(runCtx, ids, func(_ context.Context, userID int64) error {
			_, err := b.api.Send(postMessage(userID, post))
			return err
		})
		if err != nil {
			zap.L().Warn("broadcast interrupted", zap.String("post_id", post.ID), zap.Error(err))
		}
		if report == nil {
			return
		}
		b.sendTo(adminChat, fmt.Sprintf("✅ Рассылка завершена\n\nДоставлено: %d\nОшибок: %d", report.Delivered, report.Failed), nil)
	}()
	return nil
}

func postMessage(userID int64, post *domain.Post) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(userID, "📢 "+escape(post.Text))
	msg.ParseMode = tgbotapi.ModeHTML
	if kb := postKeyboard(post); kb != nil {
		msg.ReplyMarkup = *kb
	}
	return msg
}

func (b *Bot) boost(ctx context.Context, req *request) error {
	const usage = usageError("Использование: /boost МНОЖИТЕЛЬ ЧАСОВ")
	fields := strings.Fields(req.args)
	if len(fields) != 2 {
		return usage
	}
	multiplier, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return usage
	}
	hours, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return usage
	}
	boost, err := b.svc.Settings.SetBoost(ctx, multiplier, time.Duration(hours*float64(time.Hour)))
	if err != nil {
		return err
	}
	b.show(req, fmt.Sprintf("🚀 Буст x%s до %s", formatStars(boost.Multiplier), boost.ExpiresAt.Local().Format(timeLayout)), nil)
	return nil
}

func (b *Bot) set(ctx context.Context, req *request) error {
	key, value, ok := strings.Cut(req.args, " ")
	if !ok || strings.TrimSpace(value) == "" {
		return usageError("Использование: /set КЛЮЧ ЗНАЧЕНИЕ\n\nКлючи: " + strings.Join(settingsservice.Keys(), ", "))
	}
	if err := b.svc.Settings.Set(ctx, key, strings.TrimSpace(value)); err != nil {
		return err
	}
	b.show(req, fmt.Sprintf("⚙️ <code>%s</code> = <code>%s</code>", escape(key), escape(strings.TrimSpace(value))), nil)
	return nil
}
