package bot

import (
	"errors"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/service/duelservice"
	"github.com/GlebRadaev/starsbot/internal/service/postservice"
	"github.com/GlebRadaev/starsbot/internal/service/promoservice"
	"github.com/GlebRadaev/starsbot/internal/service/rewardservice"
	"github.com/GlebRadaev/starsbot/internal/service/settingsservice"
	"github.com/GlebRadaev/starsbot/internal/service/shopservice"
	"github.com/GlebRadaev/starsbot/internal/service/userservice"
	"github.com/GlebRadaev/starsbot/internal/service/withdrawalservice"
	"github.com/GlebRadaev/starsbot/pkg/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var (
	errAccessDenied = errors.New("access denied")
	errBadArgument  = errors.New("bad argument")
)

// usageError carries the hint shown when a command is called wrong.
type usageError string

func (e usageError) Error() string { return string(e) }

// request is one command or button press.
type request struct {
	from       *tgbotapi.User
	chatID     int64
	messageID  int
	callbackID string
	args       string
	answered   bool
}

func registerInput(from *tgbotapi.User, payload string) userservice.RegisterInput {
	return userservice.RegisterInput{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
		Payload:   payload,
	}
}

// show edits the pressed message in place, or sends a new one for commands.
func (b *Bot) show(req *request, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	if req.messageID != 0 {
		edit := tgbotapi.NewEditMessageText(req.chatID, req.messageID, text)
		edit.ParseMode = tgbotapi.ModeHTML
		edit.DisableWebPagePreview = true
		edit.ReplyMarkup = markup
		b.deliver(req.chatID, edit)
		return
	}
	b.sendTo(req.chatID, text, markup)
}

func (b *Bot) sendTo(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	return b.deliver(chatID, msg)
}

// deliver sends and only logs failures: a blocked user or a stale message
// must not abort the handler.
func (b *Bot) deliver(chatID int64, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	sent, err := b.api.Send(c)
	if err != nil {
		zap.L().Warn("failed to send telegram message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return sent, err
}

// answer closes the callback spinner, optionally with a popup. For commands
// the text goes out as a plain message.
func (b *Bot) answer(req *request, text string, alert bool) {
	if req.callbackID == "" {
		if text != "" {
			b.sendTo(req.chatID, text, nil)
		}
		return
	}
	req.answered = true
	cb := tgbotapi.NewCallback(req.callbackID, text)
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(req.callbackID, text)
	}
	if _, err := b.api.Request(cb); err != nil {
		zap.L().Warn("failed to answer callback", zap.Int64("user_id", req.from.ID), zap.Error(err))
	}
}

func (b *Bot) fail(req *request, err error) {
	text, known := errorText(err)
	if !known {
		logger.ForUser(req.from.ID).Error("handler failed", zap.Error(err))
	}
	b.answer(req, text, true)
}

var errorTexts = []struct {
	err  error
	text string
}{
	{errAccessDenied, "⛔ Доступ запрещён"},
	{errBadArgument, "❌ Неверный аргумент"},
	{domain.ErrUserNotFound, "Сначала нажмите /start"},
	{domain.ErrInsufficientFunds, "❌ Недостаточно звёзд"},
	{domain.ErrAlreadyProcessed, "Заявка уже обработана"},
	{domain.ErrItemNotOwned, "❌ У вас нет этого подарка"},
	{domain.ErrInvalidAmount, "❌ Неверная сумма"},
	{withdrawalservice.ErrWithdrawalNotFound, "Заявка не найдена"},
	{promoservice.ErrInvalidCode, "❌ Неверный формат промокода"},
	{promoservice.ErrPromoExists, "❌ Такой промокод уже есть"},
	{promoservice.ErrPromoNotFound, "❌ Промокод не найден"},
	{promoservice.ErrPromoExpired, "⌛ Срок действия промокода истёк"},
	{promoservice.ErrPromoExhausted, "❌ Активации промокода закончились"},
	{promoservice.ErrPromoUsed, "❌ Вы уже активировали этот промокод"},
	{settingsservice.ErrUnknownSetting, "❌ Нет такой настройки"},
	{settingsservice.ErrInvalidValue, "❌ Неверное значение"},
	{settingsservice.ErrUnknownGift, "❌ Нет такого подарка"},
	{shopservice.ErrLotNotFound, "❌ Лот не найден"},
	{shopservice.ErrLotClosed, "❌ Лот уже продан или снят"},
	{shopservice.ErrOwnLot, "❌ Это ваш лот"},
	{shopservice.ErrNotSeller, "❌ Это не ваш лот"},
	{duelservice.ErrDuelNotFound, "❌ Дуэль не найдена"},
	{duelservice.ErrDuelClosed, "❌ Дуэль уже завершена"},
	{duelservice.ErrOwnDuel, "❌ Нельзя принять свою дуэль"},
	{duelservice.ErrNotCreator, "❌ Это не ваша дуэль"},
	{postservice.ErrEmptyPost, "❌ Пустой текст поста"},
	{postservice.ErrPostNotFound, "❌ Пост не найден"},
	{postservice.ErrAlreadyClaimed, "Награда за этот пост уже получена"},
}

// errorText maps a failure to what the user sees and reports whether the
// failure was an expected one.
func errorText(err error) (string, bool) {
	var cooldown *rewardservice.CooldownError
	if errors.As(err, &cooldown) {
		return "⏳ Будет доступно через " + formatDuration(cooldown.Left), true
	}
	var usage usageError
	if errors.As(err, &usage) {
		return string(usage), true
	}
	for _, e := range errorTexts {
		if errors.Is(err, e.err) {
			return e.text, true
		}
	}
	return "⚠️ Что-то пошло не так, попробуйте позже", false
}
