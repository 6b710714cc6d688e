package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func joined(u *tgbotapi.ChatMemberUpdated) bool {
	switch u.OldChatMember.Status {
	case "left", "kicked", "":
	default:
		return false
	}
	return u.NewChatMember.Status == "member" || u.NewChatMember.Status == "administrator"
}

// handleMyChatMember pays the group's admins when the bot is added to a
// large enough group.
func (b *Bot) handleMyChatMember(ctx context.Context, u *tgbotapi.ChatMemberUpdated) {
	if !(u.Chat.IsGroup() || u.Chat.IsSuperGroup()) || !joined(u) {
		return
	}
	log := zap.L().With(zap.Int64("chat_id", u.Chat.ID), zap.String("title", u.Chat.Title))

	chat := tgbotapi.ChatConfig{ChatID: u.Chat.ID}
	count, err := b.api.GetChatMembersCount(tgbotapi.ChatMemberCountConfig{ChatConfig: chat})
	if err != nil {
		log.Warn("failed to count group members", zap.Error(err))
		return
	}
	admins, err := b.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{ChatConfig: chat})
	if err != nil {
		log.Warn("failed to list group admins", zap.Error(err))
		return
	}
	var adminIDs []int64
	for _, a := range admins {
		if a.User != nil && !a.User.IsBot {
			adminIDs = append(adminIDs, a.User.ID)
		}
	}

	rewarded, err := b.svc.Rewards.RewardGroup(ctx, u.Chat.ID, count, adminIDs)
	if err != nil {
		log.Error("failed to reward group admins", zap.Error(err))
		return
	}
	log.Info("bot added to group", zap.Int("members", count), zap.Int("rewarded", len(rewarded)))

	b.sendTo(u.Chat.ID, fmt.Sprintf("👋 Всем привет! Я помогаю зарабатывать звёзды.\n\nНапишите мне в личку: @%s", b.username), nil)
	for _, r := range rewarded {
		b.sendTo(r.UserID, fmt.Sprintf("🎉 Спасибо за добавление бота в группу «%s»!\n\n<b>+%s</b> ⭐ на баланс", escape(u.Chat.Title), formatStars(r.Amount)), nil)
	}
}
