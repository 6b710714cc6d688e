package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/pkg/validate"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	topLimit  = 10
	duelParam = "duel_"
)

func (b *Bot) start(ctx context.Context, req *request) error {
	res, err := b.svc.Users.Register(ctx, registerInput(req.from, req.args))
	if err != nil {
		return err
	}
	if res.ReferrerID != nil && res.Reward > 0 {
		b.sendTo(*res.ReferrerID, fmt.Sprintf("🎉 По вашей ссылке пришёл новый пользователь!\n\n<b>+%s</b> ⭐ на баланс", formatStars(res.Reward)), nil)
	}

	if !b.subscribed(req.from.ID) {
		kb := subscribeKeyboard(b.cfg.ChannelUsername)
		b.show(req, subscribeText(b.cfg.ChannelUsername), &kb)
		return nil
	}

	if strings.HasPrefix(req.args, duelParam) {
		if id, err := parseID(strings.TrimPrefix(req.args, duelParam)); err == nil {
			return b.showDuel(ctx, req, id)
		}
	}

	kb := mainMenu(b.isAdmin(req.from.ID))
	b.show(req, welcomeText(res.User.DisplayName()), &kb)
	return nil
}

func (b *Bot) menu(_ context.Context, req *request) error {
	kb := mainMenu(b.isAdmin(req.from.ID))
	b.show(req, menuText, &kb)
	return nil
}

func (b *Bot) checkSub(_ context.Context, req *request) error {
	if !b.subscribed(req.from.ID) {
		b.answer(req, "❌ Вы ещё не подписались!", true)
		return nil
	}
	kb := mainMenu(b.isAdmin(req.from.ID))
	b.show(req, "✅ <b>Подписка подтверждена!</b>\n\nТеперь вам доступны все функции бота.", &kb)
	b.answer(req, "Подписка подтверждена!", false)
	return nil
}

// subscribed checks the required channel. Lookup failures let the user in
// so a misconfigured channel does not lock everyone out.
func (b *Bot) subscribed(userID int64) bool {
	channel := strings.TrimSpace(b.cfg.ChannelID)
	if channel == "" {
		return true
	}
	cfg := tgbotapi.GetChatMemberConfig{ChatConfigWithUser: tgbotapi.ChatConfigWithUser{UserID: userID}}
	if id, err := strconv.ParseInt(channel, 10, 64); err == nil {
		cfg.ChatID = id
	} else {
		cfg.SuperGroupUsername = "@" + strings.TrimPrefix(channel, "@")
	}

	member, err := b.api.GetChatMember(cfg)
	if err != nil {
		zap.L().Warn("failed to check subscription", zap.Int64("user_id", userID), zap.Error(err))
		return true
	}
	switch member.Status {
	case "creator", "administrator", "member":
		return true
	case "restricted":
		return member.IsMember
	default:
		return false
	}
}

func (b *Bot) profile(ctx context.Context, req *request) error {
	user, err := b.svc.Users.Get(ctx, req.from.ID)
	if err != nil {
		return err
	}
	dailyLeft, luckLeft, err := b.svc.Rewards.Cooldowns(ctx, req.from.ID)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, profileText(user, dailyLeft, luckLeft), &kb)
	return nil
}

func (b *Bot) daily(ctx context.Context, req *request) error {
	reward, err := b.svc.Rewards.ClaimDaily(ctx, req.from.ID)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, dailyText(reward.Amount, reward.Multiplier, reward.Next.Sub(b.now())), &kb)
	b.answer(req, fmt.Sprintf("+%s ⭐", formatStars(reward.Amount)), false)
	return nil
}

func (b *Bot) luck(ctx context.Context, req *request) error {
	_, luckLeft, err := b.svc.Rewards.Cooldowns(ctx, req.from.ID)
	if err != nil {
		return err
	}
	kb := luckKeyboard()
	b.show(req, luckScreenText(luckLeft), &kb)
	return nil
}

func (b *Bot) playLuck(ctx context.Context, req *request) error {
	reward, err := b.svc.Rewards.PlayLuck(ctx, req.from.ID)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, luckResultText(reward.Amount, reward.Multiplier, reward.Next.Sub(b.now())), &kb)
	b.answer(req, fmt.Sprintf("Вы выиграли %s ⭐", formatStars(reward.Amount)), false)
	return nil
}

func (b *Bot) link(payload string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", b.username, payload)
}

func (b *Bot) referral(ctx context.Context, req *request) error {
	user, err := b.svc.Users.Get(ctx, req.from.ID)
	if err != nil {
		return err
	}
	economy, err := b.svc.Settings.Economy(ctx)
	if err != nil {
		return err
	}
	link := b.link(domain.RefCodeFor(user.ID))
	kb := referralKeyboard(link)
	b.show(req, referralText(user, link, economy.ReferralReward), &kb)
	return nil
}

func (b *Bot) top(ctx context.Context, req *request) error {
	users, err := b.svc.Users.Top(ctx, topLimit)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, topText(users), &kb)
	return nil
}

func (b *Bot) help(_ context.Context, req *request) error {
	kb := backKeyboard()
	b.show(req, helpText(b.isAdmin(req.from.ID)), &kb)
	return nil
}

func (b *Bot) tasks(ctx context.Context, req *request) error {
	economy, err := b.svc.Settings.Economy(ctx)
	if err != nil {
		return err
	}
	kb := tasksKeyboard(b.username)
	b.show(req, tasksText(economy), &kb)
	return nil
}

func (b *Bot) promo(ctx context.Context, req *request) error {
	code := validate.NormalizePromoCode(req.args)
	if code == "" {
		return usageError("Использование: /promo КОД")
	}
	promo, err := b.svc.Promos.Activate(ctx, req.from.ID, code)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, fmt.Sprintf("🎁 <b>Промокод %s активирован!</b>\n\n<b>+%s</b> ⭐ на баланс", escape(promo.Code), formatStars(promo.Reward)), &kb)
	return nil
}

func (b *Bot) claimPost(ctx context.Context, req *request) error {
	post, err := b.svc.Posts.Claim(ctx, req.from.ID, req.args)
	if err != nil {
		return err
	}
	b.answer(req, fmt.Sprintf("🎉 +%s ⭐ за просмотр!", formatStars(post.Reward)), true)
	return nil
}
