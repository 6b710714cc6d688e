package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/GlebRadaev/starsbot/internal/domain"
	"go.uber.org/zap"
)

const (
	marketLimit = 10
	duelsLimit  = 10
)

func (b *Bot) withdraw(ctx context.Context, req *request) error {
	opts, err := b.svc.Withdrawals.Options(ctx, req.from.ID)
	if err != nil {
		return err
	}
	kb := withdrawKeyboard(opts.All, opts.Balance)
	b.show(req, withdrawText(opts.Balance, opts.Minimum, b.cfg.SupportUsername), &kb)
	return nil
}

func (b *Bot) withdrawAmount(ctx context.Context, req *request) error {
	amount, err := strconv.ParseFloat(req.args, 64)
	if err != nil {
		return errBadArgument
	}
	w, err := b.svc.Withdrawals.Request(ctx, req.from.ID, amount)
	if err != nil {
		return err
	}
	b.postCard(ctx, req, w, "")
	kb := backKeyboard()
	b.show(req, withdrawalCreatedText(w, ""), &kb)
	b.answer(req, "Заявка отправлена на модерацию!", false)
	return nil
}

func (b *Bot) withdrawGift(ctx context.Context, req *request) error {
	w, err := b.svc.Withdrawals.RequestGift(ctx, req.from.ID, req.args)
	if err != nil {
		return err
	}
	title := b.giftTitle(ctx, req.args)
	b.postCard(ctx, req, w, title)
	kb := backKeyboard()
	b.show(req, withdrawalCreatedText(w, title), &kb)
	b.answer(req, "Заявка отправлена на модерацию!", false)
	return nil
}

func (b *Bot) giftTitle(ctx context.Context, key string) string {
	gifts, err := b.svc.Shop.Gifts(ctx)
	if err != nil {
		return key
	}
	return giftTitle(gifts, key)
}

// postCard puts the request in front of the admins. The request itself is
// already stored, so failures here are only logged.
func (b *Bot) postCard(ctx context.Context, req *request, w *domain.Withdrawal, title string) {
	if b.cfg.WithdrawalChannel == 0 {
		zap.L().Warn("withdrawal channel is not configured", zap.Int64("withdrawal_id", w.ID))
		return
	}
	user := &domain.User{ID: req.from.ID, Username: req.from.UserName, FirstName: req.from.FirstName}
	kb := decisionKeyboard(w.ID)
	sent, err := b.sendTo(b.cfg.WithdrawalChannel, withdrawalCardText(w, user, title), &kb)
	if err != nil {
		return
	}
	if err := b.svc.Withdrawals.AttachMessage(ctx, w.ID, sent.MessageID); err != nil {
		zap.L().Warn("failed to attach card message", zap.Int64("withdrawal_id", w.ID), zap.Error(err))
	}
}

func (b *Bot) shop(ctx context.Context, req *request) error {
	user, err := b.svc.Users.Get(ctx, req.from.ID)
	if err != nil {
		return err
	}
	gifts, err := b.svc.Shop.Gifts(ctx)
	if err != nil {
		return err
	}
	kb := shopKeyboard(gifts)
	b.show(req, shopText(gifts, user.Stars), &kb)
	return nil
}

func (b *Bot) buyGift(ctx context.Context, req *request) error {
	gift, err := b.svc.Shop.BuyGift(ctx, req.from.ID, req.args)
	if err != nil {
		return err
	}
	b.answer(req, fmt.Sprintf("Куплено: %s", gift.Title), false)
	return b.inventory(ctx, req)
}

func (b *Bot) inventory(ctx context.Context, req *request) error {
	items, err := b.svc.Shop.Inventory(ctx, req.from.ID)
	if err != nil {
		return err
	}
	gifts, err := b.svc.Shop.Gifts(ctx)
	if err != nil {
		return err
	}
	kb := inventoryKeyboard(items, gifts)
	b.show(req, inventoryText(items, gifts), &kb)
	return nil
}

func (b *Bot) market(ctx context.Context, req *request) error {
	lots, err := b.svc.Shop.Market(ctx, marketLimit)
	if err != nil {
		return err
	}
	gifts, err := b.svc.Shop.Gifts(ctx)
	if err != nil {
		return err
	}
	kb := marketKeyboard(lots, gifts, req.from.ID)
	b.show(req, marketText(lots, gifts), &kb)
	return nil
}

func (b *Bot) sell(ctx context.Context, req *request) error {
	const usage = usageError("Использование: /sell ПОДАРОК ЦЕНА")
	fields := strings.Fields(req.args)
	if len(fields) != 2 {
		return usage
	}
	price, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return usage
	}
	lot, err := b.svc.Shop.Sell(ctx, req.from.ID, strings.ToLower(fields[0]), price)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, fmt.Sprintf("🏪 <b>Лот #%d выставлен</b>\n\n%s за %s ⭐", lot.ID, escape(b.giftTitle(ctx, lot.Item)), formatStars(lot.Price)), &kb)
	return nil
}

func (b *Bot) buyLot(ctx context.Context, req *request) error {
	id, err := parseID(req.args)
	if err != nil {
		return err
	}
	lot, err := b.svc.Shop.BuyLot(ctx, req.from.ID, id)
	if err != nil {
		return err
	}
	title := b.giftTitle(ctx, lot.Item)
	b.sendTo(lot.SellerID, fmt.Sprintf("💰 <b>Лот #%d продан!</b>\n\n%s: <b>+%s</b> ⭐", lot.ID, escape(title), formatStars(lot.Price)), nil)
	b.answer(req, fmt.Sprintf("Куплено: %s", title), false)
	return b.market(ctx, req)
}

func (b *Bot) cancelLot(ctx context.Context, req *request) error {
	id, err := parseID(req.args)
	if err != nil {
		return err
	}
	if _, err := b.svc.Shop.CancelLot(ctx, req.from.ID, id); err != nil {
		return err
	}
	b.answer(req, "Лот снят, подарок вернулся в инвентарь", false)
	return b.market(ctx, req)
}

func (b *Bot) duel(ctx context.Context, req *request) error {
	if req.args == "" {
		return b.duels(ctx, req)
	}
	stake, err := strconv.ParseFloat(req.args, 64)
	if err != nil {
		return usageError("Использование: /duel СТАВКА")
	}
	d, err := b.svc.Duels.Create(ctx, req.from.ID, stake)
	if err != nil {
		return err
	}
	link := b.link(fmt.Sprintf("%s%d", duelParam, d.ID))
	kb := duelKeyboard(d, req.from.ID, link)
	b.show(req, duelText(d, link), &kb)
	return nil
}

func (b *Bot) duels(ctx context.Context, req *request) error {
	list, err := b.svc.Duels.ListOpen(ctx, duelsLimit)
	if err != nil {
		return err
	}
	kb := duelsKeyboard(list, req.from.ID)
	b.show(req, duelsText(list), &kb)
	return nil
}

func (b *Bot) showDuel(ctx context.Context, req *request, id int64) error {
	d, err := b.svc.Duels.Get(ctx, id)
	if err != nil {
		return err
	}
	if d.Status != domain.DuelOpen {
		kb := backKeyboard()
		b.show(req, fmt.Sprintf("⚔️ Дуэль #%d уже завершена.", d.ID), &kb)
		return nil
	}
	link := b.link(fmt.Sprintf("%s%d", duelParam, d.ID))
	kb := duelKeyboard(d, req.from.ID, link)
	b.show(req, duelText(d, link), &kb)
	return nil
}

func (b *Bot) duelJoin(ctx context.Context, req *request) error {
	id, err := parseID(req.args)
	if err != nil {
		return err
	}
	d, err := b.svc.Duels.Join(ctx, req.from.ID, id)
	if err != nil {
		return err
	}
	b.sendTo(d.CreatorID, duelResultText(d, d.CreatorID), nil)
	kb := backKeyboard()
	b.show(req, duelResultText(d, req.from.ID), &kb)
	return nil
}

func (b *Bot) duelCancel(ctx context.Context, req *request) error {
	id, err := parseID(req.args)
	if err != nil {
		return err
	}
	d, err := b.svc.Duels.Cancel(ctx, req.from.ID, id)
	if err != nil {
		return err
	}
	kb := backKeyboard()
	b.show(req, fmt.Sprintf("❌ Дуэль #%d отменена, %s ⭐ вернулись на баланс.", d.ID, formatStars(d.Stake)), &kb)
	return nil
}
