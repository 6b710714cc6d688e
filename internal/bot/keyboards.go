package bot

import (
	"fmt"

	"github.com/GlebRadaev/starsbot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cbMenu       = "menu"
	cbProfile    = "profile"
	cbDaily      = "daily"
	cbLuck       = "luck"
	cbPlayLuck   = "play_luck"
	cbReferrals  = "referrals"
	cbTop        = "top"
	cbWithdraw   = "withdraw"
	cbHelp       = "help"
	cbTasks      = "tasks"
	cbCheckSub   = "check_sub"
	cbShop       = "shop"
	cbInventory  = "inventory"
	cbMarket     = "market"
	cbDuels      = "duels"
	cbAdminPanel = "admin_panel"
	cbAdminStats = "a_stats"
	cbAdminQueue = "a_pending"

	cbWithdrawAmount = "wd_"
	cbWithdrawGift   = "gwd_"
	cbApprove        = "adm_app_"
	cbReject         = "adm_rej_"
	cbBuyGift        = "buy_g_"
	cbBuyLot         = "buy_lot_"
	cbCancelLot      = "cancel_lot_"
	cbClaimPost      = "get_p_"
	cbDuelJoin       = "duel_join_"
	cbDuelCancel     = "duel_cancel_"
)

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(button("🔙 В меню", cbMenu))
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow())
}

func mainMenu(admin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(button("👤 Профиль", cbProfile), button("🎯 Задания", cbTasks)),
		tgbotapi.NewInlineKeyboardRow(button("📅 Ежедневный", cbDaily), button("🎮 Удача", cbLuck)),
		tgbotapi.NewInlineKeyboardRow(button("👥 Рефералы", cbReferrals), button("🏆 Топ", cbTop)),
		tgbotapi.NewInlineKeyboardRow(button("🎁 Магазин", cbShop), button("⚔️ Дуэли", cbDuels)),
		tgbotapi.NewInlineKeyboardRow(button("💎 Вывод", cbWithdraw), button("ℹ️ Помощь", cbHelp)),
	}
	if admin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("👑 Админ-панель", cbAdminPanel)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func subscribeKeyboard(channel string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📢 Подписаться", "https://t.me/"+channel)),
		tgbotapi.NewInlineKeyboardRow(button("✅ Я подписался", cbCheckSub)),
	)
}

func luckKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("🎰 Испытать удачу!", cbPlayLuck)),
		backRow(),
	)
}

func referralKeyboard(link string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonSwitch("📢 Поделиться", "Зарабатывай звёзды вместе со мной! "+link)),
		backRow(),
	)
}

func tasksKeyboard(botUsername string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("📅 Бонус", cbDaily), button("🎮 Удача", cbLuck)),
		tgbotapi.NewInlineKeyboardRow(button("👥 Пригласить", cbReferrals)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("➕ Добавить в группу", "https://t.me/"+botUsername+"?startgroup=true")),
		backRow(),
	)
}

func withdrawKeyboard(all []float64, balance float64) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, amount := range all {
		label := fmt.Sprintf("💎 %s ⭐", formatStars(amount))
		if amount > balance {
			label = fmt.Sprintf("🔒 %s ⭐", formatStars(amount))
		}
		row = append(row, button(label, cbWithdrawAmount+formatStars(amount)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(button("🎒 Вывести подарок", cbInventory)),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func decisionKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		button("✅ Выполнить", fmt.Sprintf("%s%d", cbApprove, id)),
		button("❌ Отклонить", fmt.Sprintf("%s%d", cbReject, id)),
	))
}

func shopKeyboard(gifts []domain.Gift) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range gifts {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(fmt.Sprintf("%s: %s ⭐", g.Title, formatStars(g.Price)), cbBuyGift+g.Key),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(button("🎒 Инвентарь", cbInventory), button("🏪 Рынок", cbMarket)),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func inventoryKeyboard(items []domain.InventoryItem, gifts []domain.Gift) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button("💎 Вывести "+giftTitle(gifts, it.Item), cbWithdrawGift+it.Item),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(button("🎁 Магазин", cbShop), button("🏪 Рынок", cbMarket)),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func marketKeyboard(lots []domain.MarketLot, gifts []domain.Gift, viewer int64) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, lot := range lots {
		if lot.SellerID == viewer {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				button(fmt.Sprintf("❌ Снять #%d", lot.ID), fmt.Sprintf("%s%d", cbCancelLot, lot.ID)),
			))
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(fmt.Sprintf("🛒 #%d %s за %s ⭐", lot.ID, giftTitle(gifts, lot.Item), formatStars(lot.Price)), fmt.Sprintf("%s%d", cbBuyLot, lot.ID)),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(button("🎒 Инвентарь", cbInventory), button("🎁 Магазин", cbShop)),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func duelKeyboard(d *domain.Duel, viewer int64, link string) tgbotapi.InlineKeyboardMarkup {
	if d.CreatorID == viewer {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonSwitch("📢 Позвать соперника", "Сразимся? "+link)),
			tgbotapi.NewInlineKeyboardRow(button("❌ Отменить", fmt.Sprintf("%s%d", cbDuelCancel, d.ID))),
			backRow(),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button(fmt.Sprintf("⚔️ Принять за %s ⭐", formatStars(d.Stake)), fmt.Sprintf("%s%d", cbDuelJoin, d.ID))),
		backRow(),
	)
}

func duelsKeyboard(duels []domain.Duel, viewer int64) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range duels {
		if d.CreatorID == viewer {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				button(fmt.Sprintf("❌ Отменить #%d", d.ID), fmt.Sprintf("%s%d", cbDuelCancel, d.ID)),
			))
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(fmt.Sprintf("⚔️ #%d на %s ⭐", d.ID, formatStars(d.Stake)), fmt.Sprintf("%s%d", cbDuelJoin, d.ID)),
		))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func postKeyboard(p *domain.Post) *tgbotapi.InlineKeyboardMarkup {
	if p.Reward <= 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		button(fmt.Sprintf("🎁 Забрать +%s ⭐", formatStars(p.Reward)), cbClaimPost+p.ID),
	))
	return &kb
}

func adminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(button("📊 Статистика", cbAdminStats), button("⏳ Заявки", cbAdminQueue)),
		backRow(),
	)
}

func pendingKeyboard(list []domain.Withdrawal) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, w := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			button(fmt.Sprintf("✅ #%d", w.ID), fmt.Sprintf("%s%d", cbApprove, w.ID)),
			button(fmt.Sprintf("❌ #%d", w.ID), fmt.Sprintf("%s%d", cbReject, w.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(button("🔙 Панель", cbAdminPanel)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
