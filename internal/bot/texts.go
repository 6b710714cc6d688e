package bot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/starsbot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const timeLayout = "15:04 02.01.2006"

var medals = []string{"🥇", "🥈", "🥉", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

// formatStars prints a balance without trailing zeros: 4.5, 0.3, 15.
func formatStars(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func starsBar(v float64) string {
	n := int(v)
	if n <= 0 {
		return "☆"
	}
	if n <= 5 {
		return strings.Repeat("★", n)
	}
	return strings.Repeat("★", 5) + fmt.Sprintf(" (+%d)", n-5)
}

// formatDuration renders a wait as "3ч 15м", rounding up to a whole minute.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0м"
	}
	minutes := int(math.Ceil(d.Minutes()))
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dм", m)
	}
	return fmt.Sprintf("%dч %dм", h, m)
}

// censorName hides most of a name for public lists.
func censorName(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "@")
	if name == "" {
		return "Неизвестный"
	}
	r := []rune(name)
	if len(r) <= 4 {
		return "@" + string(r[:min(2, len(r))]) + "**"
	}
	return "@" + string(r[:4]) + "****"
}

func publicName(u *domain.User) string {
	if u.Username != "" {
		return censorName(u.Username)
	}
	return censorName(u.FirstName)
}

func medal(i int) string {
	if i < len(medals) {
		return medals[i]
	}
	return fmt.Sprintf("%d.", i+1)
}

func cooldownLine(left time.Duration) string {
	if left <= 0 {
		return "✅ доступно"
	}
	return "⏳ через " + formatDuration(left)
}

func welcomeText(name string) string {
	return fmt.Sprintf(`⭐ <b>Добро пожаловать, %s!</b>

Здесь можно копить звёзды и выводить их подарками.

📅 Забирайте ежедневный бонус
🎮 Испытывайте удачу
👥 Приглашайте друзей
🎁 Покупайте и продавайте подарки

Выберите действие:`, escape(name))
}

const menuText = "⭐ <b>Главное меню</b>\n\nВыберите действие:"

func subscribeText(channel string) string {
	return fmt.Sprintf(`📢 <b>Подпишитесь на канал</b>

Чтобы пользоваться ботом, подпишитесь на @%s и нажмите «✅ Я подписался».`, escape(channel))
}

func profileText(u *domain.User, dailyLeft, luckLeft time.Duration) string {
	return fmt.Sprintf(`👤 <b>Личный кабинет</b>

🆔 ID: <code>%d</code>
👤 Имя: %s
⭐ Баланс: <b>%s</b> %s
👥 Рефералов: %d
💰 Всего заработано: %s
💎 Выведено: %s

📅 Ежедневный бонус: %s
🎮 Удача: %s`,
		u.ID, escape(u.DisplayName()),
		formatStars(u.Stars), starsBar(u.Stars),
		u.Referrals,
		formatStars(u.TotalEarned),
		formatStars(u.TotalWithdrawn),
		cooldownLine(dailyLeft), cooldownLine(luckLeft),
	)
}

func boostLine(multiplier float64) string {
	if multiplier <= 1 {
		return ""
	}
	return fmt.Sprintf("\n🚀 Действует буст x%s", formatStars(multiplier))
}

func dailyText(amount, multiplier float64, next time.Duration) string {
	return fmt.Sprintf(`🎉 <b>Ежедневный бонус!</b>

Вы получили <b>+%s</b> ⭐%s

⏳ Следующий через: %s`, formatStars(amount), boostLine(multiplier), formatDuration(next))
}

func luckScreenText(left time.Duration) string {
	return fmt.Sprintf(`🎮 <b>Удача</b>

Испытайте удачу и получите случайное количество звёзд.

Игра: %s`, cooldownLine(left))
}

func luckResultText(amount, multiplier float64, next time.Duration) string {
	var result string
	switch {
	case amount <= 0:
		result = "😔 Не повезло... В этот раз без звёзд"
	case amount < 3:
		result = fmt.Sprintf("🎉 Неплохо! Вы выиграли %s ⭐", formatStars(amount))
	case amount < 5:
		result = fmt.Sprintf("🎊 Отлично! Вы выиграли %s ⭐", formatStars(amount))
	default:
		result = fmt.Sprintf("🔥 ДЖЕКПОТ! %s ⭐", formatStars(amount))
	}
	return fmt.Sprintf("%s%s\n\n🎮 Следующая игра через %s", result, boostLine(multiplier), formatDuration(next))
}

func referralText(u *domain.User, link string, reward float64) string {
	return fmt.Sprintf(`👥 <b>Реферальная программа</b>

За каждого приглашённого друга: <b>+%s</b> ⭐
Вы пригласили: <b>%d</b>

🔗 Ваша ссылка:
<code>%s</code>`, formatStars(reward), u.Referrals, link)
}

func topText(users []domain.User) string {
	var sb strings.Builder
	sb.WriteString("🏆 <b>Топ пользователей</b>\n\n")
	if len(users) == 0 {
		sb.WriteString("Пока пусто. Станьте первым!")
		return sb.String()
	}
	for i := range users {
		fmt.Fprintf(&sb, "%s %s: <b>%s</b> ⭐\n", medal(i), escape(publicName(&users[i])), formatStars(users[i].Stars))
	}
	return sb.String()
}

func withdrawText(balance, minimum float64, support string) string {
	return fmt.Sprintf(`💎 <b>Вывод звёзд</b>

⭐ Баланс: <b>%s</b>
📉 Минимум: %s

Выберите сумму. Заявку проверит администратор, обычно в течение 24 часов.
📞 Поддержка: %s`, formatStars(balance), formatStars(minimum), escape(support))
}

func withdrawalCreatedText(w *domain.Withdrawal, title string) string {
	what := fmt.Sprintf("💎 Сумма: %s ⭐", formatStars(w.Amount))
	if w.IsGift() {
		what = "🎁 Подарок: " + escape(title)
	}
	return fmt.Sprintf(`✅ <b>Заявка #%d создана!</b>

%s
⏰ Статус: на модерации`, w.ID, what)
}

func withdrawalCardText(w *domain.Withdrawal, user *domain.User, title string) string {
	what := fmt.Sprintf("💎 <b>Сумма:</b> %s ⭐", formatStars(w.Amount))
	if w.IsGift() {
		what = fmt.Sprintf("🎁 <b>Подарок:</b> %s (%s ⭐)", escape(title), formatStars(w.Amount))
	}
	return fmt.Sprintf(`📥 <b>Новая заявка #%d</b>

👤 <b>Пользователь:</b> %s
🆔 <b>ID:</b> <code>%d</code>
%s
⏰ <b>Время:</b> %s`, w.ID, escape(publicName(user)), w.UserID, what, w.CreatedAt.Format(timeLayout))
}

func decisionCardText(w *domain.Withdrawal, admin string, at time.Time) string {
	verdict := "✅ <b>Заявка #%d выполнена</b>"
	if w.Status == domain.WithdrawalRejected {
		verdict = "❌ <b>Заявка #%d отклонена</b>"
	}
	return fmt.Sprintf(verdict+`

🆔 <b>ID:</b> <code>%d</code>
💎 <b>Сумма:</b> %s ⭐
👑 <b>Исполнитель:</b> %s
⏰ <b>Время:</b> %s`, w.ID, w.UserID, formatStars(w.Amount), escape(admin), at.Format(timeLayout))
}

func decisionUserText(w *domain.Withdrawal, support string) string {
	if w.Status == domain.WithdrawalApproved {
		return fmt.Sprintf(`🎉 <b>Ваша заявка #%d выполнена!</b>

💎 Сумма: %s ⭐
Спасибо, что пользуетесь ботом!`, w.ID, formatStars(w.Amount))
	}
	back := "⭐ Звёзды возвращены на баланс."
	if w.IsGift() {
		back = "🎁 Подарок возвращён в инвентарь."
	}
	return fmt.Sprintf(`❌ <b>Ваша заявка #%d отклонена</b>

%s
📞 По вопросам: %s`, w.ID, back, escape(support))
}

func helpText(admin bool) string {
	text := `ℹ️ <b>Помощь</b>

/start - главное меню
/profile - личный кабинет
/daily - ежедневный бонус
/luck - испытать удачу
/referral - реферальная ссылка
/top - топ пользователей
/withdraw - вывод звёзд
/promo КОД - активировать промокод
/shop - магазин подарков
/inventory - ваши подарки
/market - рынок
/sell ПОДАРОК ЦЕНА - выставить подарок на рынок
/duel СТАВКА - создать дуэль, /duel - открытые дуэли`
	if admin {
		text += `

👑 <b>Админ</b>
/admin - панель
/give ID СУММА - начислить или списать
/addpromo КОД НАГРАДА [АКТИВАЦИЙ] [ЧАСОВ] - промокод
/send ТЕКСТ - рассылка с наградой за просмотр
/boost МНОЖИТЕЛЬ ЧАСОВ - буст наград
/set КЛЮЧ ЗНАЧЕНИЕ - настройка экономики`
	}
	return text
}

func tasksText(e *domain.Economy) string {
	return fmt.Sprintf(`🎯 <b>Задания</b>

📅 Ежедневный бонус: %d-%d ⭐ раз в %s
🎮 Удача: %d-%d ⭐ раз в %s
👥 Пригласить друга: +%s ⭐
👥 Добавить бота в группу от %d участников: +%s ⭐
📨 Открыть пост от администрации: +%s ⭐
🎁 Промокоды из канала: /promo КОД`,
		e.DailyMin, e.DailyMax, formatDuration(e.DailyCooldown),
		e.LuckMin, e.LuckMax, formatDuration(e.LuckCooldown),
		formatStars(e.ReferralReward),
		e.GroupMinMembers, formatStars(e.GroupReward),
		formatStars(e.PostReward),
	)
}

func giftTitle(gifts []domain.Gift, key string) string {
	for _, g := range gifts {
		if g.Key == key {
			return g.Title
		}
	}
	return key
}

func shopText(gifts []domain.Gift, balance float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎁 <b>Магазин подарков</b>\n\n⭐ Баланс: <b>%s</b>\n\n", formatStars(balance))
	for _, g := range gifts {
		fmt.Fprintf(&sb, "%s: %s ⭐\n", escape(g.Title), formatStars(g.Price))
	}
	sb.WriteString("\nКупленный подарок можно вывести или продать на рынке.")
	return sb.String()
}

func inventoryText(items []domain.InventoryItem, gifts []domain.Gift) string {
	var sb strings.Builder
	sb.WriteString("🎒 <b>Инвентарь</b>\n\n")
	if len(items) == 0 {
		sb.WriteString("Пусто. Загляните в магазин!")
		return sb.String()
	}
	for _, it := range items {
		fmt.Fprintf(&sb, "%s × %d <code>%s</code>\n", escape(giftTitle(gifts, it.Item)), it.Quantity, it.Item)
	}
	sb.WriteString("\nПродать: /sell ПОДАРОК ЦЕНА")
	return sb.String()
}

func marketText(lots []domain.MarketLot, gifts []domain.Gift) string {
	var sb strings.Builder
	sb.WriteString("🏪 <b>Рынок</b>\n\n")
	if len(lots) == 0 {
		sb.WriteString("Лотов нет. Выставьте свой: /sell ПОДАРОК ЦЕНА")
		return sb.String()
	}
	for _, lot := range lots {
		fmt.Fprintf(&sb, "#%d %s: %s ⭐\n", lot.ID, escape(giftTitle(gifts, lot.Item)), formatStars(lot.Price))
	}
	return sb.String()
}

func duelText(d *domain.Duel, link string) string {
	return fmt.Sprintf(`⚔️ <b>Дуэль #%d</b>

Ставка: <b>%s</b> ⭐
Победитель забирает %s ⭐.

🔗 Ссылка для соперника:
<code>%s</code>`, d.ID, formatStars(d.Stake), formatStars(2*d.Stake), link)
}

func duelsText(duels []domain.Duel) string {
	var sb strings.Builder
	sb.WriteString("⚔️ <b>Открытые дуэли</b>\n\n")
	if len(duels) == 0 {
		sb.WriteString("Пока никого. Создайте свою: /duel СТАВКА")
		return sb.String()
	}
	for _, d := range duels {
		fmt.Fprintf(&sb, "#%d: ставка %s ⭐\n", d.ID, formatStars(d.Stake))
	}
	return sb.String()
}

func duelResultText(d *domain.Duel, viewer int64) string {
	if d.WinnerID != nil && *d.WinnerID == viewer {
		return fmt.Sprintf("🏆 <b>Дуэль #%d: победа!</b>\n\nВы забираете %s ⭐", d.ID, formatStars(2*d.Stake))
	}
	return fmt.Sprintf("😔 <b>Дуэль #%d: поражение</b>\n\nСтавка %s ⭐ ушла сопернику.", d.ID, formatStars(d.Stake))
}

func adminText() string {
	return `👑 <b>Админ-панель</b>

/give ID СУММА
/addpromo КОД НАГРАДА [АКТИВАЦИЙ] [ЧАСОВ]
/send ТЕКСТ
/boost МНОЖИТЕЛЬ ЧАСОВ
/set КЛЮЧ ЗНАЧЕНИЕ`
}

func statsText(total, pending int, stars, withdrawn float64, boost *domain.Boost, now time.Time) string {
	text := fmt.Sprintf(`📊 <b>Статистика</b>

👥 Пользователей: %d
⭐ Звёзд на балансах: %s
💎 Выведено: %s
⏳ Заявок в очереди: %d`, total, formatStars(stars), formatStars(withdrawn), pending)
	if boost.Active(now) {
		text += fmt.Sprintf("\n🚀 Буст x%s до %s", formatStars(boost.Multiplier), boost.ExpiresAt.Format(timeLayout))
	}
	return text
}

func pendingText(list []domain.Withdrawal) string {
	var sb strings.Builder
	sb.WriteString("⏳ <b>Заявки в очереди</b>\n\n")
	if len(list) == 0 {
		sb.WriteString("Очередь пуста.")
		return sb.String()
	}
	for _, w := range list {
		what := formatStars(w.Amount) + " ⭐"
		if w.IsGift() {
			what = "🎁 " + escape(*w.Item)
		}
		fmt.Fprintf(&sb, "#%d <code>%d</code>: %s, %s\n", w.ID, w.UserID, what, w.CreatedAt.Format(timeLayout))
	}
	return sb.String()
}
