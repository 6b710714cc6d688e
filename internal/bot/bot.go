package bot

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/starsbot/internal/config"
	"github.com/GlebRadaev/starsbot/pkg/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	pollTimeout   = 60
	updateTimeout = 30 * time.Second
)

type handlerFunc func(ctx context.Context, req *request) error

type route struct {
	handler handlerFunc
	admin   bool
}

type prefixRoute struct {
	prefix string
	route
}

type Bot struct {
	api         TelegramAPI
	username    string
	cfg         *config.Config
	svc         Services
	broadcaster Broadcaster

	locks *userLocks
	wg    sync.WaitGroup
	// runCtx outlives single updates and is canceled on shutdown.
	runCtx context.Context
	now    func() time.Time

	commands  map[string]route
	callbacks map[string]route
	prefixes  []prefixRoute
}

func New(api TelegramAPI, username string, cfg *config.Config, svc Services, broadcaster Broadcaster) *Bot {
	b := &Bot{
		api:         api,
		username:    username,
		cfg:         cfg,
		svc:         svc,
		broadcaster: broadcaster,
		locks:       newUserLocks(),
		runCtx:      context.Background(),
		now:         time.Now,
	}
	b.routes()
	return b
}

func (b *Bot) routes() {
	b.commands = map[string]route{
		"start":     {handler: b.start},
		"profile":   {handler: b.profile},
		"daily":     {handler: b.daily},
		"luck":      {handler: b.luck},
		"referral":  {handler: b.referral},
		"top":       {handler: b.top},
		"withdraw":  {handler: b.withdraw},
		"help":      {handler: b.help},
		"tasks":     {handler: b.tasks},
		"promo":     {handler: b.promo},
		"shop":      {handler: b.shop},
		"inventory": {handler: b.inventory},
		"market":    {handler: b.market},
		"sell":      {handler: b.sell},
		"duel":      {handler: b.duel},
		"admin":     {handler: b.adminPanel, admin: true},
		"give":      {handler: b.give, admin: true},
		"addpromo":  {handler: b.addPromo, admin: true},
		"send":      {handler: b.send, admin: true},
		"boost":     {handler: b.boost, admin: true},
		"set":       {handler: b.set, admin: true},
	}

	b.callbacks = map[string]route{
		cbMenu:       {handler: b.menu},
		cbProfile:    {handler: b.profile},
		cbDaily:      {handler: b.daily},
		cbLuck:       {handler: b.luck},
		cbPlayLuck:   {handler: b.playLuck},
		cbReferrals:  {handler: b.referral},
		cbTop:        {handler: b.top},
		cbWithdraw:   {handler: b.withdraw},
		cbHelp:       {handler: b.help},
		cbTasks:      {handler: b.tasks},
		cbCheckSub:   {handler: b.checkSub},
		cbShop:       {handler: b.shop},
		cbInventory:  {handler: b.inventory},
		cbMarket:     {handler: b.market},
		cbDuels:      {handler: b.duels},
		cbAdminPanel: {handler: b.adminPanel, admin: true},
		cbAdminStats: {handler: b.adminStats, admin: true},
		cbAdminQueue: {handler: b.adminPending, admin: true},
	}

	b.prefixes = []prefixRoute{
		{cbWithdrawAmount, route{handler: b.withdrawAmount}},
		{cbWithdrawGift, route{handler: b.withdrawGift}},
		{cbApprove, route{handler: b.approve, admin: true}},
		{cbReject, route{handler: b.reject, admin: true}},
		{cbBuyGift, route{handler: b.buyGift}},
		{cbBuyLot, route{handler: b.buyLot}},
		{cbCancelLot, route{handler: b.cancelLot}},
		{cbClaimPost, route{handler: b.claimPost}},
		{cbDuelJoin, route{handler: b.duelJoin}},
		{cbDuelCancel, route{handler: b.duelCancel}},
	}
	// longest prefix wins
	sort.SliceStable(b.prefixes, func(i, j int) bool {
		return len(b.prefixes[i].prefix) > len(b.prefixes[j].prefix)
	})
}

// Run long-polls telegram until ctx is canceled, handling every update in
// its own goroutine.
func (b *Bot) Run(ctx context.Context) {
	b.runCtx = ctx

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	u.AllowedUpdates = []string{"message", "callback_query", "my_chat_member"}
	updates := b.api.GetUpdatesChan(u)

	zap.L().Info("bot started", zap.String("username", b.username))
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.wg.Wait()
			zap.L().Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				b.wg.Wait()
				return
			}
			b.wg.Add(1)
			go func() {
				defer b.wg.Done()
				b.HandleUpdate(ctx, update)
			}()
		}
	}
}

// Wait blocks until in-flight handlers and broadcasts are done.
func (b *Bot) Wait() {
	b.wg.Wait()
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	// handlers finish their writes even when shutdown starts mid-update
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), updateTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("panic while handling update", zap.Int("update_id", update.UpdateID), zap.Any("panic", r))
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.MyChatMember != nil:
		b.handleMyChatMember(ctx, update.MyChatMember)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil || !msg.Chat.IsPrivate() || !msg.IsCommand() {
		return
	}
	r, ok := b.commands[msg.Command()]
	if !ok {
		return
	}
	req := &request{
		from:   msg.From,
		chatID: msg.Chat.ID,
		args:   strings.TrimSpace(msg.CommandArguments()),
	}
	b.dispatch(ctx, r, req, msg.Command())
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil {
		return
	}
	req := &request{
		from:       cq.From,
		callbackID: cq.ID,
	}
	if cq.Message != nil && cq.Message.Chat != nil {
		req.chatID = cq.Message.Chat.ID
		req.messageID = cq.Message.MessageID
	} else {
		req.chatID = cq.From.ID
	}

	r, ok := b.callbacks[cq.Data]
	if !ok {
		for _, p := range b.prefixes {
			if strings.HasPrefix(cq.Data, p.prefix) {
				r, ok = p.route, true
				req.args = strings.TrimPrefix(cq.Data, p.prefix)
				break
			}
		}
	}
	if !ok {
		b.answer(req, "", false)
		return
	}
	b.dispatch(ctx, r, req, cq.Data)
}

func (b *Bot) dispatch(ctx context.Context, r route, req *request, name string) {
	mu := b.locks.get(req.from.ID)
	mu.Lock()
	defer mu.Unlock()

	log := logger.ForUser(req.from.ID)
	log.Debug("handling", zap.String("route", name), zap.String("args", req.args))

	var err error
	switch {
	case r.admin && !b.cfg.IsAdmin(req.from.ID):
		err = errAccessDenied
	default:
		if err = b.touch(ctx, req.from, name); err == nil {
			err = r.handler(ctx, req)
		}
	}
	if err != nil {
		b.fail(req, err)
		return
	}
	if req.callbackID != "" && !req.answered {
		b.answer(req, "", false)
	}
}

// touch keeps the user row fresh on every interaction. /start registers on
// its own so it can carry the referral payload.
func (b *Bot) touch(ctx context.Context, from *tgbotapi.User, name string) error {
	if name == "start" {
		return nil
	}
	_, err := b.svc.Users.Register(ctx, registerInput(from, ""))
	return err
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.cfg.IsAdmin(userID)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadArgument
	}
	return id, nil
}
