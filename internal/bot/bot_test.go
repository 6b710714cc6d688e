package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/starsbot/internal/config"
	"github.com/GlebRadaev/starsbot/internal/domain"
	"github.com/GlebRadaev/starsbot/internal/service/rewardservice"
	"github.com/GlebRadaev/starsbot/internal/service/userservice"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const (
	adminID   int64 = 1
	userID    int64 = 2
	channelID int64 = -100500
)

var (
	now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	rewardsFixture  = rewardservice.Reward{Amount: 4.5, Base: 3, Multiplier: 1.5, Next: now.Add(24 * time.Hour)}
	cooldownFixture = rewardservice.CooldownError{Left: 3*time.Hour + 29*time.Minute + 30*time.Second}
)

type mocks struct {
	api         *MockTelegramAPI
	users       *MockUserService
	rewards     *MockRewardService
	withdrawals *MockWithdrawalService
	promos      *MockPromoService
	shop        *MockShopService
	duels       *MockDuelService
	posts       *MockPostService
	stats       *MockStatsService
	settings    *MockSettingsService
	broadcaster *MockBroadcaster
	out         *outbox
}

func NewMock(t *testing.T) (*Bot, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		api:         NewMockTelegramAPI(ctrl),
		users:       NewMockUserService(ctrl),
		rewards:     NewMockRewardService(ctrl),
		withdrawals: NewMockWithdrawalService(ctrl),
		promos:      NewMockPromoService(ctrl),
		shop:        NewMockShopService(ctrl),
		duels:       NewMockDuelService(ctrl),
		posts:       NewMockPostService(ctrl),
		stats:       NewMockStatsService(ctrl),
		settings:    NewMockSettingsService(ctrl),
		broadcaster: NewMockBroadcaster(ctrl),
		out:         &outbox{},
	}
	cfg := &config.Config{
		AdminIDs:          "1",
		ChannelUsername:   "starschannel",
		WithdrawalChannel: channelID,
		SupportUsername:   "@support",
	}
	b := New(m.api, "stars_bot", cfg, Services{
		Users:       m.users,
		Rewards:     m.rewards,
		Withdrawals: m.withdrawals,
		Promos:      m.promos,
		Shop:        m.shop,
		Duels:       m.duels,
		Posts:       m.posts,
		Stats:       m.stats,
		Settings:    m.settings,
	}, m.broadcaster)
	b.now = func() time.Time { return now }
	m.out.expect(m.api)
	return b, m
}

// outbox records everything the bot sends to telegram.
type outbox struct {
	mu      sync.Mutex
	sent    []tgbotapi.Chattable
	answers []tgbotapi.CallbackConfig
}

func (o *outbox) expect(api *MockTelegramAPI) {
	api.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.sent = append(o.sent, c)
		return tgbotapi.Message{MessageID: 77}, nil
	}).AnyTimes()
	api.EXPECT().Request(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if cb, ok := c.(tgbotapi.CallbackConfig); ok {
			o.answers = append(o.answers, cb)
		}
		return &tgbotapi.APIResponse{Ok: true}, nil
	}).AnyTimes()
}

type outgoing struct {
	chatID int64
	text   string
	edit   bool
	markup *tgbotapi.InlineKeyboardMarkup
}

func (o *outbox) messages() []outgoing {
	o.mu.Lock()
	defer o.mu.Unlock()
	var res []outgoing
	for _, c := range o.sent {
		switch v := c.(type) {
		case tgbotapi.MessageConfig:
			msg := outgoing{chatID: v.ChatID, text: v.Text}
			if kb, ok := v.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
				msg.markup = &kb
			}
			res = append(res, msg)
		case tgbotapi.EditMessageTextConfig:
			res = append(res, outgoing{chatID: v.ChatID, text: v.Text, edit: true, markup: v.ReplyMarkup})
		}
	}
	return res
}

func (o *outbox) to(chatID int64) []outgoing {
	var res []outgoing
	for _, msg := range o.messages() {
		if msg.chatID == chatID {
			res = append(res, msg)
		}
	}
	return res
}

func (o *outbox) lastAnswer() tgbotapi.CallbackConfig {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.answers) == 0 {
		return tgbotapi.CallbackConfig{}
	}
	return o.answers[len(o.answers)-1]
}

func callbackData(kb *tgbotapi.InlineKeyboardMarkup) []string {
	var data []string
	if kb == nil {
		return data
	}
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil {
				data = append(data, *btn.CallbackData)
			}
		}
	}
	return data
}

func sender(id int64) *tgbotapi.User {
	return &tgbotapi.User{ID: id, FirstName: "Ann", UserName: "annushka"}
}

func command(from int64, text string) tgbotapi.Update {
	cmd, _, _ := strings.Cut(text, " ")
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      sender(from),
		Chat:      &tgbotapi.Chat{ID: from, Type: "private"},
		Text:      text,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}},
	}}
}

func callbackIn(chatID, from int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb",
		From: sender(from),
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 42,
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "private"},
		},
	}}
}

func callback(from int64, data string) tgbotapi.Update {
	return callbackIn(from, from, data)
}

func touch(m *mocks) {
	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&userservice.RegisterResult{User: &domain.User{ID: userID}}, nil).AnyTimes()
}

func TestRoutes(t *testing.T) {
	b, _ := NewMock(t)

	for i := 1; i < len(b.prefixes); i++ {
		assert.GreaterOrEqual(t, len(b.prefixes[i-1].prefix), len(b.prefixes[i].prefix))
	}
	for _, p := range b.prefixes {
		_, clash := b.callbacks[p.prefix]
		assert.False(t, clash, p.prefix)
	}
	assert.True(t, b.commands["give"].admin)
	assert.False(t, b.commands["daily"].admin)
}

func TestUnknownCallbackIsAnswered(t *testing.T) {
	b, m := NewMock(t)

	b.HandleUpdate(context.Background(), callback(userID, "nope"))
	assert.Equal(t, "cb", m.out.lastAnswer().CallbackQueryID)
	assert.Empty(t, m.out.messages())
}

func TestIgnoresGroupMessages(t *testing.T) {
	b, m := NewMock(t)

	update := command(userID, "/daily")
	update.Message.Chat = &tgbotapi.Chat{ID: -5, Type: "group"}
	b.HandleUpdate(context.Background(), update)
	assert.Empty(t, m.out.messages())
}

func TestStart(t *testing.T) {
	referrer := int64(9)

	tests := []struct {
		name        string
		text        string
		prepareMock func(m *mocks)
		check       func(t *testing.T, m *mocks)
	}{
		{
			name: "New user by referral link",
			text: "/start ref9",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().Register(gomock.Any(), userservice.RegisterInput{
					ID: userID, Username: "annushka", FirstName: "Ann", Payload: "ref9",
				}).Return(&userservice.RegisterResult{
					User: &domain.User{ID: userID, Username: "annushka"}, Created: true, ReferrerID: &referrer, Reward: 2,
				}, nil)
			},
			check: func(t *testing.T, m *mocks) {
				toReferrer := m.out.to(referrer)
				require.Len(t, toReferrer, 1)
				assert.Contains(t, toReferrer[0].text, "+2")

				toUser := m.out.to(userID)
				require.Len(t, toUser, 1)
				assert.Contains(t, toUser[0].text, "@annushka")
				assert.Contains(t, callbackData(toUser[0].markup), cbDaily)
				assert.NotContains(t, callbackData(toUser[0].markup), cbAdminPanel)
			},
		},
		{
			name: "Duel link",
			text: "/start duel_5",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&userservice.RegisterResult{User: &domain.User{ID: userID}}, nil)
				m.duels.EXPECT().Get(gomock.Any(), int64(5)).
					Return(&domain.Duel{ID: 5, CreatorID: 9, Stake: 3, Status: domain.DuelOpen}, nil)
			},
			check: func(t *testing.T, m *mocks) {
				toUser := m.out.to(userID)
				require.Len(t, toUser, 1)
				assert.Contains(t, toUser[0].text, "Дуэль #5")
				assert.Contains(t, callbackData(toUser[0].markup), "duel_join_5")
			},
		},
		{
			name: "Register fails",
			text: "/start",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			check: func(t *testing.T, m *mocks) {
				toUser := m.out.to(userID)
				require.Len(t, toUser, 1)
				assert.Contains(t, toUser[0].text, "попробуйте позже")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, m := NewMock(t)
			tt.prepareMock(m)
			b.HandleUpdate(context.Background(), command(userID, tt.text))
			tt.check(t, m)
		})
	}
}

func TestSubscriptionGate(t *testing.T) {
	tests := []struct {
		name     string
		channel  string
		member   tgbotapi.ChatMember
		err      error
		expected bool
	}{
		{name: "Gate disabled", channel: "", expected: true},
		{name: "Member", channel: "-1001", member: tgbotapi.ChatMember{Status: "member"}, expected: true},
		{name: "Creator", channel: "@chan", member: tgbotapi.ChatMember{Status: "creator"}, expected: true},
		{name: "Left", channel: "chan", member: tgbotapi.ChatMember{Status: "left"}, expected: false},
		{name: "Restricted member", channel: "chan", member: tgbotapi.ChatMember{Status: "restricted", IsMember: true}, expected: true},
		{name: "Lookup error lets user in", channel: "chan", err: errors.New("chat not found"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, m := NewMock(t)
			b.cfg.ChannelID = tt.channel
			if tt.channel != "" {
				m.api.EXPECT().GetChatMember(gomock.Any()).DoAndReturn(func(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
					assert.Equal(t, userID, cfg.UserID)
					if strings.HasPrefix(tt.channel, "-") {
						assert.Equal(t, int64(-1001), cfg.ChatID)
					} else {
						assert.Equal(t, "@chan", cfg.SuperGroupUsername)
					}
					return tt.member, tt.err
				})
			}
			assert.Equal(t, tt.expected, b.subscribed(userID))
		})
	}
}

func TestStartNotSubscribed(t *testing.T) {
	b, m := NewMock(t)
	b.cfg.ChannelID = "@chan"

	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&userservice.RegisterResult{User: &domain.User{ID: userID}}, nil)
	m.api.EXPECT().GetChatMember(gomock.Any()).Return(tgbotapi.ChatMember{Status: "left"}, nil)

	b.HandleUpdate(context.Background(), command(userID, "/start"))

	toUser := m.out.to(userID)
	require.Len(t, toUser, 1)
	assert.Contains(t, toUser[0].text, "Подпишитесь")
	assert.Equal(t, []string{cbCheckSub}, callbackData(toUser[0].markup))
}

func TestCheckSub(t *testing.T) {
	b, m := NewMock(t)
	b.cfg.ChannelID = "@chan"
	touch(m)

	m.api.EXPECT().GetChatMember(gomock.Any()).Return(tgbotapi.ChatMember{Status: "left"}, nil)
	b.HandleUpdate(context.Background(), callback(userID, cbCheckSub))
	assert.True(t, m.out.lastAnswer().ShowAlert)
	assert.Empty(t, m.out.messages())

	m.api.EXPECT().GetChatMember(gomock.Any()).Return(tgbotapi.ChatMember{Status: "member"}, nil)
	b.HandleUpdate(context.Background(), callback(userID, cbCheckSub))
	msgs := m.out.to(userID)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].edit)
	assert.Contains(t, msgs[0].text, "Подписка подтверждена")
}

func TestDaily(t *testing.T) {
	tests := []struct {
		name        string
		update      tgbotapi.Update
		prepareMock func(m *mocks)
		check       func(t *testing.T, m *mocks)
	}{
		{
			name:   "Claimed from menu",
			update: callback(userID, cbDaily),
			prepareMock: func(m *mocks) {
				m.rewards.EXPECT().ClaimDaily(gomock.Any(), userID).Return(&rewardsFixture, nil)
			},
			check: func(t *testing.T, m *mocks) {
				msgs := m.out.to(userID)
				require.Len(t, msgs, 1)
				assert.True(t, msgs[0].edit)
				assert.Contains(t, msgs[0].text, "+4.5")
				assert.Contains(t, msgs[0].text, "x1.5")
				assert.Contains(t, msgs[0].text, "24ч 0м")
				assert.Equal(t, "+4.5 ⭐", m.out.lastAnswer().Text)
			},
		},
		{
			name:   "Cooldown shown as popup",
			update: callback(userID, cbDaily),
			prepareMock: func(m *mocks) {
				m.rewards.EXPECT().ClaimDaily(gomock.Any(), userID).
					Return(nil, &cooldownFixture)
			},
			check: func(t *testing.T, m *mocks) {
				assert.Empty(t, m.out.messages())
				answer := m.out.lastAnswer()
				assert.True(t, answer.ShowAlert)
				assert.Equal(t, "⏳ Будет доступно через 3ч 30м", answer.Text)
			},
		},
		{
			name:   "Cooldown as command reply",
			update: command(userID, "/daily"),
			prepareMock: func(m *mocks) {
				m.rewards.EXPECT().ClaimDaily(gomock.Any(), userID).
					Return(nil, &cooldownFixture)
			},
			check: func(t *testing.T, m *mocks) {
				msgs := m.out.to(userID)
				require.Len(t, msgs, 1)
				assert.False(t, msgs[0].edit)
				assert.Contains(t, msgs[0].text, "3ч 30м")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, m := NewMock(t)
			touch(m)
			tt.prepareMock(m)
			b.HandleUpdate(context.Background(), tt.update)
			tt.check(t, m)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	b, m := NewMock(t)

	b.HandleUpdate(context.Background(), command(userID, "/give 2 10"))
	msgs := m.out.to(userID)
	require.Len(t, msgs, 1)
	assert.Equal(t, "⛔ Доступ запрещён", msgs[0].text)

	b.HandleUpdate(context.Background(), callback(userID, "adm_app_3"))
	assert.Equal(t, "⛔ Доступ запрещён", m.out.lastAnswer().Text)
}

func TestRun(t *testing.T) {
	b, m := NewMock(t)
	touch(m)

	updates := make(chan tgbotapi.Update, 1)
	m.api.EXPECT().GetUpdatesChan(gomock.Any()).DoAndReturn(func(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
		assert.Equal(t, pollTimeout, cfg.Timeout)
		assert.Contains(t, cfg.AllowedUpdates, "my_chat_member")
		return updates
	})
	updates <- command(userID, "/help")
	close(updates)

	b.Run(context.Background())

	msgs := m.out.to(userID)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].text, "/daily")
	assert.NotContains(t, msgs[0].text, "/give")
}

func TestRunStopsOnCancel(t *testing.T) {
	b, m := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	m.api.EXPECT().GetUpdatesChan(gomock.Any()).Return(make(chan tgbotapi.Update))
	m.api.EXPECT().StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
