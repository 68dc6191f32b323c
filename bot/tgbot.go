package bot

import (
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"saleportal/internal/lib/sl"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
)

// TgBot forwards warning-level log records to the configured admins and
// lets each admin tune their own verbosity with /level.
type TgBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminIds    []int64
	adminLevels map[int64]slog.Level
	mu          sync.RWMutex
}

func NewTgBot(botName, apiKey, adminIdsStr string, log *slog.Logger) (*TgBot, error) {
	var adminIds []int64
	for _, idStr := range strings.Split(adminIdsStr, ",") {
		idStr = strings.TrimSpace(idStr)
		if idStr == "" {
			continue
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin_id value: %q, must be a comma-separated list of integers", adminIdsStr)
		}
		adminIds = append(adminIds, id)
	}

	adminLevels := make(map[int64]slog.Level)
	for _, adminId := range adminIds {
		adminLevels[adminId] = slog.LevelWarn
	}

	tgBot := &TgBot{
		log:         log.With(sl.Module("tgbot")),
		adminIds:    adminIds,
		botUsername: botName,
		adminLevels: adminLevels,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	tgBot.api = api

	return tgBot, nil
}

// Start polls for updates and blocks until the updater stops.
func (t *TgBot) Start() error {
	dispatcher := ext.NewDispatcher(&ext.DispatcherOpts{
		Error: func(b *tgbotapi.Bot, ctx *ext.Context, err error) ext.DispatcherAction {
			log.Println("an error occurred while handling update:", err.Error())
			return ext.DispatcherActionNoop
		},
		MaxRoutines: ext.DefaultMaxRoutines,
	})
	updater := ext.NewUpdater(dispatcher, nil)

	dispatcher.AddHandler(handlers.NewCommand("level", t.level))

	err := updater.StartPolling(t.api, &ext.PollingOpts{
		DropPendingUpdates: true,
		GetUpdatesOpts: &tgbotapi.GetUpdatesOpts{
			Timeout: 9,
			RequestOpts: &tgbotapi.RequestOpts{
				Timeout: time.Second * 10,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("start polling: %w", err)
	}

	updater.Idle()
	return nil
}

// Notify implements logger.Notifier: every admin whose configured level
// admits the record gets a copy.
func (t *TgBot) Notify(level slog.Level, message string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, adminId := range t.adminIds {
		if level < t.adminLevels[adminId] {
			continue
		}
		if _, err := t.api.SendMessage(adminId, message, nil); err != nil {
			t.log.Warn("failed to send telegram message", sl.Err(err))
		}
	}
}

// level handles /level <debug|info|warn|error> from an admin chat.
func (t *TgBot) level(b *tgbotapi.Bot, ctx *ext.Context) error {
	chatId := ctx.EffectiveChat.Id
	if !t.isAdmin(chatId) {
		return nil
	}

	args := strings.Fields(ctx.EffectiveMessage.Text)
	if len(args) < 2 {
		_, err := b.SendMessage(chatId, "usage: /level debug|info|warn|error", nil)
		return err
	}

	var lvl slog.Level
	switch strings.ToLower(args[1]) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		_, err := b.SendMessage(chatId, "unknown level "+args[1], nil)
		return err
	}

	t.mu.Lock()
	t.adminLevels[chatId] = lvl
	t.mu.Unlock()

	_, err := b.SendMessage(chatId, "notification level set to "+lvl.String(), nil)
	return err
}

func (t *TgBot) isAdmin(chatId int64) bool {
	for _, adminId := range t.adminIds {
		if adminId == chatId {
			return true
		}
	}
	return false
}
