package telegram

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram API for a single destination chat. Every message it
// sends is tracked by ID so /clear can delete the bot's own output later.
type Bot struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	sentIDs mapset.Set[int]
	log     zerolog.Logger
}

func NewBot(token string, chatID int64, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:     api,
		chatID:  chatID,
		sentIDs: mapset.NewSet[int](),
		log:     log,
	}, nil
}

// Username is the bot's own handle, used to strip "@bot" command suffixes.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SendHTML delivers one HTML-formatted message to the destination chat and
// records its ID for later clearing.
func (b *Bot) SendHTML(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	sent, err := b.api.Send(msg)
	if err != nil {
		return err
	}
	b.sentIDs.Add(sent.MessageID)
	return nil
}

// ClearSent deletes every message sent during this process run. Individual
// delete failures are swallowed and simply not counted. Returns how many were
// deleted and how many were tracked.
func (b *Bot) ClearSent() (deleted, tracked int) {
	ids := b.sentIDs.ToSlice()
	b.sentIDs.Clear()
	sort.Ints(ids)

	for _, id := range ids {
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(b.chatID, id)); err != nil {
			b.log.Warn().Err(err).Int("message_id", id).Msg("failed to delete message")
			continue
		}
		deleted++
	}
	return deleted, len(ids)
}

// Updates long-polls for inbound updates starting at offset. timeoutSec bounds
// the server-side wait per call.
func (b *Bot) Updates(offset, timeoutSec int) ([]tgbotapi.Update, error) {
	u := tgbotapi.NewUpdate(offset)
	u.Timeout = timeoutSec
	return b.api.GetUpdates(u)
}
