package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// MainHandler обрабатывает все входящие обновления
type MainHandler struct {
	session FilmAPI
	search  *SearchHandlers
	logger  logrus.FieldLogger
}

// NewMainHandler создает диспетчер обновлений. session - общая сессия API,
// она передается каждому обработчику явно.
func NewMainHandler(session FilmAPI, search *SearchHandlers, logger logrus.FieldLogger) *MainHandler {
	return &MainHandler{
		session: session,
		search:  search,
		logger:  logger,
	}
}

// HandleUpdate обрабатывает входящее обновление от Telegram
func (h *MainHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	log := h.logger.WithField("update_id", update.UpdateID)

	switch {
	case update.Message != nil:
		if update.Message.IsCommand() && update.Message.Command() == "start" {
			log.Debug("Start command")
			h.search.HandleStart(update.Message)
			return
		}
		log.Debug("Text message")
		h.search.HandleSearch(ctx, h.session, update.Message)

	case update.InlineQuery != nil:
		log.Debug("Inline query")
		h.search.HandleInlineQuery(ctx, h.session, update.InlineQuery)

	case update.ChosenInlineResult != nil:
		log.Debug("Chosen inline result")
		h.search.HandleChosenInlineResult(ctx, h.session, update.ChosenInlineResult)

	default:
		log.Debug("Ignoring unsupported update")
	}
}
