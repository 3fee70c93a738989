package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// TelegramBotAdapter адаптер для реального tgbotapi.BotAPI
type TelegramBotAdapter struct {
	bot    *tgbotapi.BotAPI
	logger logrus.FieldLogger
}

// NewTelegramBotAdapter создает новый адаптер
func NewTelegramBotAdapter(bot *tgbotapi.BotAPI, logger logrus.FieldLogger) *TelegramBotAdapter {
	return &TelegramBotAdapter{bot: bot, logger: logger}
}

// Send отправляет сообщение
func (a *TelegramBotAdapter) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	a.logger.Debugf("Bot API call: %T", c)
	return a.bot.Send(c)
}

// Request выполняет запрос к API
func (a *TelegramBotAdapter) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	a.logger.Debugf("Bot API call: %T", c)
	return a.bot.Request(c)
}

// MakeRequest выполняет запрос с произвольными параметрами
func (a *TelegramBotAdapter) MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	a.logger.Debugf("Bot API call: %s", endpoint)
	return a.bot.MakeRequest(endpoint, params)
}
