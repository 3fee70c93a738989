package handlers

import (
	"context"

	"github.com/p4vook/kpoisk-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI интерфейс для Telegram бота
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
}

// FilmAPI интерфейс сессии API КиноПоиска
type FilmAPI interface {
	SearchByKeyword(ctx context.Context, keyword string, page int) (*models.SearchResponse, error)
	GetFilm(ctx context.Context, id int) (*models.Film, error)
}
