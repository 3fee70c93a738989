package handlers

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/p4vook/kpoisk-bot/internal/format"
	"github.com/p4vook/kpoisk-bot/internal/models"
	"github.com/p4vook/kpoisk-bot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Идентификаторы служебных inline-карточек. Настоящие идентификаторы - десятичные числа.
const (
	EmptyResultID = "EMPTY"
	ErrorResultID = "ERROR"
)

const (
	emptyResultTitle = "Наберите название фильма, чтобы найти его в КиноПоиске"
	emptyResultText  = "Этот бот поможет вам найти фильм в КиноПоиске"
	errorResultTitle = "Упс, что-то пошло не так"
	errorResultText  = "Что-то пошло не так :("

	searchPage = 1
)

// SearchHandlers содержит обработчики поиска фильмов
type SearchHandlers struct {
	bot        BotAPI
	formatter  *format.Formatter
	topResults int
	logger     logrus.FieldLogger
}

// NewSearchHandlers создает обработчики. topResults - сколько первых результатов показывать.
func NewSearchHandlers(bot BotAPI, formatter *format.Formatter, topResults int, logger logrus.FieldLogger) *SearchHandlers {
	return &SearchHandlers{
		bot:        bot,
		formatter:  formatter,
		topResults: topResults,
		logger:     logger,
	}
}

// HandleStart обрабатывает команду /start
func (h *SearchHandlers) HandleStart(msg *tgbotapi.Message) {
	text := fmt.Sprintf("Hello, <b>%s</b>!", html.EscapeString(fullName(msg.From)))

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeHTML

	if _, err := h.bot.Send(reply); err != nil {
		h.logger.WithError(err).WithField("chat_id", msg.Chat.ID).Error("Error sending greeting")
	}
}

// HandleSearch ищет фильмы по тексту сообщения и отвечает карточкой на каждый из первых результатов
func (h *SearchHandlers) HandleSearch(ctx context.Context, api FilmAPI, msg *tgbotapi.Message) {
	if msg.Text == "" {
		return
	}
	log := h.logger.WithField("keyword", msg.Text)

	resp, err := api.SearchByKeyword(ctx, msg.Text, searchPage)
	if err != nil {
		log.WithError(err).Error("Search request failed")
		return
	}

	for _, film := range h.top(resp.Films) {
		f := format.FromSearch(film)
		content, err := h.formatter.TextMessage(f)
		if err != nil {
			log.WithError(err).WithField("film_id", f.ID()).Error("Error formatting film")
			continue
		}

		params, err := telegram.SendMessageParams(msg.Chat.ID, msg.MessageID, content)
		if err != nil {
			log.WithError(err).WithField("film_id", f.ID()).Error("Error building message")
			continue
		}
		if _, err := h.bot.MakeRequest(telegram.MethodSendMessage, params); err != nil {
			log.WithError(err).WithField("film_id", f.ID()).Error("Error sending message")
		}
	}
}

// HandleInlineQuery отвечает на inline-запрос списком карточек фильмов
func (h *SearchHandlers) HandleInlineQuery(ctx context.Context, api FilmAPI, query *tgbotapi.InlineQuery) {
	if query.Query == "" {
		h.answer(query.ID, telegram.PlaceholderArticle(EmptyResultID, emptyResultTitle, emptyResultText))
		return
	}
	log := h.logger.WithFields(logrus.Fields{
		"inline_query_id": query.ID,
		"keyword":         query.Query,
	})

	resp, err := api.SearchByKeyword(ctx, query.Query, searchPage)
	if err != nil {
		log.WithError(err).Error("Search request failed")
		h.answerError(query.ID)
		return
	}

	films := h.top(resp.Films)
	articles := make([]telegram.InlineQueryResultArticle, 0, len(films))
	for _, film := range films {
		result, err := h.formatter.Inline(format.FromSearch(film))
		if err != nil {
			log.WithError(err).WithField("film_id", film.FilmID).Error("Error formatting film")
			h.answerError(query.ID)
			return
		}
		articles = append(articles, telegram.Article(result))
	}

	h.answer(query.ID, articles...)
}

// HandleChosenInlineResult заменяет отправленную inline-карточку полным описанием фильма
func (h *SearchHandlers) HandleChosenInlineResult(ctx context.Context, api FilmAPI, result *tgbotapi.ChosenInlineResult) {
	if result.ResultID == EmptyResultID || result.ResultID == ErrorResultID {
		return
	}
	log := h.logger.WithFields(logrus.Fields{
		"result_id":         result.ResultID,
		"inline_message_id": result.InlineMessageID,
	})

	id, err := strconv.Atoi(result.ResultID)
	if err != nil {
		log.WithError(err).Error("Invalid result id")
		return
	}
	if result.InlineMessageID == "" {
		log.Warn("Chosen result has no inline message to edit")
		return
	}

	film, err := api.GetFilm(ctx, id)
	if err != nil {
		log.WithError(err).Error("Film request failed")
		return
	}

	f := format.FromFull(*film)
	content, err := h.formatter.TextMessage(f)
	if err != nil {
		log.WithError(err).Error("Error formatting film")
		return
	}

	params, err := telegram.EditInlineTextParams(result.InlineMessageID, content)
	if err != nil {
		log.WithError(err).Error("Error building message")
		return
	}
	if _, err := h.bot.MakeRequest(telegram.MethodEditMessageText, params); err != nil {
		log.WithError(err).Error("Error editing message text")
		return
	}

	if _, err := h.bot.Request(telegram.EditInlineMarkup(result.InlineMessageID, h.formatter.ActionButton(f))); err != nil {
		log.WithError(err).Error("Error editing reply markup")
	}
}

func (h *SearchHandlers) answerError(queryID string) {
	h.answer(queryID, telegram.PlaceholderArticle(ErrorResultID, errorResultTitle, errorResultText))
}

func (h *SearchHandlers) answer(queryID string, articles ...telegram.InlineQueryResultArticle) {
	if _, err := h.bot.Request(telegram.AnswerInline(queryID, articles)); err != nil {
		h.logger.WithError(err).WithField("inline_query_id", queryID).Error("Error answering inline query")
	}
}

// top возвращает первые topResults фильмов с идентификатором
func (h *SearchHandlers) top(films []models.SearchFilm) []models.SearchFilm {
	if len(films) > h.topResults {
		films = films[:h.topResults]
	}

	valid := make([]models.SearchFilm, 0, len(films))
	for _, film := range films {
		if format.FromSearch(film).IsValid() {
			valid = append(valid, film)
		}
	}
	return valid
}

func fullName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
