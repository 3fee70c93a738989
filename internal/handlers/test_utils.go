package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/p4vook/kpoisk-bot/internal/format"
	"github.com/p4vook/kpoisk-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// ============================================================================
// MOCK BOT
// ============================================================================

// MadeRequest - запрос, выполненный через MakeRequest
type MadeRequest struct {
	Endpoint string
	Params   tgbotapi.Params
}

// MockBot представляет мок для Telegram бота
type MockBot struct {
	mu sync.Mutex

	Sent     []tgbotapi.Chattable
	Requests []tgbotapi.Chattable
	Made     []MadeRequest
	// Calls - порядок вызовов: имя метода Bot API или тип запроса
	Calls []string

	SendError        error
	RequestError     error
	MakeRequestError error
}

// NewMockBot создает новый мок бота
func NewMockBot() *MockBot {
	return &MockBot{}
}

// Send имитирует отправку сообщения
func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("%T", c))
	if m.SendError != nil {
		return tgbotapi.Message{}, m.SendError
	}
	m.Sent = append(m.Sent, c)
	return tgbotapi.Message{MessageID: len(m.Sent)}, nil
}

// Request имитирует запрос к API
func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("%T", c))
	if m.RequestError != nil {
		return nil, m.RequestError
	}
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// MakeRequest имитирует запрос с произвольными параметрами
func (m *MockBot) MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, endpoint)
	if m.MakeRequestError != nil {
		return nil, m.MakeRequestError
	}
	m.Made = append(m.Made, MadeRequest{Endpoint: endpoint, Params: params})
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// CallCount возвращает общее число обращений к боту
func (m *MockBot) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastInlineAnswer возвращает последний ответ на inline-запрос
func (m *MockBot) LastInlineAnswer() *tgbotapi.InlineConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.Requests) - 1; i >= 0; i-- {
		if answer, ok := m.Requests[i].(tgbotapi.InlineConfig); ok {
			return &answer
		}
	}
	return nil
}

// ============================================================================
// MOCK FILM API
// ============================================================================

// FilmCall - аргументы одного вызова API
type FilmCall struct {
	Keyword string
	Page    int
	ID      int
}

// MockFilmAPI представляет мок для API КиноПоиска
type MockFilmAPI struct {
	mu sync.Mutex

	SearchResponse *models.SearchResponse
	SearchError    error
	Films          map[int]*models.Film
	FilmError      error

	SearchCalls []FilmCall
	FilmCalls   []FilmCall
}

// NewMockFilmAPI создает мок, который возвращает films на любой поисковый запрос
func NewMockFilmAPI(films ...models.SearchFilm) *MockFilmAPI {
	return &MockFilmAPI{
		SearchResponse: &models.SearchResponse{
			PagesCount:             1,
			SearchFilmsCountResult: len(films),
			Films:                  films,
		},
		Films: make(map[int]*models.Film),
	}
}

// SearchByKeyword имитирует поиск по ключевому слову
func (m *MockFilmAPI) SearchByKeyword(ctx context.Context, keyword string, page int) (*models.SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SearchCalls = append(m.SearchCalls, FilmCall{Keyword: keyword, Page: page})
	if m.SearchError != nil {
		return nil, m.SearchError
	}
	resp := *m.SearchResponse
	resp.Keyword = keyword
	return &resp, nil
}

// GetFilm имитирует получение полной карточки фильма
func (m *MockFilmAPI) GetFilm(ctx context.Context, id int) (*models.Film, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FilmCalls = append(m.FilmCalls, FilmCall{ID: id})
	if m.FilmError != nil {
		return nil, m.FilmError
	}
	film, exists := m.Films[id]
	if !exists {
		return nil, errors.New("film not found")
	}
	return film, nil
}

// ============================================================================
// TEST UTILITIES
// ============================================================================

// TestUpdateBuilder помогает создавать тестовые обновления
type TestUpdateBuilder struct {
	update tgbotapi.Update
}

// NewTestUpdate создает новый билдер обновлений
func NewTestUpdate() *TestUpdateBuilder {
	return &TestUpdateBuilder{
		update: tgbotapi.Update{UpdateID: 1},
	}
}

// WithMessage добавляет сообщение
func (b *TestUpdateBuilder) WithMessage(text string, chatID int64, userID int64) *TestUpdateBuilder {
	b.update.Message = &tgbotapi.Message{
		MessageID: 42,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{ID: userID},
	}
	return b
}

// WithCommand добавляет сообщение с командой, например "start"
func (b *TestUpdateBuilder) WithCommand(command string, chatID int64, userID int64) *TestUpdateBuilder {
	text := "/" + command
	b.WithMessage(text, chatID, userID)
	b.update.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(text)},
	}
	return b
}

// WithFrom задает имя отправителя сообщения
func (b *TestUpdateBuilder) WithFrom(firstName, lastName string) *TestUpdateBuilder {
	if b.update.Message != nil {
		b.update.Message.From.FirstName = firstName
		b.update.Message.From.LastName = lastName
	}
	return b
}

// WithInlineQuery добавляет inline-запрос
func (b *TestUpdateBuilder) WithInlineQuery(id, query string) *TestUpdateBuilder {
	b.update.InlineQuery = &tgbotapi.InlineQuery{
		ID:    id,
		From:  &tgbotapi.User{ID: 1},
		Query: query,
	}
	return b
}

// WithChosenInlineResult добавляет выбранную inline-карточку
func (b *TestUpdateBuilder) WithChosenInlineResult(resultID, inlineMessageID string) *TestUpdateBuilder {
	b.update.ChosenInlineResult = &tgbotapi.ChosenInlineResult{
		ResultID:        resultID,
		From:            &tgbotapi.User{ID: 1},
		InlineMessageID: inlineMessageID,
	}
	return b
}

// Build возвращает собранное обновление
func (b *TestUpdateBuilder) Build() tgbotapi.Update {
	return b.update
}

// CreateTestMainHandler создает MainHandler с моками и стандартными настройками
func CreateTestMainHandler(logger logrus.FieldLogger, films ...models.SearchFilm) (*MainHandler, *MockBot, *MockFilmAPI) {
	mockBot := NewMockBot()
	mockAPI := NewMockFilmAPI(films...)

	formatter := format.NewFormatter("https://kinopoisk.ru", 500)
	search := NewSearchHandlers(mockBot, formatter, 5, logger)
	return NewMainHandler(mockAPI, search, logger), mockBot, mockAPI
}
