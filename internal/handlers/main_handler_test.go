package handlers

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestHandleUpdate_Start(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler, mockBot, mockAPI := CreateTestMainHandler(logger)

	update := NewTestUpdate().WithCommand("start", 12345, 1).WithFrom("Иван", "Петров").Build()
	handler.HandleUpdate(context.Background(), update)

	require.Len(t, mockBot.Sent, 1)
	msg, ok := mockBot.Sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(12345), msg.ChatID)
	assert.Equal(t, "Hello, <b>Иван Петров</b>!", msg.Text)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Empty(t, mockAPI.SearchCalls)
}

func TestHandleUpdate_StartEscapesName(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler, mockBot, _ := CreateTestMainHandler(logger)

	update := NewTestUpdate().WithCommand("start", 1, 1).WithFrom("<script>", "").Build()
	handler.HandleUpdate(context.Background(), update)

	require.Len(t, mockBot.Sent, 1)
	msg := mockBot.Sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "Hello, <b>&lt;script&gt;</b>!", msg.Text)
}

func TestHandleUpdate_Dispatch(t *testing.T) {
	tests := []struct {
		name          string
		update        tgbotapi.Update
		searchCalls   int
		filmCalls     int
		expectedCalls []string
	}{
		{
			name:          "Text message searches",
			update:        NewTestUpdate().WithMessage("Тьма", 1, 1).Build(),
			searchCalls:   1,
			expectedCalls: []string{"sendMessage"},
		},
		{
			name:          "Unknown command is searched as text",
			update:        NewTestUpdate().WithCommand("help", 1, 1).Build(),
			searchCalls:   1,
			expectedCalls: []string{"sendMessage"},
		},
		{
			name:          "Inline query",
			update:        NewTestUpdate().WithInlineQuery("q1", "Тьма").Build(),
			searchCalls:   1,
			expectedCalls: []string{"tgbotapi.InlineConfig"},
		},
		{
			name:          "Chosen inline result",
			update:        NewTestUpdate().WithChosenInlineResult("1", "inline-1").Build(),
			filmCalls:     1,
			expectedCalls: []string{"editMessageText", "tgbotapi.EditMessageReplyMarkupConfig"},
		},
		{
			name:   "Unsupported update",
			update: tgbotapi.Update{UpdateID: 7, CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			handler, mockBot, mockAPI := CreateTestMainHandler(logger, simpleSearchFilm(1))
			mockAPI.Films[1] = fullFilm(1)

			handler.HandleUpdate(context.Background(), tt.update)

			assert.Len(t, mockAPI.SearchCalls, tt.searchCalls)
			assert.Len(t, mockAPI.FilmCalls, tt.filmCalls)
			assert.Equal(t, tt.expectedCalls, mockBot.Calls)
			assert.Empty(t, hook.AllEntries())
		})
	}
}
