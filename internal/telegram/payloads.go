// Package telegram переводит сообщения форматтера в запросы Bot API.
// Поля link_preview_options и thumbnail_url отсутствуют в типах tgbotapi,
// поэтому такие запросы собираются здесь вручную.
package telegram

import (
	"github.com/p4vook/kpoisk-bot/internal/format"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	MethodSendMessage     = "sendMessage"
	MethodEditMessageText = "editMessageText"

	articleType = "article"
)

// LinkPreviewOptions соответствует объекту LinkPreviewOptions Bot API
type LinkPreviewOptions struct {
	IsDisabled    bool   `json:"is_disabled,omitempty"`
	URL           string `json:"url,omitempty"`
	ShowAboveText bool   `json:"show_above_text,omitempty"`
}

// InputTextMessageContent - содержимое сообщения, отправляемого при выборе inline-карточки
type InputTextMessageContent struct {
	MessageText        string                   `json:"message_text"`
	Entities           []tgbotapi.MessageEntity `json:"entities,omitempty"`
	LinkPreviewOptions *LinkPreviewOptions      `json:"link_preview_options,omitempty"`
}

// InlineQueryResultArticle - карточка-статья в ответе на inline-запрос
type InlineQueryResultArticle struct {
	Type                string                         `json:"type"`
	ID                  string                         `json:"id"`
	Title               string                         `json:"title"`
	InputMessageContent InputTextMessageContent        `json:"input_message_content"`
	ReplyMarkup         *tgbotapi.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	Description         string                         `json:"description,omitempty"`
	ThumbnailURL        string                         `json:"thumbnail_url,omitempty"`
}

// Entities переводит разметку форматтера в MessageEntity
func Entities(spans []format.Span) []tgbotapi.MessageEntity {
	if len(spans) == 0 {
		return nil
	}
	entities := make([]tgbotapi.MessageEntity, 0, len(spans))
	for _, s := range spans {
		entities = append(entities, tgbotapi.MessageEntity{
			Type:   string(s.Kind),
			Offset: s.Offset,
			Length: s.Length,
			URL:    s.URL,
		})
	}
	return entities
}

// PreviewOptions переводит настройки превью ссылки
func PreviewOptions(p format.LinkPreview) *LinkPreviewOptions {
	return &LinkPreviewOptions{
		IsDisabled:    p.Disabled,
		URL:           p.URL,
		ShowAboveText: p.ShowAboveText,
	}
}

// Keyboard возвращает клавиатуру из одной кнопки-ссылки
func Keyboard(b format.Button) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL),
		),
	)
}

// Article собирает inline-карточку фильма
func Article(r format.InlineResult) InlineQueryResultArticle {
	markup := Keyboard(r.Button)
	return InlineQueryResultArticle{
		Type:  articleType,
		ID:    r.ID,
		Title: r.Title,
		InputMessageContent: InputTextMessageContent{
			MessageText:        r.Content.Content.String,
			Entities:           Entities(r.Content.Content.Spans),
			LinkPreviewOptions: PreviewOptions(r.Content.Preview),
		},
		ReplyMarkup:  &markup,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
	}
}

// PlaceholderArticle собирает служебную карточку без кнопки
func PlaceholderArticle(id, title, text string) InlineQueryResultArticle {
	return InlineQueryResultArticle{
		Type:                articleType,
		ID:                  id,
		Title:               title,
		InputMessageContent: InputTextMessageContent{MessageText: text},
	}
}

// AnswerInline собирает ответ на inline-запрос
func AnswerInline(queryID string, articles []InlineQueryResultArticle) tgbotapi.InlineConfig {
	results := make([]interface{}, 0, len(articles))
	for _, a := range articles {
		results = append(results, a)
	}
	return tgbotapi.InlineConfig{
		InlineQueryID: queryID,
		Results:       results,
	}
}

// SendMessageParams собирает параметры sendMessage с ответом на сообщение replyTo
func SendMessageParams(chatID int64, replyTo int, msg format.Message) (tgbotapi.Params, error) {
	params := make(tgbotapi.Params)
	params.AddNonZero64("chat_id", chatID)
	params.AddNonZero("reply_to_message_id", replyTo)
	if err := addMessage(params, msg); err != nil {
		return nil, err
	}
	return params, nil
}

// EditInlineTextParams собирает параметры editMessageText для inline-сообщения
func EditInlineTextParams(inlineMessageID string, msg format.Message) (tgbotapi.Params, error) {
	params := make(tgbotapi.Params)
	params.AddNonEmpty("inline_message_id", inlineMessageID)
	if err := addMessage(params, msg); err != nil {
		return nil, err
	}
	return params, nil
}

// EditInlineMarkup собирает запрос на замену клавиатуры inline-сообщения
func EditInlineMarkup(inlineMessageID string, b format.Button) tgbotapi.EditMessageReplyMarkupConfig {
	markup := Keyboard(b)
	return tgbotapi.EditMessageReplyMarkupConfig{
		BaseEdit: tgbotapi.BaseEdit{
			InlineMessageID: inlineMessageID,
			ReplyMarkup:     &markup,
		},
	}
}

func addMessage(params tgbotapi.Params, msg format.Message) error {
	params.AddNonEmpty("text", msg.Content.String)
	if entities := Entities(msg.Content.Spans); len(entities) > 0 {
		if err := params.AddInterface("entities", entities); err != nil {
			return err
		}
	}
	return params.AddInterface("link_preview_options", PreviewOptions(msg.Preview))
}
