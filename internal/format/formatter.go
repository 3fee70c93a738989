package format

import (
	"fmt"
	"strconv"
	"strings"
)

// ViewButtonText - подпись кнопки со ссылкой на страницу фильма
const ViewButtonText = "Посмотреть на КиноПоиске"

// LinkPreview описывает превью ссылки в сообщении
type LinkPreview struct {
	Disabled      bool
	URL           string
	ShowAboveText bool
}

// Message - готовое к отправке текстовое сообщение
type Message struct {
	Content Text
	Preview LinkPreview
}

// Button - кнопка-ссылка под сообщением
type Button struct {
	Text string
	URL  string
}

// InlineResult - карточка фильма в ответе на inline-запрос
type InlineResult struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	Content      Message
	Button       Button
}

// Formatter строит сообщения и inline-карточки по фильму
type Formatter struct {
	root              string
	descriptionLength int
}

// NewFormatter создает форматтер. root - адрес сайта КиноПоиска,
// descriptionLength - максимальная длина описания в символах.
func NewFormatter(root string, descriptionLength int) *Formatter {
	return &Formatter{
		root:              root,
		descriptionLength: descriptionLength,
	}
}

// InlineTitle возвращает заголовок вида "Название (фильм, 2007)"
func (fm *Formatter) InlineTitle(f Film) (string, error) {
	kindAndYear, err := f.TitleWithKindAndYear()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s)", f.Title(), kindAndYear), nil
}

// InlineDescription возвращает жанры через запятую
func (fm *Formatter) InlineDescription(f Film) string {
	return strings.Join(f.Genres(), ", ")
}

// InlineContent возвращает сообщение, которое отправится при выборе карточки.
// При наличии постера заголовок становится ссылкой на него, а превью показывается над текстом.
func (fm *Formatter) InlineContent(f Film) (Message, error) {
	title, err := fm.InlineTitle(f)
	if err != nil {
		return Message{}, err
	}

	if !f.HasPoster() {
		return Message{
			Content: Plain(title),
			Preview: LinkPreview{Disabled: true},
		}, nil
	}

	return Message{
		Content: Link(title, f.PosterURL()),
		Preview: LinkPreview{ShowAboveText: true},
	}, nil
}

// ActionButton возвращает кнопку со ссылкой на страницу фильма
func (fm *Formatter) ActionButton(f Film) Button {
	return Button{Text: ViewButtonText, URL: f.DetailURL(fm.root)}
}

// Inline собирает inline-карточку фильма
func (fm *Formatter) Inline(f Film) (InlineResult, error) {
	title, err := fm.InlineTitle(f)
	if err != nil {
		return InlineResult{}, err
	}
	content, err := fm.InlineContent(f)
	if err != nil {
		return InlineResult{}, err
	}

	return InlineResult{
		ID:           strconv.Itoa(f.ID()),
		Title:        title,
		Description:  fm.InlineDescription(f),
		ThumbnailURL: f.PosterPreviewURL(),
		Content:      content,
		Button:       fm.ActionButton(f),
	}, nil
}

// TextMessage собирает полное сообщение о фильме
func (fm *Formatter) TextMessage(f Film) (Message, error) {
	content, err := fm.textContent(f)
	if err != nil {
		return Message{}, err
	}

	preview := LinkPreview{Disabled: true}
	if f.HasPoster() {
		preview = LinkPreview{URL: f.PosterURL(), ShowAboveText: true}
	}

	return Message{Content: content, Preview: preview}, nil
}

// ShortDescription возвращает описание, сокращенное до заданной длины
func (fm *Formatter) ShortDescription(f Film) string {
	return Shorten(f.Description(), fm.descriptionLength)
}

func (fm *Formatter) textContent(f Film) (Text, error) {
	title, err := fm.titleLine(f)
	if err != nil {
		return Text{}, err
	}

	lines := []Text{title}
	if genres, ok := fm.genresLine(f); ok {
		lines = append(lines, genres)
	}
	if rating, ok := fm.ratingLine(f); ok {
		lines = append(lines, rating)
	}
	if length, ok := fm.lengthLine(f); ok {
		lines = append(lines, length)
	}
	lines = append(lines, Plain("\n"), fm.descriptionLine(f))

	return Concat(lines...), nil
}

func (fm *Formatter) titleLine(f Film) (Text, error) {
	kindAndYear, err := f.TitleWithKindAndYear()
	if err != nil {
		return Text{}, err
	}
	return Line(
		Bold("Название:"),
		Link(f.Title(), f.DetailURL(fm.root)),
		Plain("("+kindAndYear+")"),
	), nil
}

func (fm *Formatter) genresLine(f Film) (Text, bool) {
	genres := f.Genres()
	if len(genres) == 0 {
		return Text{}, false
	}

	tags := make([]Text, 0, len(genres))
	for _, g := range genres {
		tags = append(tags, HashTag("#"+g))
	}
	return Line(Bold("Жанры:"), Join(", ", tags...)), true
}

func (fm *Formatter) ratingLine(f Film) (Text, bool) {
	rating, ok := f.Rating()
	if !ok {
		return Text{}, false
	}
	return Line(
		Bold("Рейтинг:"),
		Plain(rating.Value),
		Italic(fmt.Sprintf("(%d оценок)", rating.Votes)),
	), true
}

func (fm *Formatter) lengthLine(f Film) (Text, bool) {
	length := f.Length()
	if length == "" {
		return Text{}, false
	}
	return Line(Bold("Длина:"), Plain(length)), true
}

func (fm *Formatter) descriptionLine(f Film) Text {
	return Line(Bold("Описание:"), Plain(fm.ShortDescription(f)))
}
