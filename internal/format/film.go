package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/p4vook/kpoisk-bot/internal/models"
)

const (
	untitled      = "Без названия"
	noDescription = "Без описания"
)

// ErrUnknownKind возвращается, если тип фильма отсутствует в таблице подписей
var ErrUnknownKind = errors.New("unknown film kind")

var kindLabels = map[string]string{
	"FILM":        "фильм",
	"MINI_SERIES": "мини-сериал",
	"TV_SERIES":   "сериал",
	"TV_SHOW":     "ТВ-шоу",
	"VIDEO":       "видео",
}

// Rating - значение рейтинга и число оценок
type Rating struct {
	Value string
	Votes int
}

// Film дает единый набор методов поверх двух форм ответа API:
// фильма из поиска и полной карточки. Ровно одно из полей не nil.
type Film struct {
	search *models.SearchFilm
	full   *models.Film
}

// FromSearch оборачивает фильм из результатов поиска
func FromSearch(f models.SearchFilm) Film {
	return Film{search: &f}
}

// FromFull оборачивает полную карточку фильма
func FromFull(f models.Film) Film {
	return Film{full: &f}
}

// ID возвращает идентификатор фильма на КиноПоиске
func (f Film) ID() int {
	if f.full != nil {
		return f.full.KinopoiskID
	}
	return f.search.FilmID
}

// IsValid сообщает, что у фильма есть идентификатор
func (f Film) IsValid() bool {
	return f.ID() != 0
}

// HasPoster для полной карточки проверяет наличие обложки,
// для фильма из поиска - наличие и постера, и его превью.
func (f Film) HasPoster() bool {
	if f.full != nil {
		return f.full.CoverURL != nil
	}
	return f.search.PosterURL != "" && f.search.PosterURLPreview != ""
}

// PosterURL возвращает адрес постера или пустую строку
func (f Film) PosterURL() string {
	if f.full != nil {
		if f.full.CoverURL == nil {
			return ""
		}
		return *f.full.CoverURL
	}
	return f.search.PosterURL
}

// PosterPreviewURL возвращает адрес превью постера или пустую строку
func (f Film) PosterPreviewURL() string {
	if f.full != nil {
		return f.full.PosterURLPreview
	}
	return f.search.PosterURLPreview
}

// Title возвращает русское название
func (f Film) Title() string {
	var name string
	if f.full != nil {
		name = f.full.NameRu
	} else {
		name = f.search.NameRu
	}
	if name == "" {
		return untitled
	}
	return name
}

// KindLabel возвращает подпись для типа фильма
func (f Film) KindLabel() (string, error) {
	kind := f.kind()
	label, ok := kindLabels[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return label, nil
}

// Description возвращает описание без сокращения
func (f Film) Description() string {
	var description string
	if f.full != nil {
		description = f.full.Description
	} else {
		description = f.search.Description
	}
	if description == "" {
		return noDescription
	}
	return description
}

// DetailURL возвращает адрес страницы фильма на сайте root
func (f Film) DetailURL(root string) string {
	return strings.TrimRight(root, "/") + "/film/" + strconv.Itoa(f.ID()) + "/"
}

// Year возвращает год выпуска или пустую строку
func (f Film) Year() string {
	if f.full != nil {
		if f.full.Year == nil || *f.full.Year == 0 {
			return ""
		}
		return strconv.Itoa(*f.full.Year)
	}
	return f.search.Year
}

// Rating возвращает рейтинг, если известны и значение, и число оценок
func (f Film) Rating() (Rating, bool) {
	if f.full != nil {
		r := f.full.RatingKinopoisk
		if r == nil || f.full.RatingKinopoiskVoteCount == 0 {
			return Rating{}, false
		}
		if v, err := r.Float64(); err != nil || v == 0 {
			return Rating{}, false
		}
		return Rating{Value: r.String(), Votes: f.full.RatingKinopoiskVoteCount}, true
	}

	r := f.search.Rating
	if r == "" || r == "null" || f.search.RatingVoteCount == 0 {
		return Rating{}, false
	}
	return Rating{Value: r, Votes: f.search.RatingVoteCount}, true
}

// Genres возвращает жанры в порядке API
func (f Film) Genres() []string {
	if f.full != nil {
		return models.GenreNames(f.full.Genres)
	}
	return models.GenreNames(f.search.Genres)
}

// Length возвращает продолжительность или пустую строку
func (f Film) Length() string {
	if f.full != nil {
		if f.full.FilmLength == nil || *f.full.FilmLength == 0 {
			return ""
		}
		return strconv.Itoa(*f.full.FilmLength)
	}
	return f.search.FilmLength
}

// TitleWithKindAndYear возвращает "фильм, 2007" или просто "фильм", если год неизвестен
func (f Film) TitleWithKindAndYear() (string, error) {
	label, err := f.KindLabel()
	if err != nil {
		return "", err
	}
	if year := f.Year(); year != "" {
		return label + ", " + year, nil
	}
	return label, nil
}

func (f Film) kind() string {
	if f.full != nil {
		return f.full.Type
	}
	return f.search.Type
}
