package models

import "encoding/json"

// Genre представляет жанр фильма
type Genre struct {
	Genre string `json:"genre"`
}

// Country представляет страну производства
type Country struct {
	Country string `json:"country"`
}

// SearchFilm представляет фильм из ответа поиска по ключевому слову
type SearchFilm struct {
	FilmID           int       `json:"filmId"`
	NameRu           string    `json:"nameRu"`
	NameEn           string    `json:"nameEn"`
	Type             string    `json:"type"`
	Year             string    `json:"year"`
	Description      string    `json:"description"`
	FilmLength       string    `json:"filmLength"`
	Countries        []Country `json:"countries"`
	Genres           []Genre   `json:"genres"`
	Rating           string    `json:"rating"`
	RatingVoteCount  int       `json:"ratingVoteCount"`
	PosterURL        string    `json:"posterUrl"`
	PosterURLPreview string    `json:"posterUrlPreview"`
}

// SearchResponse представляет страницу результатов поиска по ключевому слову
type SearchResponse struct {
	Keyword                string       `json:"keyword"`
	PagesCount             int          `json:"pagesCount"`
	SearchFilmsCountResult int          `json:"searchFilmsCountResult"`
	Films                  []SearchFilm `json:"films"`
}

// Film представляет полную карточку фильма, полученную по идентификатору
type Film struct {
	KinopoiskID              int          `json:"kinopoiskId"`
	ImdbID                   string       `json:"imdbId"`
	NameRu                   string       `json:"nameRu"`
	NameEn                   string       `json:"nameEn"`
	NameOriginal             string       `json:"nameOriginal"`
	PosterURL                string       `json:"posterUrl"`
	PosterURLPreview         string       `json:"posterUrlPreview"`
	CoverURL                 *string      `json:"coverUrl"` // null, если обложки нет
	RatingKinopoisk          *json.Number `json:"ratingKinopoisk"`
	RatingKinopoiskVoteCount int          `json:"ratingKinopoiskVoteCount"`
	WebURL                   string       `json:"webUrl"`
	Year                     *int         `json:"year"`
	FilmLength               *int         `json:"filmLength"`
	Description              string       `json:"description"`
	ShortDescription         string       `json:"shortDescription"`
	Type                     string       `json:"type"`
	Countries                []Country    `json:"countries"`
	Genres                   []Genre      `json:"genres"`
}

// GenreNames возвращает названия жанров в исходном порядке
func GenreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Genre)
	}
	return names
}
