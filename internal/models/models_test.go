package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// ТЕСТЫ ДЛЯ ОТВЕТА ПОИСКА
// ============================================================================

func TestSearchResponse_Decode(t *testing.T) {
	payload := `{
		"keyword": "тест",
		"pagesCount": 1,
		"searchFilmsCountResult": 7,
		"films": [{
			"filmId": 1,
			"nameRu": "ru",
			"nameEn": "en",
			"type": "FILM",
			"year": "2007",
			"description": "desc",
			"filmLength": "1:35",
			"countries": [{"country": "США"}],
			"genres": [{"genre": "комедия"}, {"genre": "хоррор"}],
			"rating": "5.7",
			"ratingVoteCount": 57,
			"posterUrl": "https://POST",
			"posterUrlPreview": "https://PREVIEW"
		}]
	}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, "тест", resp.Keyword)
	assert.Equal(t, 7, resp.SearchFilmsCountResult)
	require.Len(t, resp.Films, 1)

	film := resp.Films[0]
	assert.Equal(t, 1, film.FilmID)
	assert.Equal(t, "FILM", film.Type)
	assert.Equal(t, "2007", film.Year)
	assert.Equal(t, "1:35", film.FilmLength)
	assert.Equal(t, "5.7", film.Rating)
	assert.Equal(t, 57, film.RatingVoteCount)
	assert.Equal(t, []string{"комедия", "хоррор"}, GenreNames(film.Genres))
}

// ============================================================================
// ТЕСТЫ ДЛЯ ПОЛНОЙ КАРТОЧКИ
// ============================================================================

func TestFilm_DecodeNullableFields(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantCover  bool
		wantRating string
		wantYear   bool
	}{
		{
			name:       "All fields present",
			payload:    `{"kinopoiskId": 301, "coverUrl": "https://COVER", "ratingKinopoisk": 8.5, "year": 1999, "filmLength": 136}`,
			wantCover:  true,
			wantRating: "8.5",
			wantYear:   true,
		},
		{
			name:     "Null fields",
			payload:  `{"kinopoiskId": 301, "coverUrl": null, "ratingKinopoisk": null, "year": null, "filmLength": null}`,
			wantYear: false,
		},
		{
			name:     "Missing fields",
			payload:  `{"kinopoiskId": 301}`,
			wantYear: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var film Film
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &film))

			assert.Equal(t, 301, film.KinopoiskID)
			assert.Equal(t, tt.wantCover, film.CoverURL != nil)
			assert.Equal(t, tt.wantYear, film.Year != nil)
			if tt.wantRating != "" {
				require.NotNil(t, film.RatingKinopoisk)
				assert.Equal(t, tt.wantRating, film.RatingKinopoisk.String())
			} else {
				assert.Nil(t, film.RatingKinopoisk)
			}
		})
	}
}

func TestGenreNames_Empty(t *testing.T) {
	assert.Empty(t, GenreNames(nil))
	assert.NotNil(t, GenreNames(nil))
}
