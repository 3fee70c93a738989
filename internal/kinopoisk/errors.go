package kinopoisk

import "fmt"

// APIError описывает неудачный запрос к API: сетевую ошибку, неуспешный статус
// или тело, которое не удалось разобрать.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("kinopoisk %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("kinopoisk %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
