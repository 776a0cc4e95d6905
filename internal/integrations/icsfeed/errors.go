package icsfeed

import "errors"

var (
	// ErrFetch возвращается при ошибке загрузки ICS-фида
	ErrFetch = errors.New("icsfeed client: failed to fetch feed")

	// ErrParse возвращается, когда фид не является валидным iCalendar
	ErrParse = errors.New("icsfeed client: failed to parse feed")
)
