package googlecal

import "errors"

var (
	// ErrNotConfigured возвращается в production, когда учетные данные
	// Google Calendar не заданы. Вне production отсутствие конфигурации
	// не ошибка - адаптер возвращает пустой список интервалов.
	ErrNotConfigured = errors.New("googlecal client: credentials are not configured")

	// ErrFetch возвращается при ошибке запроса FreeBusy
	ErrFetch = errors.New("googlecal client: freebusy request failed")

	// ErrInvalidResponse возвращается при некорректном ответе Google Calendar API
	ErrInvalidResponse = errors.New("googlecal client: invalid response")
)
