package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/internal/events"
	scheduleRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/schedule"
	googleClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/googlecal"
)

// UseCase use case расчёта календаря доступности на день
//
// Чистая функция от выбранных данных: при одинаковых входах (и одинаковых
// данных источников) возвращает идентичный результат. Никакого состояния
// между запросами не хранит.
type UseCase struct {
	visitRepo    VisitRepository
	scheduleRepo ScheduleRepository
	googleCal    GoogleCalendarClient
	icsFeed      ICSFeedClient
	normalizer   EventNormalizer
	metrics      AdapterMetrics
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	visitRepo VisitRepository,
	scheduleRepo ScheduleRepository,
	googleCal GoogleCalendarClient,
	icsFeed ICSFeedClient,
	normalizer EventNormalizer,
	metrics AdapterMetrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo:    visitRepo,
		scheduleRepo: scheduleRepo,
		googleCal:    googleCal,
		icsFeed:      icsFeed,
		normalizer:   normalizer,
		metrics:      metrics,
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: property=%d, date=%s",
		req.PropertyID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание показов объекта
	sched, err := uc.scheduleRepo.GetByProperty(ctx, req.PropertyID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Если расписание не задано, используем дефолтные видимые часы
	if sched == nil {
		sched = domain.DefaultPropertySchedule(req.PropertyID)
		uc.logger.Info("GetAvailability: using default schedule for property=%d", req.PropertyID)
	}

	// 3. Применяем переопределения запроса
	visibleFrom := sched.VisibleFrom
	visibleTo := sched.VisibleTo
	if req.VisibleFrom != nil && req.VisibleTo != nil {
		visibleFrom = *req.VisibleFrom
		visibleTo = *req.VisibleTo
	}

	slotDuration := sched.SlotDurationMinutes
	if req.SlotDurationMinutes != nil {
		slotDuration = *req.SlotDurationMinutes
	}

	if err := validateWindow(visibleFrom, visibleTo); err != nil {
		uc.logger.Warn("GetAvailability: window validation failed: %v", err)
		return nil, err
	}
	if err := validateSlotDuration(slotDuration); err != nil {
		uc.logger.Warn("GetAvailability: slot duration validation failed: %v", err)
		return nil, err
	}

	// 4. Разворачиваем видимые часы в абсолютное окно на дату запроса
	windowStart, err := visibleFrom.ResolveOn(req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	windowEnd, err := visibleTo.ResolveOn(req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	window := domain.TimeRange{Start: windowStart, End: windowEnd}

	// 5. Собираем внутренние блокировки (активные визиты на дату)
	internalRecords, err := uc.fetchInternalBlocks(ctx, req.PropertyID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get internal blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get internal blocks: %v", ErrInternal, err)
	}

	// 6. Собираем события внешних источников (параллельно)
	externalRecords, err := uc.fetchExternalEvents(ctx, sched, req.Date)
	if err != nil {
		return nil, err
	}

	// Отмена запроса - операция «всё или ничего», частичный календарь не отдаем
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	// 7. Нормализуем все записи в канонические события
	allRecords := make([]events.RawRecord, 0, len(internalRecords)+len(externalRecords))
	allRecords = append(allRecords, internalRecords...)
	allRecords = append(allRecords, externalRecords...)
	busyEvents := uc.normalizer.Normalize(allRecords)

	// 8. Размечаем слоты окна по занятым интервалам
	slots := buildSlots(window, slotDuration, busyEvents)

	uc.logger.Info("GetAvailability: property=%d, date=%s - %d slots (%d busy events)",
		req.PropertyID, req.Date.Format(domain.DateFormat), len(slots), len(busyEvents))

	return &Response{
		PropertyID: req.PropertyID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}

// fetchInternalBlocks получает активные визиты объекта на дату
// и разворачивает их в сырые записи с абсолютными интервалами
func (uc *UseCase) fetchInternalBlocks(ctx context.Context, propertyID int64, date time.Time) ([]events.RawRecord, error) {
	filter := domain.VisitsFilter{
		PropertyID:      propertyID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false, // Только активные визиты блокируют слоты
	}

	visits, err := uc.visitRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	records := make([]events.RawRecord, 0, len(visits))
	for _, v := range visits {
		r, err := v.Range(uc.location)
		if err != nil {
			// Битая запись не должна срывать расчёт на весь день
			uc.logger.Warn("GetAvailability: skipping visit id=%d with invalid time: %v", v.ID, err)
			continue
		}
		records = append(records, events.RawRecord{
			Kind: events.KindInternal,
			Internal: &events.InternalRecord{
				VisitID: v.ID,
				Title:   fmt.Sprintf("Visit #%d", v.ID),
				Start:   r.Start,
				End:     r.End,
			},
		})
	}

	return records, nil
}

// observeAdapter фиксирует обращение к внешнему источнику в метриках
func (uc *UseCase) observeAdapter(adapter string, err error, duration time.Duration) {
	if uc.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	uc.metrics.ObserveAdapterRequest(adapter, result, duration)
}

// sourceResult результат выборки одного внешнего источника
type sourceResult struct {
	source  string
	records []events.RawRecord
	err     error
}

// fetchExternalEvents параллельно опрашивает привязанные внешние источники
//
// Политика деградации: недоступный внешний источник считается пустым
// (запрос не падает, слоты остального дня сохраняются), с логированием на
// уровне ERROR. Исключение - ErrNotConfigured от адаптера Google в production:
// это ошибка конфигурации, она всплывает к вызывающей стороне.
func (uc *UseCase) fetchExternalEvents(ctx context.Context, sched *domain.PropertySchedule, date time.Time) ([]events.RawRecord, error) {
	// Фиксированный порядок источников, чтобы слияние было детерминированным
	// независимо от порядка завершения горутин
	results := make([]*sourceResult, 0, 2)
	var wg sync.WaitGroup

	fetch := func(source, adapter string, fn func() ([]events.RawRecord, error)) {
		res := &sourceResult{source: source}
		results = append(results, res)
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			res.records, res.err = fn()
			uc.observeAdapter(adapter, res.err, time.Since(start))
		}()
	}

	if sched.HasGoogleCalendar() {
		calendarID := *sched.GoogleCalendarID
		fetch("google:"+calendarID, "google", func() ([]events.RawRecord, error) {
			return uc.googleCal.GetBusyIntervals(ctx, calendarID, date)
		})
	}

	if sched.HasICSFeed() {
		feedURL := *sched.ICSFeedURL
		fetch("ics:"+feedURL, "ics", func() ([]events.RawRecord, error) {
			return uc.icsFeed.GetBusyIntervals(ctx, feedURL, date)
		})
	}

	wg.Wait()

	external := make([]events.RawRecord, 0)
	for _, res := range results {
		if res.err != nil {
			if errors.Is(res.err, googleClient.ErrNotConfigured) {
				uc.logger.Error("GetAvailability: source %s is not configured: %v", res.source, res.err)
				return nil, fmt.Errorf("%w: %s", ErrSourceNotConfigured, res.source)
			}
			uc.logger.Error("GetAvailability: source %s unavailable, treating as no busy intervals: %v",
				res.source, res.err)
			continue
		}
		external = append(external, res.records...)
	}

	return external, nil
}
