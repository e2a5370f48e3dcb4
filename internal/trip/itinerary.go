package trip

import (
	"errors"
	"fmt"
	"strings"
)

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

var (
	ErrDayOutOfRange = errors.New("day index out of range")
	ErrUnknownPeriod = errors.New("unknown period")
)

// Periods возвращает периоды дня в фиксированном порядке.
func Periods() []Period {
	return []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}
}

// ParsePeriod распознает ключ периода дня.
func ParsePeriod(value string) (Period, bool) {
	switch Period(strings.ToLower(strings.TrimSpace(value))) {
	case PeriodMorning:
		return PeriodMorning, true
	case PeriodAfternoon:
		return PeriodAfternoon, true
	case PeriodEvening:
		return PeriodEvening, true
	default:
		return "", false
	}
}

type Activity struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Category    string   `json:"category,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Cost        CostText `json:"cost,omitempty"`
}

// NormalizedCost возвращает нормализованную стоимость активности, 0 для nil.
func (a *Activity) NormalizedCost() int64 {
	if a == nil {
		return 0
	}
	return NormalizeCost(a.Cost)
}

// DayPlan хранит расписание одного дня. Слоты периодов всегда присутствуют
// в структуре и в JSON: пустой слот сериализуется как null, а не пропадает.
type DayPlan struct {
	Day       int       `json:"day"`
	Title     string    `json:"title,omitempty"`
	Morning   *Activity `json:"morning"`
	Afternoon *Activity `json:"afternoon"`
	Evening   *Activity `json:"evening"`
}

// Slot возвращает активность периода; false для неизвестного периода.
func (d DayPlan) Slot(period Period) (*Activity, bool) {
	switch period {
	case PeriodMorning:
		return d.Morning, true
	case PeriodAfternoon:
		return d.Afternoon, true
	case PeriodEvening:
		return d.Evening, true
	default:
		return nil, false
	}
}

func (d *DayPlan) setSlot(period Period, activity *Activity) {
	switch period {
	case PeriodMorning:
		d.Morning = activity
	case PeriodAfternoon:
		d.Afternoon = activity
	case PeriodEvening:
		d.Evening = activity
	}
}

type Itinerary struct {
	Days []DayPlan `json:"days"`
}

// Remove очищает слот и возвращает маршрут с изменением и прежнюю
// активность слота. При неверном дне или периоде маршрут возвращается
// без изменений вместе с ошибкой.
func (it Itinerary) Remove(day int, period Period) (Itinerary, *Activity, error) {
	return it.withSlot(day, period, nil)
}

// Replace ставит активность в слот и возвращает маршрут с изменением и
// прежнюю активность слота. При неверном дне или периоде маршрут
// возвращается без изменений вместе с ошибкой.
func (it Itinerary) Replace(day int, period Period, activity Activity) (Itinerary, *Activity, error) {
	return it.withSlot(day, period, &activity)
}

func (it Itinerary) withSlot(day int, period Period, activity *Activity) (Itinerary, *Activity, error) {
	if day < 0 || day >= len(it.Days) {
		return it, nil, fmt.Errorf("%w: day %d of %d", ErrDayOutOfRange, day, len(it.Days))
	}

	previous, ok := it.Days[day].Slot(period)
	if !ok {
		return it, nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	days := make([]DayPlan, len(it.Days))
	copy(days, it.Days)
	days[day].setSlot(period, activity)

	return Itinerary{Days: days}, previous, nil
}

// ActivitiesCost возвращает сумму нормализованных стоимостей всех слотов.
func (it Itinerary) ActivitiesCost() int64 {
	var total int64
	for _, day := range it.Days {
		for _, period := range Periods() {
			activity, _ := day.Slot(period)
			total += activity.NormalizedCost()
		}
	}
	return total
}
