package trip

// Budget хранит сводку стоимости поездки. Activities и Total не могут быть
// отрицательными: любое уменьшение отсекается на нуле.
type Budget struct {
	Accommodation int64  `json:"accommodation"`
	Food          int64  `json:"food"`
	Transport     int64  `json:"transport"`
	Activities    int64  `json:"activities"`
	Total         int64  `json:"total"`
	Currency      string `json:"currency,omitempty"`
}

// Reconcile возвращает бюджет, скорректированный на замену активности:
// delta = стоимость новой минус стоимость старой (nil считается нулем).
// Чистая функция, не меняет аргумент и не завершается ошибкой.
func Reconcile(b Budget, oldActivity, newActivity *Activity) Budget {
	delta := newActivity.NormalizedCost() - oldActivity.NormalizedCost()
	b.Activities = clampNonNegative(b.Activities + delta)
	b.Total = clampNonNegative(b.Total + delta)
	return b
}

// AlignWithItinerary выравнивает бюджет по маршруту: activities становится
// суммой нормализованных стоимостей всех слотов, а total суммой категорий.
// Вызывается при приеме ответа генерации, чтобы дальнейшие корректировки
// начинались с согласованных значений.
func AlignWithItinerary(b Budget, it Itinerary) Budget {
	b.Accommodation = clampNonNegative(b.Accommodation)
	b.Food = clampNonNegative(b.Food)
	b.Transport = clampNonNegative(b.Transport)
	b.Activities = it.ActivitiesCost()
	b.Total = b.Accommodation + b.Food + b.Transport + b.Activities
	return b
}

func clampNonNegative(value int64) int64 {
	if value < 0 {
		return 0
	}
	return value
}
