package trip

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CostText хранит стоимость в сыром виде, как ее вернула генерация: число,
// "Free", "$1,500", "500-1000" и т.п.
type CostText string

// UnmarshalJSON принимает строку, число или null без потери текстовой формы.
func (c *CostText) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*c = ""
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*c = CostText(value)
		return nil
	}

	*c = CostText(trimmed)
	return nil
}

// rangeSeparators перечислены в порядке приоритета: разбиение идет по
// первому встретившемуся виду разделителя.
var rangeSeparators = []string{"-", "–", "—"}

// NormalizeCost приводит сырую стоимость к неотрицательному целому в
// валютных единицах. Пустое значение и тексты со словом "free" дают 0,
// диапазон "500-1000" дает верхнюю границу, из остального выбираются
// только цифры ("$1,500" → 1500). Десятичные точки и знак минуса
// отбрасываются вместе с прочими нецифровыми символами.
func NormalizeCost(raw CostText) int64 {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return 0
	}

	if strings.Contains(strings.ToLower(text), "free") {
		return 0
	}

	if segments := splitRange(text); segments != nil {
		var highest int64
		for _, segment := range segments {
			if value := parseAmount(segment); value > highest {
				highest = value
			}
		}
		return highest
	}

	return parseAmount(text)
}

func splitRange(text string) []string {
	for _, separator := range rangeSeparators {
		if strings.Contains(text, separator) {
			return strings.Split(text, separator)
		}
	}

	return splitOnWordTo(text)
}

// splitOnWordTo разбивает строку по отдельно стоящему слову "to".
// Слово должно быть окружено пробелами, иначе это не разделитель.
func splitOnWordTo(text string) []string {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return nil
	}

	segments := make([]string, 0, 2)
	current := make([]string, 0, len(fields))
	for i, field := range fields {
		if i > 0 && i < len(fields)-1 && strings.EqualFold(field, "to") {
			segments = append(segments, strings.Join(current, " "))
			current = current[:0]
			continue
		}
		current = append(current, field)
	}

	if len(segments) == 0 {
		return nil
	}

	return append(segments, strings.Join(current, " "))
}

func parseAmount(segment string) int64 {
	var digits strings.Builder
	for _, r := range segment {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	value, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}

	return value
}
