package trip

// DefaultMaxRegenerations задает лимит полных перегенераций по умолчанию.
const DefaultMaxRegenerations = 3

// CanRegenerate сообщает, доступна ли еще полная перегенерация.
// Счетчик только растет и никогда не превышает лимит.
func CanRegenerate(count, limit int) bool {
	return count < limit
}
