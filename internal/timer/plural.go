package timer

// Forms holds the three Russian noun forms for a count: one, few, many
// (e.g. день, дня, дней).
type Forms [3]string

// Unit forms used on timer cards.
var (
	DayForms    = Forms{"день", "дня", "дней"}
	HourForms   = Forms{"час", "часа", "часов"}
	MinuteForms = Forms{"минута", "минуты", "минут"}
	SecondForms = Forms{"секунда", "секунды", "секунд"}
)

// pluralCases maps min(n%10, 5) to an index into Forms.
var pluralCases = [6]int{2, 0, 1, 1, 1, 2}

// Pluralize picks the form agreeing with n. Negative counts agree like their
// absolute value.
func Pluralize(n int64, forms Forms) string {
	if n < 0 {
		n = -n
	}
	if rem := n % 100; rem >= 5 && rem <= 19 {
		return forms[2]
	}
	return forms[pluralCases[min(n%10, 5)]]
}
