package currency

import (
	"fmt"
	"math"
)

type CurrencyUtils struct{}

func NewCurrencyUtils() *CurrencyUtils {
	return &CurrencyUtils{}
}

// RoundNGN rounds an NGN amount to two decimal places, using banker's
// rounding at the midpoint so repeated derived amounts do not drift upward.
func (u *CurrencyUtils) RoundNGN(value float64) float64 {
	kobo := value * 100
	rounded := math.Round(kobo)

	// Exactly halfway between two kobo: round to the nearest even value.
	if math.Abs(kobo-rounded) == 0.5 && int64(rounded)%2 != 0 {
		rounded--
	}

	return rounded / 100
}

// FormatNGN formats an NGN amount for human-facing output such as email bodies.
func (u *CurrencyUtils) FormatNGN(amount float64) string {
	return fmt.Sprintf("₦%.2f", amount)
}

// SecondsToHours converts watch seconds to hours rounded to two decimals,
// matching the dashboard display contract.
func (u *CurrencyUtils) SecondsToHours(seconds float64) float64 {
	return math.Round(seconds/3600*100) / 100
}
