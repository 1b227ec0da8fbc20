package pricing

// BaseCurrency is the currency hotel rates are stored in. Its exchange
// rate is 1.0 by definition.
const BaseCurrency = "GBP"

// Converter holds a static exchange-rate table relative to the base
// currency. Unknown codes deliberately fall back to rate 1.0 rather than
// failing: a listing with an unconfigured display currency still renders,
// in base-currency amounts.
type Converter struct {
	rates map[string]float64
}

func DefaultRates() map[string]float64 {
	return map[string]float64{
		"GBP": 1.0,
		"USD": 1.27,
		"EUR": 1.19,
		"NPR": 168.0,
	}
}

func NewConverter(rates map[string]float64) *Converter {
	if len(rates) == 0 {
		rates = DefaultRates()
	}
	return &Converter{rates: rates}
}

func (c *Converter) RateFor(code string) float64 {
	if rate, ok := c.rates[code]; ok {
		return rate
	}
	return 1.0
}

// Convert converts a base-currency amount to the target currency. No
// rounding happens here; callers round once after all multiplications to
// avoid compounding rounding error.
func (c *Converter) Convert(amountInBase float64, code string) float64 {
	return amountInBase * c.RateFor(code)
}

func (c *Converter) Supports(code string) bool {
	_, ok := c.rates[code]
	return ok
}
