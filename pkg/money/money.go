package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Spanish)

// Format devuelve el precio como string para mostrar, con separador de miles
// y dos decimales, ej. "$1.250,50". Solo para presentación: los cálculos
// siguen siendo sobre decimal.Decimal.
func Format(price decimal.Decimal) string {
	f, _ := price.Round(2).Float64()
	return printer.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
