package pkg

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formata um valor no padrão pt-BR (R$ 1.234,56),
// o mesmo arredondamento de exibição usado nas simulações de parcela.
func FormatCurrency(value float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func FormatInt(value int) string {
	return strconv.Itoa(value)
}
