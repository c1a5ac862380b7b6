package debt

import (
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/shopspring/decimal"
)

// DeriveMonthlyAmount calcula o valor da parcela quando o usuário não
// informa um: principal dividido pela quantidade de parcelas,
// arredondado para 2 casas (mesmo arredondamento da exibição de
// moeda). O resíduo de arredondamento fica limitado a um centavo por
// parcela.
func DeriveMonthlyAmount(principal float64, installments int) float64 {
	if installments <= 0 {
		return 0
	}
	monthly := decimal.NewFromFloat(principal).
		Div(decimal.NewFromInt(int64(installments))).
		Round(2)
	result, _ := monthly.Float64()
	return result
}

type PreviewInput struct {
	DebtType          Type
	PrincipalAmount   float64
	InstallmentsTotal int
	MonthlyAmount     float64
}

const previewPlaceholder = "Preencha os campos para ver a simulação."

// PreviewSchedule monta o texto de simulação exibido enquanto o
// usuário preenche o formulário. Aceita entrada incompleta e nunca
// valida; validação acontece só na criação.
func PreviewSchedule(in PreviewInput) string {
	if in.DebtType == TypeInstallment && in.PrincipalAmount > 0 && in.InstallmentsTotal > 0 {
		perMonth := in.MonthlyAmount
		if perMonth == 0 {
			perMonth = DeriveMonthlyAmount(in.PrincipalAmount, in.InstallmentsTotal)
		}
		return "Parcelamento: " + pkg.FormatInt(in.InstallmentsTotal) + "x de " +
			pkg.FormatCurrency(perMonth) + " (total " + pkg.FormatCurrency(in.PrincipalAmount) + ")"
	}
	if in.PrincipalAmount > 0 {
		return "Dívida única no valor de " + pkg.FormatCurrency(in.PrincipalAmount) + "."
	}
	return previewPlaceholder
}
