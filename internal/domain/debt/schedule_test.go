package debt_test

import (
	"strings"
	"testing"

	"github.com/mlima3022/Financas/internal/domain/debt"
)

func TestDeriveMonthlyAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		principal    float64
		installments int
		want         float64
	}{
		{"even division", 1200, 12, 100},
		{"rounds to cents", 1000, 3, 333.33},
		{"rounds half up", 100, 8, 12.5},
		{"zero installments", 1000, 0, 0},
		{"negative installments", 1000, -2, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := debt.DeriveMonthlyAmount(tt.principal, tt.installments)
			if got != tt.want {
				t.Fatalf("DeriveMonthlyAmount(%v, %d) = %v, want %v", tt.principal, tt.installments, got, tt.want)
			}
		})
	}
}

func TestPreviewSchedule(t *testing.T) {
	t.Parallel()

	t.Run("installment with derived monthly", func(t *testing.T) {
		got := debt.PreviewSchedule(debt.PreviewInput{
			DebtType:          debt.TypeInstallment,
			PrincipalAmount:   999,
			InstallmentsTotal: 3,
		})
		if !strings.HasPrefix(got, "Parcelamento: 3x de ") {
			t.Fatalf("unexpected preview: %q", got)
		}
		if !strings.Contains(got, "333") {
			t.Fatalf("expected derived installment in preview, got %q", got)
		}
	})

	t.Run("installment with explicit monthly", func(t *testing.T) {
		got := debt.PreviewSchedule(debt.PreviewInput{
			DebtType:          debt.TypeInstallment,
			PrincipalAmount:   900,
			InstallmentsTotal: 3,
			MonthlyAmount:     350,
		})
		if !strings.Contains(got, "350") {
			t.Fatalf("expected explicit installment in preview, got %q", got)
		}
	})

	t.Run("single debt", func(t *testing.T) {
		got := debt.PreviewSchedule(debt.PreviewInput{
			DebtType:        debt.TypeSingle,
			PrincipalAmount: 750,
		})
		if !strings.HasPrefix(got, "Dívida única no valor de ") {
			t.Fatalf("unexpected preview: %q", got)
		}
	})

	t.Run("incomplete input shows placeholder", func(t *testing.T) {
		got := debt.PreviewSchedule(debt.PreviewInput{})
		if got != "Preencha os campos para ver a simulação." {
			t.Fatalf("unexpected placeholder: %q", got)
		}
	})

	t.Run("installment without total falls back to single text", func(t *testing.T) {
		got := debt.PreviewSchedule(debt.PreviewInput{
			DebtType:        debt.TypeInstallment,
			PrincipalAmount: 500,
		})
		if !strings.HasPrefix(got, "Dívida única no valor de ") {
			t.Fatalf("unexpected preview: %q", got)
		}
	})
}
