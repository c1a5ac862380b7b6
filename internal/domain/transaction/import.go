package transaction

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"
)

type RowFailure struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int          `json:"imported"`
	Failures []RowFailure `json:"failures"`
}

// ImportCSV cria transações a partir de um CSV enviado pelo usuário.
// O mapping liga o nome do cabeçalho ao campo de destino (date,
// description, amount, type). Linhas inválidas não abortam o lote.
func (s *Service) ImportCSV(ctx context.Context, scope shared.Scope, content string, mapping map[string]string) (*ImportResult, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	rows, err := pkg.DecodeCSV(content)
	if err != nil {
		return nil, appErrors.NewValidationError("file", "CSV inválido").WithError(err)
	}
	if len(rows) < 2 {
		return nil, appErrors.NewValidationError("file", "arquivo sem linhas de dados")
	}

	columns := mapColumns(rows[0], mapping)
	if _, ok := columns["amount"]; !ok {
		return nil, appErrors.NewValidationError("mapping", "coluna de valor não mapeada")
	}

	result := &ImportResult{}
	for i, row := range rows[1:] {
		line := i + 2

		req, err := rowToRequest(row, columns)
		if err != nil {
			result.Failures = append(result.Failures, RowFailure{Line: line, Reason: err.Error()})
			continue
		}

		if _, err := s.CreateTransaction(ctx, scope, req); err != nil {
			result.Failures = append(result.Failures, RowFailure{Line: line, Reason: err.Error()})
			continue
		}
		result.Imported++
	}

	return result, nil
}

func mapColumns(header []string, mapping map[string]string) map[string]int {
	columns := make(map[string]int)
	for idx, name := range header {
		target := mapping[strings.TrimSpace(name)]
		if target != "" {
			columns[target] = idx
		}
	}
	return columns
}

func rowToRequest(row []string, columns map[string]int) (*CreateTransactionRequest, error) {
	cell := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	amount, err := strconv.ParseFloat(cell("amount"), 64)
	if err != nil {
		return nil, fmt.Errorf("valor inválido: %q", cell("amount"))
	}

	txType := Types(cell("type"))
	if txType == "" {
		txType = Expense
	}
	if !txType.IsValid() {
		return nil, fmt.Errorf("tipo inválido: %q", cell("type"))
	}

	var date time.Time
	if raw := cell("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("data inválida: %q", raw)
		}
	}

	return &CreateTransactionRequest{
		Type:        txType,
		Amount:      amount,
		Date:        date,
		Description: cell("description"),
	}, nil
}
