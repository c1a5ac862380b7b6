package pkg

import (
	"encoding/csv"
	"strings"
)

// EncodeCSV serializa as linhas com todos os campos entre aspas,
// duplicando aspas internas. O formato exportado pelo cliente web
// sempre cita os campos, então o encoder mantém isso.
func EncodeCSV(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

// DecodeCSV interpreta o conteúdo com campos possivelmente citados.
// Linhas com número variável de campos são aceitas.
func DecodeCSV(content string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		empty := true
		for _, field := range record {
			if strings.TrimSpace(field) != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}
