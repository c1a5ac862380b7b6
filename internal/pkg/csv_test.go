package pkg_test

import (
	"reflect"
	"testing"

	"github.com/mlima3022/Financas/internal/pkg"
)

func TestEncodeCSVQuotesEveryField(t *testing.T) {
	t.Parallel()

	got := pkg.EncodeCSV([][]string{
		{"date", "amount"},
		{"2026-01-10", "12.50"},
	})
	want := "\"date\",\"amount\"\n\"2026-01-10\",\"12.50\""
	if got != want {
		t.Fatalf("EncodeCSV mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestEncodeCSVEscapesQuotes(t *testing.T) {
	t.Parallel()

	got := pkg.EncodeCSV([][]string{{`compra "urgente"`}})
	want := `"compra ""urgente"""`
	if got != want {
		t.Fatalf("EncodeCSV mismatch: got %q want %q", got, want)
	}
}

func TestDecodeCSVRoundTrip(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"date", "type", "amount", "currency", "description"},
		{"2026-01-10", "expense", "12.50", "BRL", `mercado, "promoção"`},
		{"2026-01-11", "income", "3000.00", "BRL", "salário"},
	}

	decoded, err := pkg.DecodeCSV(pkg.EncodeCSV(rows))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(decoded, rows) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", decoded, rows)
	}
}

func TestDecodeCSVSkipsBlankLines(t *testing.T) {
	t.Parallel()

	decoded, err := pkg.DecodeCSV("a,b\n\n  , \nc,d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(decoded), decoded)
	}
}

func TestDecodeCSVAcceptsRaggedRows(t *testing.T) {
	t.Parallel()

	decoded, err := pkg.DecodeCSV("a,b,c\n1,2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 2 || len(decoded[1]) != 2 {
		t.Fatalf("unexpected rows: %v", decoded)
	}
}
