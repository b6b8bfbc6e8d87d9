package findash

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeRecord struct {
	a, b string
}

func (r fakeRecord) Header() []string { return []string{"a", "b"} }
func (r fakeRecord) Row() []any       { return []any{r.a, r.b} }

func TestExportCSV(t *testing.T) {
	var sb strings.Builder
	err := ExportCSV(&sb, []fakeRecord{{a: "1", b: "x,y"}})
	if err != nil {
		t.Fatalf("ExportCSV error = %v", err)
	}
	if got, want := sb.String(), "a,b\n1,\"x,y\""; got != want {
		t.Errorf("ExportCSV = %q, want %q", got, want)
	}
}

func TestExportCSVEmptyIsNoOp(t *testing.T) {
	var sb strings.Builder
	err := ExportCSV(&sb, []fakeRecord{})
	var empty *EmptyInputError
	if !errors.As(err, &empty) {
		t.Fatalf("expected an EmptyInputError, got %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("output written on empty input: %q", sb.String())
	}
}

func TestExportCSVQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "with,comma", want: `"with,comma"`},
		{in: `say "hi"`, want: `"say ""hi"""`},
		{in: "two\nlines", want: "\"two\nlines\""},
		{in: "", want: ""},
	}
	for _, tc := range tests {
		if got := csvCell(tc.in); got != tc.want {
			t.Errorf("csvCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExportCSVTransactions(t *testing.T) {
	txs := []Transaction{
		NewTransaction("t1", NewDate(2024, time.July, 20), "Weekly shop", M(150.75), "Food", "Groceries", Expense),
		NewTransaction("t2", NewDate(2024, time.July, 21), "Salary", M(5000), "Income", "", Income),
	}
	var sb strings.Builder
	if err := ExportCSV(&sb, txs); err != nil {
		t.Fatalf("ExportCSV error = %v", err)
	}
	lines := strings.Split(sb.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %q", sb.String())
	}
	if lines[0] != "id,date,description,amount,category,subCategory,type" {
		t.Errorf("header = %q", lines[0])
	}
	// the date cell renders in long form, so it carries a comma and is quoted
	if lines[1] != `t1,"July 20, 2024",Weekly shop,-150.75,Food,Groceries,expense` {
		t.Errorf("row = %q", lines[1])
	}
	// empty sub-category renders as an empty cell
	if lines[2] != `t2,"July 21, 2024",Salary,5000,Income,,income` {
		t.Errorf("row = %q", lines[2])
	}
	if strings.HasSuffix(sb.String(), "\n") {
		t.Error("unexpected trailing newline")
	}
}
