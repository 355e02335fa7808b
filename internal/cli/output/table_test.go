package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/yndnr/sortbench/internal/core/domain"
)

func TestTableFormatter_Format_Table(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "VALUE"},
		Rows: [][]string{
			{"key1", "value1"},
			{"key2", "value2"},
		},
	}

	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Error("Format() missing header NAME")
	}
	if !strings.Contains(output, "key1") {
		t.Error("Format() missing row data key1")
	}
}

func TestTableFormatter_Format_NoHeaders(t *testing.T) {
	table := Table{
		Headers: []string{"COL"},
		Rows:    [][]string{{"data"}},
	}

	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "data\n" {
		t.Errorf("Format() = %q, want %q", got, "data\n")
	}
}

func TestTableFormatter_Format_Algorithms(t *testing.T) {
	algs := []domain.Algorithm{
		{ID: domain.AlgorithmBubble, Name: "Bubble", Stable: true, Complexity: "O(n^2)"},
		{ID: domain.AlgorithmMerge, Name: "Merge", Stable: true, Complexity: "O(n log n)"},
	}

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, algs); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Contains(buf.String(), "COMPLEXITY") {
		t.Errorf("narrow table shows wide column:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&TableFormatter{Wide: true}).Format(&buf, algs); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for _, h := range []string{"ID", "NAME", "STABLE", "COMPLEXITY"} {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header %q missing from %q", h, lines[0])
		}
	}
	if !strings.Contains(lines[1], "bubble") || !strings.Contains(lines[1], "yes") {
		t.Errorf("row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "O(n log n)") {
		t.Errorf("row = %q", lines[2])
	}
}

type wideStruct struct {
	Name   string `json:"name"`
	Detail string `json:"detail" table:"wide"`
	Secret string `table:"-"`
}

func TestTableFormatter_Format_WideAndSkip(t *testing.T) {
	data := []wideStruct{{Name: "a", Detail: "more", Secret: "hidden"}}

	tests := []struct {
		name       string
		wide       bool
		wantDetail bool
	}{
		{"narrow", false, false},
		{"wide", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&TableFormatter{Wide: tt.wide}).Format(&buf, data); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			out := buf.String()
			if strings.Contains(out, "DETAIL") != tt.wantDetail {
				t.Errorf("DETAIL column present = %v, want %v", !tt.wantDetail, tt.wantDetail)
			}
			if strings.Contains(out, "hidden") {
				t.Error("field tagged table:\"-\" was rendered")
			}
		})
	}
}

func TestTableFormatter_Format_Struct(t *testing.T) {
	data := struct {
		RunID string  `json:"run_id"`
		Avg   float64 `json:"avg"`
	}{RunID: "01abc", Avg: 1.5}

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "RUN_ID", "01abc", "1.500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_Format_Fallback(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, 42); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "42" {
		t.Errorf("Format(42) = %q, want JSON fallback %q", got, "42")
	}
}

func TestTableFormatter_Format_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format(nil) wrote %q", buf.String())
	}
}

func TestFormatValue(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "abc", "abc"},
		{"empty string", "", "-"},
		{"int", 42, "42"},
		{"uint64", uint64(7), "7"},
		{"float", 3.14159, "3.142"},
		{"true", true, "yes"},
		{"false", false, "no"},
		{"empty slice", []int{}, "-"},
		{"slice", []int{1, 2, 3}, "[3 items]"},
		{"dataset", domain.Dataset{"A01", "B02"}, "[2 items]"},
		{"named string", domain.AlgorithmMerge, "merge"},
		{"stringer", stringerValue{}, "custom"},
		{"nil pointer", nilPtr, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatValue(reflect.ValueOf(tt.input))
			if got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Name", "Name"},
		{"RunID", "Run_I_D"},
		{"AverageMs", "Average_Ms"},
		{"run_id", "run_id"},
	}

	for _, tt := range tests {
		if got := toSnakeCase(tt.input); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTable_AddRowSetHeaders(t *testing.T) {
	table := &Table{}
	table.SetHeaders("A", "B")
	table.AddRow("1", "2")
	table.AddRow("3", "4")

	var buf bytes.Buffer
	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "A  B\n1  2\n3  4\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

type stringerValue struct{}

func (stringerValue) String() string { return "custom" }
