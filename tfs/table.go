package tfs

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lhcoptics/betaphase/phase"
)

// Table is usable wherever the engine expects a result sink.
var _ phase.ResultFile = (*Table)(nil)

var (
	// ErrNoColumns indicates WriteTo on a table whose columns were never declared.
	ErrNoColumns = errors.New("tfs: columns not declared")

	// ErrColumnMismatch indicates a row or type list whose length differs
	// from the declared column count.
	ErrColumnMismatch = errors.New("tfs: row length differs from column count")
)

// header is one "@" descriptor line.
type header struct {
	key   string
	typ   string // TFS format type: %le, %d or %s
	value string // pre-rendered value
}

// Table accumulates headers, a column declaration and data rows, and
// serializes them as TFS text. The zero value is ready to use.
//
// Table satisfies the phase engine's ResultFile contract; the engine
// never reads back, so Table only collects and renders.
type Table struct {
	headers []header
	names   []string
	types   []string
	rows    [][]string // pre-rendered cells
}

// SetHeader records one descriptor. The TFS type is inferred from the
// value: floats render as %le, integers as %d, everything else as a
// quoted %s string.
func (t *Table) SetHeader(key string, value any) {
	typ, s := render(value)
	t.headers = append(t.headers, header{key: key, typ: typ, value: s})
}

// SetColumns declares the column names and their TFS format types. The
// slices are copied; a later call replaces the declaration.
func (t *Table) SetColumns(names, types []string) {
	t.names = append([]string(nil), names...)
	t.types = append([]string(nil), types...)
}

// AppendRow appends one data row, rendered cell by cell according to the
// value's own kind (the declared types are documentation for readers of
// the file; rendering follows the data).
func (t *Table) AppendRow(values []any) {
	row := make([]string, len(values))
	for i, v := range values {
		_, row[i] = render(v)
	}
	t.rows = append(t.rows, row)
}

// render maps a value to its TFS type tag and text form.
func render(v any) (typ, s string) {
	switch x := v.(type) {
	case float64:
		return "%le", strconv.FormatFloat(x, 'e', 15, 64)
	case float32:
		return "%le", strconv.FormatFloat(float64(x), 'e', 7, 32)
	case int:
		return "%d", strconv.Itoa(x)
	case int64:
		return "%d", strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "%s", `"True"`
		}
		return "%s", `"False"`
	case string:
		return "%s", strconv.Quote(x)
	default:
		return "%s", strconv.Quote(fmt.Sprint(x))
	}
}

// WriteTo serializes the table: all "@" headers in insertion order, the
// "*" and "$" declaration lines, then the rows with columns aligned to
// the widest cell. Implements io.WriterTo.
//
// Errors: ErrNoColumns, ErrColumnMismatch (types or any row vs names).
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	if len(t.names) == 0 {
		return 0, ErrNoColumns
	}
	if len(t.types) != len(t.names) {
		return 0, ErrColumnMismatch
	}
	for _, row := range t.rows {
		if len(row) != len(t.names) {
			return 0, ErrColumnMismatch
		}
	}

	// Column widths over names, types and cells, for aligned output.
	widths := make([]int, len(t.names))
	for j := range t.names {
		widths[j] = max(len(t.names[j]), len(t.types[j]))
	}
	for _, row := range t.rows {
		for j, cell := range row {
			widths[j] = max(widths[j], len(cell))
		}
	}

	var b strings.Builder
	for _, h := range t.headers {
		fmt.Fprintf(&b, "@ %s %s %s\n", h.key, h.typ, h.value)
	}
	writeLine := func(prefix string, cells []string) {
		b.WriteString(prefix)
		for j, cell := range cells {
			fmt.Fprintf(&b, " %-*s", widths[j], cell)
		}
		b.WriteByte('\n')
	}
	writeLine("*", t.names)
	writeLine("$", t.types)
	for _, row := range t.rows {
		writeLine(" ", row)
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
