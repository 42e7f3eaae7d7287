// Package table holds the tabular shapes returned by data providers and the
// normaliser that flattens them into JSON-safe records.
//
// A Frame is rows x columns with a row index; a Series is a single labelled
// column. Cells are untyped: numbers, strings, bools, times, pointers, or any
// of the null-like sentinels recognised by IsNull.
package table

// Tabular is implemented by every shape Normalize accepts.
type Tabular interface {
	// Frame returns the two-dimensional view of the value. It may return nil.
	Frame() *Frame
}

// Frame is a two-dimensional result with ordered column labels and a row index.
// A nil Index means positional labels 0..n-1.
type Frame struct {
	Columns []string
	Index   []any
	Rows    [][]any
}

// NewFrame creates an empty frame with the given columns.
func NewFrame(columns ...string) *Frame {
	return &Frame{Columns: columns}
}

// Frame returns f itself.
func (f *Frame) Frame() *Frame { return f }

// Len returns the number of rows. A nil frame has zero rows.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Empty reports whether the frame has no rows.
func (f *Frame) Empty() bool { return f.Len() == 0 }

// Append adds a row labelled label. Missing trailing cells are padded with NA
// and surplus cells are dropped so every row matches the column count.
func (f *Frame) Append(label any, cells ...any) {
	row := make([]any, len(f.Columns))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = NA
		}
	}
	if f.Index == nil && len(f.Rows) > 0 {
		// Materialise the positional labels of rows added before.
		f.Index = make([]any, len(f.Rows))
		for i := range f.Index {
			f.Index[i] = i
		}
	}
	f.Index = append(f.Index, label)
	f.Rows = append(f.Rows, row)
}

// AppendRow adds a row labelled with its position.
func (f *Frame) AppendRow(cells ...any) {
	f.Append(len(f.Rows), cells...)
}

// Label returns the row label of row i.
func (f *Frame) Label(i int) any {
	if i < len(f.Index) {
		return f.Index[i]
	}
	return i
}

// Head returns a frame holding at most the first n rows of f.
func (f *Frame) Head(n int) *Frame {
	if f == nil {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if n >= len(f.Rows) {
		return f
	}
	out := &Frame{Columns: f.Columns, Rows: f.Rows[:n]}
	if f.Index != nil {
		out.Index = f.Index[:min(n, len(f.Index))]
	}
	return out
}

// Series is a one-dimensional labelled sequence.
type Series struct {
	Name   string
	Index  []any
	Values []any
}

// NewSeries creates an empty named series.
func NewSeries(name string) *Series {
	return &Series{Name: name}
}

// Append adds a value labelled label.
func (s *Series) Append(label, value any) {
	s.Index = append(s.Index, label)
	s.Values = append(s.Values, value)
}

// Len returns the number of values. A nil series has zero values.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

// Frame promotes the series to a one-column frame. The column takes the
// series name, or "0" when the series is unnamed.
func (s *Series) Frame() *Frame {
	if s == nil {
		return nil
	}
	name := s.Name
	if name == "" {
		name = "0"
	}
	f := &Frame{Columns: []string{name}, Index: s.Index, Rows: make([][]any, len(s.Values))}
	for i, v := range s.Values {
		f.Rows[i] = []any{v}
	}
	return f
}
