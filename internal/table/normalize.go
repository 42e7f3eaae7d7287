package table

import (
	"fmt"
	"math"
	"reflect"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// IndexKey is the record key that carries the row label.
const IndexKey = "index"

// Record is one flattened row. Keys keep column order with the row label
// first, and that order survives JSON encoding.
type Record = orderedmap.OrderedMap[string, any]

type missing struct{}

func (missing) String() string { return "<NA>" }

// NA marks a missing cell explicitly. It normalises to null.
var NA any = missing{}

// Normalize flattens t into one record per row, in row order. A nil or empty
// input gives an empty, non-nil slice. Series are promoted to frames first.
// Every cell passes through CleanValue, so the output never carries NaN,
// infinities or missing markers.
func Normalize(t Tabular) []*Record {
	records := make([]*Record, 0)
	if t == nil {
		return records
	}
	f := t.Frame()
	if f.Empty() {
		return records
	}

	key := indexKey(f.Columns)
	for i, row := range f.Rows {
		rec := orderedmap.New[string, any]()
		rec.Set(key, CleanValue(f.Label(i)))
		for j, col := range f.Columns {
			var cell any
			if j < len(row) {
				cell = row[j]
			}
			rec.Set(col, CleanValue(cell))
		}
		records = append(records, rec)
	}
	return records
}

// indexKey picks the label column name. A frame that already has an "index"
// column gets its labels under "level_0".
func indexKey(columns []string) string {
	for _, c := range columns {
		if c == IndexKey {
			return "level_0"
		}
	}
	return IndexKey
}

// IsNull reports whether v is one of the null-like sentinels: nil, NA, NaN,
// positive or negative infinity, the zero time, or a nil pointer, map,
// slice or interface. Pointers are followed.
func IsNull(v any) bool {
	switch x := v.(type) {
	case nil, missing:
		return true
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case float32:
		f := float64(x)
		return math.IsNaN(f) || math.IsInf(f, 0)
	case time.Time:
		return x.IsZero()
	case string, bool, int, int64:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsNull(rv.Elem().Interface())
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return math.IsNaN(f) || math.IsInf(f, 0)
	}
	return false
}

// Clean converts a single cell into a JSON-safe scalar. Null-like values
// become nil, pointers are dereferenced, times become RFC 3339 strings and
// complex numbers their printed form. Anything else is returned unchanged.
func Clean(v any) any {
	if IsNull(v) {
		return nil
	}
	switch x := v.(type) {
	case string, bool, float64, float32, int, int64, int32, uint, uint64, uint32:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case complex64, complex128:
		return fmt.Sprint(x)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return Clean(rv.Elem().Interface())
	}
	return v
}

// CleanValue is Clean applied recursively through maps and slices of any, so
// mapping responses obey the same rule as tabular ones.
func CleanValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return nil
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = CleanValue(e)
		}
		return out
	case []any:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = CleanValue(e)
		}
		return out
	case []map[string]any:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = CleanValue(e)
		}
		return out
	}
	return Clean(v)
}
