package tabtex

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Normalize converts every cell of grid to its display text and returns a
// new grid. It fails with [ErrEmptyInput] when grid has no rows. Rows are not
// checked for equal length.
func Normalize[T any](grid [][]T) ([][]string, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = DisplayText(c)
		}
		out[i] = cells
	}
	return out, nil
}

// DisplayText returns the text a cell renders as. nil, including a nil
// pointer, renders as "".
func DisplayText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		if isNilPointer(x) {
			return ""
		}
		return x.String()
	case error:
		if isNilPointer(x) {
			return ""
		}
		return x.Error()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// RuleSet is a set of zero-based row or column boundary indices.
type RuleSet map[int]struct{}

// NewRuleSet returns a set holding idx. Duplicates collapse.
func NewRuleSet(idx ...int) RuleSet {
	s := make(RuleSet, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether i is in the set. A nil set is empty.
func (s RuleSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Indices returns the members in ascending order.
func (s RuleSet) Indices() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
