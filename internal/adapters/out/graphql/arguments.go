package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	"dashboard/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	plainKey    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	variableRef = regexp.MustCompile(`^\$[a-zA-Z0-9]+$`)
)

// Argument is one name/value pair of a field's argument list.
type Argument struct {
	Name  string
	Value any
}

// Arguments renders a GraphQL argument list: the JSON object body without the
// outer braces, with unquoted keys. Nil values are dropped at every depth,
// list elements are also dropped when they are empty or zero, and strings of
// the form "$name" become variable references. Argument order is
// kept; nested maps are written with sorted keys.
//
// Example:
//
//	args := Arguments{
//	    {Name: "orderId", Value: "ord_1"},
//	    {Name: "imagesBefore", Value: Variable("imagesBefore")},
//	}
//	args.String() // orderId:"ord_1",imagesBefore:$imagesBefore
type Arguments []Argument

// Variable returns the placeholder string for $name.
func Variable(name string) string {
	return "$" + name
}

func (a Arguments) String() string {
	var buf bytes.Buffer
	writeFields(&buf, a)
	return buf.String()
}

func writeFields(buf *bytes.Buffer, args Arguments) {
	first := true
	for _, arg := range args {
		if isNil(arg.Value) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeKey(buf, arg.Name)
		buf.WriteByte(':')
		writeValue(buf, arg.Value)
	}
}

func writeKey(buf *bytes.Buffer, key string) {
	if plainKey.MatchString(key) {
		buf.WriteString(key)
		return
	}
	writeJSON(buf, key)
}

func writeValue(buf *bytes.Buffer, value any) {
	switch v := value.(type) {
	case Arguments:
		buf.WriteByte('{')
		writeFields(buf, v)
		buf.WriteByte('}')
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		args := make(Arguments, 0, len(v))
		for _, k := range keys {
			args = append(args, Argument{Name: k, Value: v[k]})
		}
		writeValue(buf, args)
	case []Arguments:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, item)
		}
		writeList(buf, items)
	case []string:
		items := make([]any, 0, len(v))
		for _, item := range v {
			items = append(items, item)
		}
		writeList(buf, items)
	case []any:
		writeList(buf, v)
	case string:
		if variableRef.MatchString(v) {
			buf.WriteString(v)
			return
		}
		writeJSON(buf, v)
	case kernel.ID:
		writeJSON(buf, v.String())
	case kernel.Money:
		buf.WriteString(v.Decimal().String())
	case decimal.Decimal:
		buf.WriteString(v.String())
	case time.Time:
		writeJSON(buf, v.UTC().Format(time.RFC3339Nano))
	case *time.Time:
		writeValue(buf, *v)
	case fmt.Stringer:
		writeJSON(buf, v.String())
	default:
		writeJSON(buf, v)
	}
}

func writeList(buf *bytes.Buffer, items []any) {
	buf.WriteByte('[')
	first := true
	for _, item := range items {
		if isEmpty(item) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeValue(buf, item)
	}
	buf.WriteByte(']')
}

func writeJSON(buf *bytes.Buffer, v any) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		buf.WriteString("null")
		return
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
}

func isNil(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *string:
		return t == nil
	case *time.Time:
		return t == nil
	case Arguments:
		return t == nil
	default:
		return false
	}
}

// isEmpty reports list elements that are left out of a list: nils plus the
// zero values of scalars.
func isEmpty(v any) bool {
	if isNil(v) {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case *string:
		return *t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0 || math.IsNaN(t)
	case kernel.ID:
		return t.String() == ""
	case kernel.Money:
		return t.Decimal().IsZero()
	case decimal.Decimal:
		return t.IsZero()
	default:
		return false
	}
}
