package attr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Of builds a Map from alternating names and values, converting each value with ValueOf.  Of panics if it is given an
// odd number of arguments or a name that is not a string, since that can only be a programming error.
func Of(kv ...any) Map {
	if len(kv)%2 != 0 {
		panic(fmt.Errorf(`attr.Of given %v arguments, expected name and value pairs`, len(kv)))
	}
	m := make(Map, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Errorf(`attr.Of given %T as attribute name %v, expected a string`, kv[i], i/2))
		}
		m = append(m, Pair{name, ValueOf(kv[i+1])})
	}
	return m
}

// ValueOf converts a Go value into an attribute Value:
//
//   - a Value is returned unchanged,
//   - bool becomes a Bool,
//   - string becomes a Str, as does nil (an empty value),
//   - integers and floats become a Str holding their canonical strconv form,
//   - []string becomes a Str of its items joined by spaces, which suits class lists,
//   - []Pair, map[string]any and map[string]string become a nested Map; plain Go maps are unordered, so their keys
//     are sorted to keep the output stable,
//   - anything else, including a fmt.Stringer, becomes a Str holding fmt.Sprint of the value; a nil pointer whose
//     String method would panic renders as <nil>.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case nil:
		return Str(``)
	case Value:
		return v
	case bool:
		return Bool(v)
	case string:
		return Str(v)
	case []string:
		return Str(strings.Join(v, ` `))
	case []Pair:
		return Map(v)
	case map[string]any:
		m := make(Map, 0, len(v))
		for _, k := range sortedKeys(v) {
			m = append(m, Pair{k, ValueOf(v[k])})
		}
		return m
	case map[string]string:
		m := make(Map, 0, len(v))
		for _, k := range sortedKeys(v) {
			m = append(m, Pair{k, Str(v[k])})
		}
		return m
	case int:
		return Str(strconv.Itoa(v))
	case int8:
		return Str(strconv.FormatInt(int64(v), 10))
	case int16:
		return Str(strconv.FormatInt(int64(v), 10))
	case int32:
		return Str(strconv.FormatInt(int64(v), 10))
	case int64:
		return Str(strconv.FormatInt(v, 10))
	case uint:
		return Str(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return Str(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return Str(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return Str(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return Str(strconv.FormatUint(v, 10))
	case float32:
		return Str(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return Str(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return Str(fmt.Sprint(v))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
