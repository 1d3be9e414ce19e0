// Package urlquery serializes nested maps into PHP-style bracketed query
// strings.
package urlquery

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Chandra179/web-utils/pkg/guard"
)

// FromMap flattens obj into a query string. Nested maps become bracketed
// key paths ("key[prop]"), slices append under "key[]", and a map found
// inside a slice is flattened exactly one level ("key[][prop]"). Nil
// values, funcs, channels, NaN and infinities are skipped. time.Time
// values serialize as RFC 3339. Keys are emitted in sorted order at each
// level. An empty or nil map yields "", otherwise the result starts with
// "?" and parts are joined with "&".
func FromMap(obj map[string]any) string {
	if len(obj) == 0 {
		return ""
	}
	var parts []string
	for _, k := range sortedKeys(obj) {
		parts = appendValue(parts, k, obj[k])
	}
	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}

func appendValue(parts []string, keyPath string, v any) []string {
	if !serializable(v) {
		return parts
	}

	if t, ok := v.(time.Time); ok {
		return append(parts, keyPath+"="+url.QueryEscape(t.Format(time.RFC3339)))
	}

	if m, ok := asPlainMap(v); ok {
		for _, k := range sortedKeys(m) {
			parts = appendValue(parts, keyPath+"["+k+"]", m[k])
		}
		return parts
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return appendSlice(parts, keyPath, rv)
	}

	return append(parts, keyPath+"="+url.QueryEscape(primitiveString(v)))
}

// appendSlice emits each element under keyPath[]. A map element is
// flattened one level to keyPath[][prop]; containers nested deeper than
// that are skipped, which mirrors the documented depth limit.
func appendSlice(parts []string, keyPath string, rv reflect.Value) []string {
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if !serializable(elem) {
			continue
		}
		if t, ok := elem.(time.Time); ok {
			parts = append(parts, keyPath+"[]="+url.QueryEscape(t.Format(time.RFC3339)))
			continue
		}
		if m, ok := asPlainMap(elem); ok {
			for _, k := range sortedKeys(m) {
				pv := m[k]
				if !serializable(pv) || isContainer(pv) {
					continue
				}
				if t, ok := pv.(time.Time); ok {
					parts = append(parts, keyPath+"[]["+k+"]="+url.QueryEscape(t.Format(time.RFC3339)))
					continue
				}
				parts = append(parts, keyPath+"[]["+k+"]="+url.QueryEscape(primitiveString(pv)))
			}
			continue
		}
		if isContainer(elem) {
			continue
		}
		parts = append(parts, keyPath+"[]="+url.QueryEscape(primitiveString(elem)))
	}
	return parts
}

// serializable filters out the value kinds the query string has no
// representation for.
func serializable(v any) bool {
	if guard.IsNil(v) {
		return false
	}
	switch f := v.(type) {
	case float32:
		return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
	case float64:
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan:
		return false
	}
	return true
}

func isContainer(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func asPlainMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if !guard.IsPlainMap(v) {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func primitiveString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
