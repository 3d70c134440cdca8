// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package rule

import "reflect"

// asNumber normalizes any JSON-representable numeric kind to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// compareOrdered compares two operands that must be "mutually orderable":
// both numeric, or both strings. Anything else (including one numeric and
// one string) reports ok=false so the caller can fail closed to false
// rather than erroring, per spec §4.1.
func compareOrdered(a, b any) (cmp int, ok bool) {
	if an, aok := asNumber(a); aok {
		if bn, bok := asNumber(b); bok {
			switch {
			case an < bn:
				return -1, true
			case an > bn:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}

	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	}

	return 0, false
}

// valuesEqual reports structural equality across JSON-representable
// scalars, lists and mappings, treating any numeric kinds as equal when
// their float64 values match.
func valuesEqual(a, b any) bool {
	if an, aok := asNumber(a); aok {
		bn, bok := asNumber(b)
		return bok && an == bn
	}

	aList, aIsList := toSlice(a)
	bList, bIsList := toSlice(b)
	if aIsList || bIsList {
		if !aIsList || !bIsList || len(aList) != len(bList) {
			return false
		}
		for i := range aList {
			if !valuesEqual(aList[i], bList[i]) {
				return false
			}
		}
		return true
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap || bIsMap {
		if !aIsMap || !bIsMap || len(aMap) != len(bMap) {
			return false
		}
		for k, av := range aMap {
			bv, exists := bMap[k]
			if !exists || !valuesEqual(av, bv) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(a, b)
}

// toSlice reports whether v is list-shaped ([]any or any other slice kind
// produced by a JSON decode) and returns it as []any.
func toSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// containsValue reports whether list contains an element equal to value.
func containsValue(list []any, value any) bool {
	for _, item := range list {
		if valuesEqual(item, value) {
			return true
		}
	}
	return false
}
