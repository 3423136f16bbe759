// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequence of keys and indexes starting from v, and
// returns the value reached, if any. Each element of the path must be
// either a string, denoting a member key of an object, or an int,
// denoting an index into an array. Negative indexes count backward from
// the end of the array. An empty path returns v itself.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for i, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return nil, fmt.Errorf("path %d: got %T, want object", i, cur)
			}
			m := obj.Find(t)
			if m == nil {
				return nil, fmt.Errorf("path %d: key %q not found", i, t)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("path %d: got %T, want array", i, cur)
			}
			pos := t
			if pos < 0 {
				pos += len(arr)
			}
			if pos < 0 || pos >= len(arr) {
				return nil, fmt.Errorf("path %d: index %d out of range (0..%d)", i, t, len(arr))
			}
			cur = arr[pos]
		default:
			return nil, fmt.Errorf("path %d: invalid element %T", i, elt)
		}
	}
	return cur, nil
}
