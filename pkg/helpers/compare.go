package helpers

import (
	"encoding/json"
	"reflect"
)

// EqualByFields reports whether source and target agree on the given
// top-level JSON fields. Each selected field is compared recursively
// after a JSON round-trip, so nested objects and arrays are matched
// structurally and array order is significant. With no fields given the
// whole values are compared.
func EqualByFields(source any, target any, fields []string) bool {
	srcMap, okSrc := toJSONMap(source)
	dstMap, okDst := toJSONMap(target)
	if !okSrc || !okDst {
		return false
	}

	if len(fields) == 0 {
		return reflect.DeepEqual(srcMap, dstMap)
	}

	for _, field := range fields {
		if !reflect.DeepEqual(srcMap[field], dstMap[field]) {
			return false
		}
	}

	return true
}

func toJSONMap(value any) (map[string]any, bool) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, false
	}

	return decoded, true
}
