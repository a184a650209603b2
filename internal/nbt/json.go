package nbt

import (
	"encoding/json"
	"fmt"
)

// ToJSON converts a Tag into a tree of native Go values (map[string]any,
// []any, string, int8/int16/int32/int64, float32/float64) suitable for
// encoding/json.Marshal. Numeric width is not recoverable from JSON alone;
// round-tripping through JSON loses the distinction between Byte/Short/
// Int/Long and between Float/Double.
func ToJSON(tag Tag) any {
	return tagToNative(tag)
}

// ToJSONBytes is ToJSON followed by json.Marshal.
func ToJSONBytes(tag Tag) ([]byte, error) {
	return json.Marshal(ToJSON(tag))
}

// FromJSON converts a decoded JSON value (as produced by json.Unmarshal
// into an any) into a Tag. Objects become Compound, arrays become List
// (wrapped as a dynamic list if dynamicLists is set and the array is
// heterogeneous), floats become Double, strings become String, and bools
// become Byte (0 or 1), matching the JSON shape Mojang's /data and text
// component formats use.
func FromJSON(v any, dynamicLists bool) (Tag, error) {
	switch val := v.(type) {
	case nil:
		return Compound{}, nil
	case bool:
		if val {
			return Byte(1), nil
		}
		return Byte(0), nil
	case string:
		return String(val), nil
	case float64:
		return Double(val), nil
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return Double(f), nil
		}
		return String(val.String()), nil
	case map[string]any:
		compound := make(Compound, len(val))
		for k, elem := range val {
			tag, err := FromJSON(elem, dynamicLists)
			if err != nil {
				return nil, fmt.Errorf("nbt: json field %q: %w", k, err)
			}
			compound[k] = tag
		}
		return compound, nil
	case []any:
		return jsonArrayToList(val, dynamicLists)
	default:
		return nil, fmt.Errorf("nbt: cannot convert %T from JSON", v)
	}
}

// FromJSONBytes is json.Unmarshal followed by FromJSON.
func FromJSONBytes(data []byte, dynamicLists bool) (Tag, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromJSON(v, dynamicLists)
}

func jsonArrayToList(arr []any, dynamicLists bool) (Tag, error) {
	if len(arr) == 0 {
		return List{ElementType: TagEnd}, nil
	}

	elements := make([]Tag, len(arr))
	var elemType byte
	mixed := false
	for i, item := range arr {
		tag, err := FromJSON(item, dynamicLists)
		if err != nil {
			return nil, fmt.Errorf("nbt: json array element %d: %w", i, err)
		}
		elements[i] = tag
		if i == 0 {
			elemType = tag.ID()
		} else if tag.ID() != elemType {
			mixed = true
		}
	}

	if !mixed {
		return List{ElementType: elemType, Elements: elements}, nil
	}
	if !dynamicLists {
		return nil, fmt.Errorf("nbt: json array has mixed element types and dynamic lists are disabled")
	}
	wrapped := make([]Tag, len(elements))
	for i, elem := range elements {
		wrapped[i] = WrapDynamicElement(elem)
	}
	return List{ElementType: TagCompound, Elements: wrapped}, nil
}
