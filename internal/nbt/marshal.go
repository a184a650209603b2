package nbt

import (
	"fmt"
	"reflect"
	"strings"
)

// Marshal converts a Go value to NBT bytes in file format (empty root name).
//
// Type mapping:
//
//	bool             -> Byte (0 or 1)
//	int8             -> Byte
//	int16            -> Short
//	int32, int       -> Int
//	int64            -> Long
//	float32          -> Float
//	float64          -> Double
//	string           -> String
//	[]byte           -> ByteArray
//	[]int32          -> IntArray
//	[]int64          -> LongArray
//	[]T              -> List
//	struct           -> Compound
//	map[string]T     -> Compound
//
// Struct fields may carry an `nbt:"name"` tag; `nbt:"-"` skips a field,
// and `nbt:"name,omitempty"` omits zero values.
func Marshal(v any, opts ...WriterOption) ([]byte, error) {
	tag, dynamicLists, err := marshalRoot(v, opts)
	if err != nil {
		return nil, err
	}
	return Encode(tag, "", append(opts, WithDynamicLists(dynamicLists))...)
}

// MarshalNetwork converts a Go value to NBT bytes in network format
// (nameless root), the form used on the wire.
func MarshalNetwork(v any, opts ...WriterOption) ([]byte, error) {
	return Marshal(v, append(opts, WithNamelessRoot(true))...)
}

// MarshalTag converts a Go value to a Tag without encoding to bytes.
// dynamicLists controls whether heterogeneous slices are wrapped instead
// of rejected; see WithDynamicLists.
func MarshalTag(v any, dynamicLists bool) (Tag, error) {
	return marshalValue(reflect.ValueOf(v), dynamicLists)
}

func marshalRoot(v any, opts []WriterOption) (Tag, bool, error) {
	probe := &Writer{}
	for _, opt := range opts {
		opt(probe)
	}
	tag, err := marshalValue(reflect.ValueOf(v), probe.dynamicLists)
	return tag, probe.dynamicLists, err
}

func marshalValue(v reflect.Value, dynamicLists bool) (Tag, error) {
	if !v.IsValid() {
		return Compound{}, nil
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Compound{}, nil
		}
		v = v.Elem()
	}

	if tag, ok := v.Interface().(Tag); ok {
		return tag, nil
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return Byte(1), nil
		}
		return Byte(0), nil

	case reflect.Int8:
		return Byte(v.Int()), nil
	case reflect.Int16:
		return Short(v.Int()), nil
	case reflect.Int32, reflect.Int:
		return Int(v.Int()), nil
	case reflect.Int64:
		return Long(v.Int()), nil
	case reflect.Uint8:
		return Byte(v.Uint()), nil
	case reflect.Uint16:
		return Short(v.Uint()), nil
	case reflect.Uint32, reflect.Uint:
		return Int(v.Uint()), nil
	case reflect.Uint64:
		return Long(v.Uint()), nil
	case reflect.Float32:
		return Float(v.Float()), nil
	case reflect.Float64:
		return Double(v.Float()), nil
	case reflect.String:
		return String(v.String()), nil
	case reflect.Slice:
		return marshalSlice(v, dynamicLists)
	case reflect.Array:
		return marshalSlice(v, dynamicLists)
	case reflect.Map:
		return marshalMap(v, dynamicLists)
	case reflect.Struct:
		return marshalStruct(v, dynamicLists)
	default:
		return nil, fmt.Errorf("nbt: cannot marshal type %s", v.Type())
	}
}

func marshalSlice(v reflect.Value, dynamicLists bool) (Tag, error) {
	switch v.Type().Elem().Kind() {
	case reflect.Uint8:
		if v.Kind() == reflect.Slice {
			return ByteArray(v.Bytes()), nil
		}
		data := make([]byte, v.Len())
		for i := 0; i < v.Len(); i++ {
			data[i] = byte(v.Index(i).Uint())
		}
		return ByteArray(data), nil

	case reflect.Int32:
		data := make(IntArray, v.Len())
		for i := 0; i < v.Len(); i++ {
			data[i] = int32(v.Index(i).Int())
		}
		return data, nil

	case reflect.Int64:
		data := make(LongArray, v.Len())
		for i := 0; i < v.Len(); i++ {
			data[i] = v.Index(i).Int()
		}
		return data, nil
	}

	if v.Len() == 0 {
		return List{ElementType: TagEnd, Elements: nil}, nil
	}

	elements := make([]Tag, v.Len())
	var elemType byte
	mixed := false

	for i := 0; i < v.Len(); i++ {
		elem, err := marshalValue(v.Index(i), dynamicLists)
		if err != nil {
			return nil, fmt.Errorf("nbt: list element %d: %w", i, err)
		}
		elements[i] = elem
		if i == 0 {
			elemType = elem.ID()
		} else if elem.ID() != elemType {
			mixed = true
		}
	}

	if !mixed {
		return List{ElementType: elemType, Elements: elements}, nil
	}
	if !dynamicLists {
		return nil, fmt.Errorf("nbt: list has mixed element types and dynamic lists are disabled")
	}

	wrapped := make([]Tag, len(elements))
	for i, elem := range elements {
		wrapped[i] = WrapDynamicElement(elem)
	}
	return List{ElementType: TagCompound, Elements: wrapped}, nil
}

func marshalMap(v reflect.Value, dynamicLists bool) (Tag, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("nbt: map keys must be strings, got %s", v.Type().Key())
	}

	compound := make(Compound)
	iter := v.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		value, err := marshalValue(iter.Value(), dynamicLists)
		if err != nil {
			return nil, fmt.Errorf("nbt: map key %q: %w", key, err)
		}
		compound[key] = value
	}
	return compound, nil
}

func marshalStruct(v reflect.Value, dynamicLists bool) (Tag, error) {
	compound := make(Compound)
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		name, opts := parseTag(field.Tag.Get("nbt"))
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		if opts.Contains("omitempty") && isEmptyValue(fieldValue) {
			continue
		}

		tag, err := marshalValue(fieldValue, dynamicLists)
		if err != nil {
			return nil, fmt.Errorf("nbt: field %s: %w", field.Name, err)
		}
		compound[name] = tag
	}
	return compound, nil
}

type tagOptions string

func parseTag(tag string) (string, tagOptions) {
	if before, after, ok := strings.Cut(tag, ","); ok {
		return before, tagOptions(after)
	}
	return tag, ""
}

func (o tagOptions) Contains(opt string) bool {
	for o != "" {
		var next string
		if i := strings.Index(string(o), ","); i >= 0 {
			next = string(o[i+1:])
			o = o[:i]
		} else {
			next = ""
		}
		if string(o) == opt {
			return true
		}
		o = tagOptions(next)
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
