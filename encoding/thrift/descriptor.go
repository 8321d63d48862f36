package thrift

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// field is one entry of a structDescriptor, built once per Go type and
// cached (spec.md §4.F: "the descriptor is static... the binding layer
// does not mutate it").
type field struct {
	index     int
	name      string
	id        int16
	ttype     TType
	elemType  TType // valid when ttype == LIST
	elem      *structDescriptor
	nested    *structDescriptor
	required  bool
	writeZero bool
}

// structDescriptor describes either a Thrift struct or a Thrift union,
// distinguished by isUnion (spec.md §4.F).
type structDescriptor struct {
	typ     reflect.Type
	isUnion bool
	fields  []*field
	byID    map[int16]*field
}

var descriptorCache sync.Map // reflect.Type -> *structDescriptor

var unionInterface = reflect.TypeOf((*Union)(nil)).Elem()

func describeStruct(t reflect.Type) (*structDescriptor, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("thrift: %s is not a struct", t)
	}
	if cached, ok := descriptorCache.Load(t); ok {
		return cached.(*structDescriptor), nil
	}

	d := &structDescriptor{
		typ:     t,
		isUnion: reflect.PointerTo(t).Implements(unionInterface),
		byID:    map[int16]*field{},
	}
	// Store before recursing so self-referential schemas (none exist in
	// the Parquet IDL today, but nothing here should assume otherwise)
	// terminate instead of looping.
	descriptorCache.Store(t, d)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" && !sf.Anonymous {
			continue // unexported
		}
		tag, ok := sf.Tag.Lookup("thrift")
		if !ok {
			continue // e.g. an embedded UnionType marker
		}
		f, err := newField(i, sf, tag)
		if err != nil {
			return nil, fmt.Errorf("thrift: %s.%s: %w", t, sf.Name, err)
		}
		d.fields = append(d.fields, f)
		d.byID[f.id] = f
	}
	return d, nil
}

func newField(index int, sf reflect.StructField, tag string) (*field, error) {
	parts := strings.Split(tag, ",")
	id, err := strconv.ParseInt(parts[0], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid field id %q: %w", parts[0], err)
	}
	f := &field{
		index:    index,
		name:     sf.Name,
		id:       int16(id),
		required: true, // bare "N" defaults to required, per the recovered format tags.
	}
	for _, opt := range parts[1:] {
		switch opt {
		case "optional":
			f.required = false
		case "required":
			f.required = true
		case "writezero":
			f.writeZero = true
		case "":
		default:
			return nil, fmt.Errorf("unknown thrift tag option %q", opt)
		}
	}

	t := sf.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		f.ttype = BOOL
	case reflect.Int8:
		f.ttype = BYTE
	case reflect.Int16:
		f.ttype = I16
	case reflect.Int32:
		f.ttype = I32
	case reflect.Int64:
		f.ttype = I64
	case reflect.Float64:
		f.ttype = DOUBLE
	case reflect.String:
		f.ttype = STRING
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			f.ttype = STRING // []byte
			break
		}
		f.ttype = LIST
		elemType := t.Elem()
		et, err := elemTType(elemType)
		if err != nil {
			return nil, err
		}
		f.elemType = et
		if et == STRUCT {
			nested, err := describeStruct(elemType)
			if err != nil {
				return nil, err
			}
			f.elem = nested
		}
	case reflect.Struct:
		f.ttype = STRUCT
		nested, err := describeStruct(t)
		if err != nil {
			return nil, err
		}
		f.nested = nested
	default:
		return nil, fmt.Errorf("unsupported Go kind %s", t.Kind())
	}
	return f, nil
}

func elemTType(t reflect.Type) (TType, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return BOOL, nil
	case reflect.Int8:
		return BYTE, nil
	case reflect.Int16:
		return I16, nil
	case reflect.Int32:
		return I32, nil
	case reflect.Int64:
		return I64, nil
	case reflect.Float64:
		return DOUBLE, nil
	case reflect.String:
		return STRING, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return STRING, nil // [][]byte element
		}
		return LIST, nil
	case reflect.Struct:
		return STRUCT, nil
	default:
		return 0, fmt.Errorf("unsupported list element kind %s", t.Kind())
	}
}
