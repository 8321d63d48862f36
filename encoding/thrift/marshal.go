package thrift

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
)

// Marshal encodes v, which must be a non-nil pointer to a struct carrying
// "thrift" tags, using the wire format protocol constructs. The returned
// bytes are exactly what the underlying Writer produced; no additional
// framing is added (spec.md §6 layers footer framing separately).
func Marshal(protocol Protocol, v any, opts ...Option) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, newError("Marshal", InvalidState, fmt.Errorf("value must be a non-nil struct pointer, got %T", v))
	}
	d, err := describeStruct(rv.Type())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := protocol.NewWriter(&buf, opts...)
	if err := marshalStruct(w, rv.Elem(), d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into v, which must be a non-nil pointer to a
// struct carrying "thrift" tags. v is left unmodified if decoding fails
// partway: the struct is built into a scratch value and only copied onto
// *v once decoding finishes without error (spec.md §4.G's
// ownership-on-failure requirement).
func Unmarshal(protocol Protocol, data []byte, v any, opts ...Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return newError("Unmarshal", InvalidState, fmt.Errorf("value must be a non-nil struct pointer, got %T", v))
	}
	d, err := describeStruct(rv.Type())
	if err != nil {
		return err
	}
	o := resolveOptions(opts)
	r := protocol.NewReader(bytes.NewReader(data), opts...)
	scratch := reflect.New(rv.Type().Elem()).Elem()
	if err := unmarshalStruct(r, scratch, d, o); err != nil {
		return err
	}
	rv.Elem().Set(scratch)
	return nil
}

func indirectForEncode(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.New(v.Type().Elem()).Elem()
		}
		return v.Elem()
	}
	return v
}

func marshalStruct(w Writer, rv reflect.Value, d *structDescriptor) error {
	rv = indirectForEncode(rv)
	if err := w.WriteStructBegin(); err != nil {
		return err
	}
	for _, f := range d.fields {
		fv := rv.Field(f.index)
		zero := fv.IsZero()
		if d.isUnion {
			if zero {
				continue
			}
		} else if zero && !f.required && !f.writeZero {
			continue
		}
		if err := w.WriteFieldBegin(Field{ID: f.id, Type: f.ttype}); err != nil {
			return err
		}
		var err error
		if f.ttype == LIST {
			err = marshalList(w, fv, f)
		} else {
			err = encodeValue(w, fv, f.ttype, f.nested)
		}
		if err != nil {
			return err
		}
		if err := w.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if err := w.WriteFieldStop(); err != nil {
		return err
	}
	return w.WriteStructEnd()
}

func marshalList(w Writer, fv reflect.Value, f *field) error {
	n := fv.Len()
	if err := w.WriteListBegin(List{Type: f.elemType, Size: n}); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := encodeValue(w, fv.Index(i), f.elemType, f.elem); err != nil {
			return err
		}
	}
	return w.WriteListEnd()
}

func encodeValue(w Writer, fv reflect.Value, ttype TType, nested *structDescriptor) error {
	if fv.Kind() == reflect.Pointer {
		fv = fv.Elem()
	}
	switch ttype {
	case BOOL:
		return w.WriteBool(fv.Bool())
	case BYTE:
		return w.WriteByte(int8(fv.Int()))
	case I16:
		return w.WriteI16(int16(fv.Int()))
	case I32:
		return w.WriteI32(int32(fv.Int()))
	case I64:
		return w.WriteI64(fv.Int())
	case DOUBLE:
		return w.WriteDouble(fv.Float())
	case STRING:
		if fv.Kind() == reflect.Slice {
			return w.WriteBinary(fv.Bytes())
		}
		return w.WriteString(fv.String())
	case STRUCT:
		return marshalStruct(w, fv, nested)
	default:
		return newError("encodeValue", InvalidCType, nil)
	}
}

func unmarshalStruct(r Reader, rv reflect.Value, d *structDescriptor, o *Options) error {
	if err := r.ReadStructBegin(); err != nil {
		return err
	}
	sawField := false
	var seen map[int16]bool
	for {
		fh, err := r.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fh.Type == STOP {
			break
		}
		f, ok := d.byID[fh.ID]
		if !ok || !compatible(f.ttype, fh.Type) {
			if err := r.Skip(fh.Type); err != nil {
				return err
			}
			if err := r.ReadFieldEnd(); err != nil {
				return err
			}
			continue
		}
		sawField = true
		if seen == nil {
			seen = make(map[int16]bool, len(d.fields))
		}
		seen[f.id] = true
		if d.isUnion {
			// Latest field on the wire wins: clear every other variant so
			// only the one being read now survives (spec.md §4.G).
			for _, other := range d.fields {
				if other.id != f.id {
					rv.Field(other.index).SetZero()
				}
			}
		}
		fv := rv.Field(f.index)
		if f.ttype == LIST {
			err = unmarshalList(r, fv, f, o)
		} else {
			err = decodeValue(r, fv, f.ttype, f.nested, o)
		}
		if err != nil {
			return err
		}
		if err := r.ReadFieldEnd(); err != nil {
			return err
		}
	}
	if err := r.ReadStructEnd(); err != nil {
		return err
	}
	if d.isUnion {
		if !sawField {
			return newError("Unmarshal", CantParseUnion, nil)
		}
		return nil
	}
	for _, f := range d.fields {
		if f.required && !seen[f.id] {
			return newError("Unmarshal", RequiredFieldMissing, fmt.Errorf("field %s (id %d)", f.name, f.id))
		}
	}
	return nil
}

func decodeValue(r Reader, fv reflect.Value, ttype TType, nested *structDescriptor, o *Options) error {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}
	switch ttype {
	case BOOL:
		v, err := r.ReadBool()
		if err != nil {
			return err
		}
		fv.SetBool(v)
	case BYTE:
		v, err := r.ReadByte()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case I16:
		v, err := r.ReadI16()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case I32:
		v, err := r.ReadI32()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case I64:
		v, err := r.ReadI64()
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case DOUBLE:
		v, err := r.ReadDouble()
		if err != nil {
			return err
		}
		fv.SetFloat(v)
	case STRING:
		if fv.Kind() == reflect.Slice {
			v, err := r.ReadBinary()
			if err != nil {
				return err
			}
			fv.SetBytes(v)
		} else {
			v, err := r.ReadString()
			if err != nil {
				return err
			}
			fv.SetString(v)
		}
	case STRUCT:
		return unmarshalStruct(r, fv, nested, o)
	default:
		return newError("decodeValue", InvalidCType, nil)
	}
	return nil
}

func unmarshalList(r Reader, fv reflect.Value, f *field, o *Options) error {
	l, err := r.ReadListBegin()
	if err != nil {
		return err
	}
	if l.Size > 0 && !compatible(f.elemType, l.Type) {
		for i := 0; i < l.Size; i++ {
			if err := r.Skip(l.Type); err != nil {
				return err
			}
		}
		fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
		return r.ReadListEnd()
	}
	slice := reflect.MakeSlice(fv.Type(), 0, l.Size)
	for i := 0; i < l.Size; i++ {
		elem := reflect.New(fv.Type().Elem()).Elem()
		if err := decodeValue(r, elem, f.elemType, f.elem, o); err != nil {
			if o.lenientListElements && isLenientlyDroppable(err) {
				continue
			}
			return err
		}
		slice = reflect.Append(slice, elem)
	}
	fv.Set(slice)
	return r.ReadListEnd()
}

// isLenientlyDroppable reports whether err is one of the two failure
// classes WithLenientListElements allows a list to recover from by
// dropping the offending element: a union with nothing set, or a struct
// missing a required field. Anything else (malformed bytes, a depth or
// size ceiling) still aborts the whole list, since the stream framing
// around that element cannot be trusted.
func isLenientlyDroppable(err error) bool {
	return errors.Is(err, ErrCantParseUnion) || errors.Is(err, ErrRequiredFieldMissing)
}
