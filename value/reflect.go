package value

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

// ErrUnsupported indicates a value with no canonical encoding.
//
// It is wrapped with the offending kind.
var ErrUnsupported = errors.New("unsupported value")

// ErrTooDeep indicates nesting beyond maxDepth, usually a pointer cycle.
var ErrTooDeep = errors.New("value nested too deeply")

const maxDepth = 128

var (
	hashableType = reflect.TypeFor[Hashable]()
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// Any writes the canonical encoding of v. A nil v writes the nil marker.
func (e *Encoder) Any(v any) error {
	if v == nil {
		e.Nil()
		return nil
	}

	rv := reflect.ValueOf(v)
	if !rv.CanAddr() {
		// Copy so that pointer-receiver HashTo methods are reachable.
		addr := reflect.New(rv.Type()).Elem()
		addr.Set(rv)
		rv = addr
	}

	return e.reflect(rv, 0)
}

func (e *Encoder) reflect(v reflect.Value, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: depth %d", ErrTooDeep, depth)
	}

	t := v.Type()
	if k := t.Kind(); k == reflect.Pointer || k == reflect.Interface {
		if v.IsNil() {
			e.Nil()
			return nil
		}
		e.Present()
		if h, ok := v.Interface().(Hashable); ok {
			h.HashTo(e)
			return nil
		}
		return e.reflect(v.Elem(), depth+1)
	}

	switch {
	case t.Implements(hashableType):
		v.Interface().(Hashable).HashTo(e)
		return nil
	case v.CanAddr() && reflect.PointerTo(t).Implements(hashableType):
		v.Addr().Interface().(Hashable).HashTo(e)
		return nil
	}

	switch t {
	case timeType:
		e.Time(v.Interface().(time.Time))
		return nil
	case durationType:
		e.Duration(time.Duration(v.Int()))
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		e.Bool(v.Bool())
	case reflect.Int8:
		e.Int8(int8(v.Int()))
	case reflect.Int16:
		e.Int16(int16(v.Int()))
	case reflect.Int32:
		e.Int32(int32(v.Int()))
	case reflect.Int, reflect.Int64:
		e.Int64(v.Int())
	case reflect.Uint8:
		e.Uint8(uint8(v.Uint()))
	case reflect.Uint16:
		e.Uint16(uint16(v.Uint()))
	case reflect.Uint32:
		e.Uint32(uint32(v.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		e.Uint64(v.Uint())
	case reflect.Float32:
		e.Float32(float32(v.Float()))
	case reflect.Float64:
		e.Float64(v.Float())
	case reflect.Complex64:
		e.Complex64(complex64(v.Complex()))
	case reflect.Complex128:
		e.Complex128(v.Complex())
	case reflect.String:
		e.String(v.String())
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			e.Bytes(v.Bytes())
			return nil
		}
		return e.sequence(v, depth)
	case reflect.Array:
		return e.sequence(v, depth)
	case reflect.Struct:
		return e.structFields(v, depth)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, t.Kind())
	}

	return nil
}

func (e *Encoder) sequence(v reflect.Value, depth int) error {
	n := v.Len()
	e.Len(n)
	for i := 0; i < n; i++ {
		if err := e.reflect(v.Index(i), depth+1); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

func (e *Encoder) structFields(v reflect.Value, depth int) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("hash") == "-" {
			continue
		}
		if err := e.reflect(v.Field(i), depth+1); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}
