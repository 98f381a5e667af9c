package ledger

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is one captured invocation: which operation was called on which
// mock, with what arguments, and when relative to every other call in the
// run.
//
// Records are immutable once appended and owned by the ledger that appended
// them. Args holds a snapshot taken at call time, never a live reference.
type Record struct {
	// MockID identifies the mock instance whose ledger holds this record.
	MockID string

	// Op is the stable operation identity resolved by the proxy layer.
	Op string

	// Args is the argument snapshot, in call order.
	Args []any

	// Seq is the logical clock value assigned at append time.
	// Total order across all mocks in the run.
	Seq int64
}

// String renders the record for diagnostics, e.g. `[3] mailer.Send("bob")`.
func (r Record) String() string {
	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	return fmt.Sprintf("[%d] %s.%s(%s)", r.Seq, r.MockID, r.Op, strings.Join(parts, ", "))
}

// snapshotArgs deep-copies the argument list so that later mutation by
// exercise code cannot rewrite recorded history.
func snapshotArgs(args []any) []any {
	if args == nil {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = snapshotValue(reflect.ValueOf(a))
	}
	return out
}

// snapshotValue copies maps, slices and arrays recursively. Scalar values,
// strings, channels, funcs and pointers are stored as-is: pointers are the
// caller's statement that identity, not content, is the argument.
func snapshotValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v.Interface()
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			if cv := snapshotValue(v.Index(i)); cv != nil {
				out.Index(i).Set(reflect.ValueOf(cv))
			}
		}
		return out.Interface()

	case reflect.Map:
		if v.IsNil() {
			return v.Interface()
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			if cv := snapshotValue(iter.Value()); cv != nil {
				out.SetMapIndex(iter.Key(), reflect.ValueOf(cv))
			} else {
				out.SetMapIndex(iter.Key(), reflect.Zero(v.Type().Elem()))
			}
		}
		return out.Interface()

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		reflect.Copy(out, v)
		return out.Interface()

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return snapshotValue(v.Elem())

	default:
		return v.Interface()
	}
}
