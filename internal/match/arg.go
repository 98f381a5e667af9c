package match

import (
	"fmt"
	"reflect"
	"strings"
)

// Arg matches a single recorded argument value.
//
// Matches must be pure: same input, same answer, no side effects. String is
// used in failure diagnostics and should read like the constructor call that
// built the matcher.
type Arg interface {
	Matches(v any) bool
	String() string
}

type eqMatcher struct {
	want any
}

func (m eqMatcher) Matches(v any) bool {
	return reflect.DeepEqual(v, m.want)
}

func (m eqMatcher) String() string {
	return fmt.Sprintf("Eq(%#v)", m.want)
}

// Eq matches an argument deep-equal to want.
func Eq(want any) Arg {
	return eqMatcher{want: want}
}

type anyMatcher struct{}

func (anyMatcher) Matches(any) bool { return true }
func (anyMatcher) String() string   { return "Any()" }

var singletonAny = anyMatcher{}

// Any matches unconditionally.
func Any() Arg {
	return singletonAny
}

type funcMatcher struct {
	fn      func(any) bool
	explain string
}

func (m funcMatcher) Matches(v any) bool { return m.fn(v) }
func (m funcMatcher) String() string     { return m.explain }

// Func matches when fn returns true. The optional explanation names the
// predicate in diagnostics; without one the matcher renders as "Func()".
//
// Func is the extension point: every richer matcher in this package and any
// user-defined matcher is a predicate underneath.
func Func(fn func(any) bool, explanation ...string) Arg {
	explain := "Func()"
	if len(explanation) > 0 {
		explain = strings.Join(explanation, " ")
	}
	return funcMatcher{fn: fn, explain: explain}
}

// Nil matches nil and nil-valued channels, funcs, interfaces, maps, pointers
// and slices.
func Nil() Arg {
	return Func(func(v any) bool {
		if v == nil {
			return true
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return rv.IsNil()
		}
		return false
	}, "Nil()")
}

// TypeOf matches any argument assignable to the dynamic type of sample.
// Pass a reflect.Type directly to match against an interface type.
func TypeOf(sample any) Arg {
	rt, ok := sample.(reflect.Type)
	if !ok {
		rt = reflect.TypeOf(sample)
	}
	return Func(func(v any) bool {
		vt := reflect.TypeOf(v)
		if vt == nil {
			return false
		}
		if rt.Kind() == reflect.Interface {
			return vt.Implements(rt)
		}
		return vt.AssignableTo(rt)
	}, fmt.Sprintf("TypeOf(%v)", rt))
}

// Not negates m.
func Not(m Arg) Arg {
	return Func(func(v any) bool { return !m.Matches(v) }, fmt.Sprintf("Not(%v)", m))
}

// AllOf matches when every matcher matches. Matches with no matchers.
func AllOf(ms ...Arg) Arg {
	return Func(func(v any) bool {
		for _, m := range ms {
			if !m.Matches(v) {
				return false
			}
		}
		return true
	}, describeList("AllOf", ms))
}

// AnyOf matches when at least one matcher matches. Never matches with no
// matchers.
func AnyOf(ms ...Arg) Arg {
	return Func(func(v any) bool {
		for _, m := range ms {
			if m.Matches(v) {
				return true
			}
		}
		return false
	}, describeList("AnyOf", ms))
}

func describeList(name string, ms []Arg) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}

// Coerce wraps raw values as Eq matchers while passing explicit matchers
// through. This is the "no matcher means literal equality" default of the
// verification surface.
func Coerce(argsOrMatchers []any) []Arg {
	out := make([]Arg, len(argsOrMatchers))
	for i, a := range argsOrMatchers {
		if m, ok := a.(Arg); ok {
			out[i] = m
			continue
		}
		out[i] = Eq(a)
	}
	return out
}
