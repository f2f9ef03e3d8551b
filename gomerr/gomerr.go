package gomerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unicode"
)

type Gomerr interface {
	error
	Unwrap() error
	Is(err error) bool

	Wrap(err error) Gomerr
	AddAttribute(key string, value any) Gomerr
	AddAttributes(keysAndValues ...any) Gomerr

	Attribute(key string) any
	Attributes() map[string]any
	Stack() []string
	String() string
	ToMap() map[string]any
}

var gomerrType = reflect.TypeOf((*Gomerr)(nil)).Elem()

// Build populates the exported fields of g, in declaration order, from the
// provided attributes and attaches a stack captured at the caller of the
// error's constructor function.
func Build(g Gomerr, attributes ...any) Gomerr {
	fill(reflect.ValueOf(g).Elem(), attributes, newBase(g, 4))
	return g
}

func fill(v reflect.Value, attributes []any, base *gomerr) (consumed int) {
	for i := 0; i < v.NumField(); i++ {
		fv := v.Field(i)
		if !fv.CanSet() || !fv.IsZero() {
			continue
		}

		if v.Type().Field(i).Anonymous {
			if gomerrType.AssignableTo(fv.Type()) {
				fv.Set(reflect.ValueOf(base))
				continue
			}

			if fv.Kind() == reflect.Struct {
				consumed += fill(fv, attributes[consumed:], base)
				continue
			}
		}

		if consumed < len(attributes) {
			av := reflect.ValueOf(attributes[consumed])
			if av.IsValid() && av.Type().AssignableTo(fv.Type()) {
				fv.Set(av)
			}
			consumed++
		}
	}

	return consumed
}

type gomerr struct {
	self       Gomerr
	wrapped    error
	attributes map[string]any
	stack      []string
}

func newBase(self Gomerr, skip int) *gomerr {
	g := &gomerr{self: self, stack: captureStack(skip)}
	if self == nil {
		g.self = g
	}
	return g
}

func captureStack(skip int) []string {
	pcs := make([]uintptr, 24)
	n := runtime.Callers(skip+1, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		function := frame.Function[strings.LastIndexByte(frame.Function, '/')+1:]
		stack = append(stack, fmt.Sprintf("%s -- %s:%d", function, frame.File, frame.Line))
		if !more {
			break
		}
	}

	return stack
}

func (g *gomerr) Wrap(err error) Gomerr {
	if g.wrapped != nil {
		panic("cannot change wrapped error once set")
	}
	g.wrapped = err

	return g.self
}

func (g *gomerr) Attribute(key string) any {
	return g.attributes[key]
}

func (g *gomerr) AddAttribute(key string, value any) Gomerr {
	if g.attributes == nil {
		g.attributes = make(map[string]any)
	}

	// Repeated keys accumulate rather than overwrite
	if existing, ok := g.attributes[key]; ok {
		if values, isSlice := existing.([]any); isSlice {
			g.attributes[key] = append(values, value)
		} else {
			g.attributes[key] = []any{existing, value}
		}
	} else {
		g.attributes[key] = value
	}

	return g.self
}

func (g *gomerr) AddAttributes(keysAndValues ...any) Gomerr {
	if len(keysAndValues)%2 != 0 {
		return Configuration("AddAttributes() requires an even number of arguments").AddAttribute("Input", keysAndValues)
	}

	for i := 0; i < len(keysAndValues); i += 2 {
		var key string
		switch k := keysAndValues[i].(type) {
		case string:
			key = k
		case fmt.Stringer:
			key = k.String()
		default:
			key = fmt.Sprintf("[%T]%v", k, k)
		}
		g.AddAttribute(key, keysAndValues[i+1])
	}

	return g.self
}

func (g *gomerr) Attributes() map[string]any {
	return g.attributes
}

func (g *gomerr) Stack() []string {
	return g.stack
}

// Is matches on the concrete error type so that errors.Is(err, new(SomeError))
// works without comparing attribute values.
func (g *gomerr) Is(err error) bool {
	return reflect.TypeOf(g.self) == reflect.TypeOf(err)
}

func (g *gomerr) Unwrap() error {
	return g.wrapped
}

func (g *gomerr) ToMap() map[string]any {
	st := reflect.TypeOf(g.self)
	sv := reflect.ValueOf(g.self).Elem()

	m := make(map[string]any, sv.NumField()+2)
	m["$.errorType"] = st.String()

	for i := 0; i < sv.NumField(); i++ {
		ft := sv.Type().Field(i)
		if ft.Anonymous || unicode.IsLower([]rune(ft.Name)[0]) {
			continue
		}

		key := ft.Name
		value := sv.Field(i).Interface()
		if ft.Tag.Get("gomerr") == "include_type" {
			key += " (" + sv.Field(i).Type().String() + ")"
		}
		if s, ok := value.(fmt.Stringer); ok {
			value = s.String()
		}
		m[key] = value
	}

	if len(g.attributes) > 0 {
		m["_attributes"] = g.attributes
	}

	switch wrapped := g.wrapped.(type) {
	case nil:
		m["_stack"] = g.stack
	case Gomerr:
		m["_wrapped"] = wrapped.ToMap()
	default:
		m["_wrapped"] = map[string]any{
			"$.errorType":  reflect.TypeOf(wrapped).String(),
			"_errorString": wrapped.Error(),
			"_stack":       g.stack,
		}
	}

	return m
}

func (g *gomerr) Error() string {
	return g.render(json.Marshal)
}

func (g *gomerr) String() string {
	return g.render(func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	})
}

func (g *gomerr) render(marshal func(any) ([]byte, error)) string {
	b, err := marshal(g.self.ToMap())
	if err != nil {
		return "Failed to create gomerr string representation: " + err.Error()
	}
	return string(b)
}

// ErrorAs returns the first error in err's chain that is a T, or the zero T.
func ErrorAs[T error](err error) T {
	var target T
	if errors.As(err, &target) {
		return target
	}
	var zero T
	return zero
}
