package gomerr

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestErrorAs(t *testing.T) {
	var err error

	err = MalformedValue("unit", "furlongs")
	if got := ErrorAs[*BadValueError](err); got == nil || !reflect.DeepEqual(got, err) {
		t.Errorf("ErrorAs() = %v, want %v", got, err)
	}

	if got := ErrorAs[*BadValueError](Configuration("wrapper").Wrap(err)); got == nil || !reflect.DeepEqual(got, err) {
		t.Errorf("ErrorAs() = %v, want %v", got, err)
	}

	err = errors.New("malformed")
	if got := ErrorAs[*BadValueError](err); got != nil {
		t.Errorf("expected nil, got %v", got)
	}

	if got := ErrorAs[sentinel](Configuration("wrapper").Wrap(ErrSentinel)); !reflect.DeepEqual(got, ErrSentinel) {
		t.Errorf("ErrorAs() = %v, want %v", got, ErrSentinel)
	}
}

type sentinel struct{}

var ErrSentinel error = sentinel{}

func (sentinel) Error() string { return "sentinel" }

func TestBuildAssignsFieldsInOrder(t *testing.T) {
	bve := InvalidValue("unit", 42, "1..8")

	if bve.Type != InvalidValueType || bve.Name != "unit" || bve.Value != 42 {
		t.Fatalf("unexpected fields: %+v", bve)
	}
	if got := bve.Attribute(ValidAttributeKey); got != "1..8" {
		t.Errorf("Attribute(%q) = %v", ValidAttributeKey, got)
	}
	if len(bve.Stack()) == 0 {
		t.Fatal("expected a captured stack")
	}
	if !strings.Contains(bve.Stack()[0], "TestBuildAssignsFieldsInOrder") {
		t.Errorf("stack should start at the caller, got %s", bve.Stack()[0])
	}
}

func TestIsMatchesType(t *testing.T) {
	err := Configuration("wrapper").Wrap(MalformedValue("size", "x"))

	if !errors.Is(err, new(BadValueError)) {
		t.Error("expected wrapped BadValueError to match")
	}
	if errors.Is(err, new(UnmarshalError)) {
		t.Error("did not expect UnmarshalError to match")
	}
}

func TestAddAttributeAccumulates(t *testing.T) {
	ge := Configuration("x").AddAttribute("k", 1).AddAttribute("k", 2).AddAttribute("k", 3)

	if got := ge.Attribute("k"); !reflect.DeepEqual(got, []any{1, 2, 3}) {
		t.Errorf("Attribute() = %v", got)
	}
}

func TestAddAttributesOddCount(t *testing.T) {
	ge := Dependency("DynamoDB", nil).AddAttributes("only-a-key")

	if !errors.Is(ge, new(ConfigurationError)) {
		t.Errorf("expected ConfigurationError, got %T", ge)
	}
}

func TestToMapIncludesTypeAndWrapped(t *testing.T) {
	ge := Unmarshal("DataSize", true, "target").Wrap(errors.New("bad input"))

	m := ge.ToMap()
	if m["$.errorType"] != "*gomerr.UnmarshalError" {
		t.Errorf("unexpected type: %v", m["$.errorType"])
	}
	if m["Data (interface {})"] != true {
		t.Errorf("include_type key missing: %v", m)
	}
	wrapped, ok := m["_wrapped"].(map[string]any)
	if !ok || wrapped["_errorString"] != "bad input" {
		t.Errorf("unexpected wrapped: %v", m["_wrapped"])
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(ge.Error()), &decoded); err != nil {
		t.Fatalf("Error() is not JSON: %v", err)
	}
}

func TestBatch(t *testing.T) {
	if Batch(nil, nil) != nil {
		t.Error("expected nil batch")
	}

	single := Configuration("one")
	if Batch(nil, single) != single {
		t.Error("expected the lone error back")
	}

	b, ok := Batch(Configuration("one"), Configuration("two")).(*BatchError)
	if !ok || len(b.Errors()) != 2 {
		t.Fatalf("unexpected batch: %v", b)
	}
	if errs, _ := b.ToMap()["Errors"].([]map[string]any); len(errs) != 2 {
		t.Errorf("unexpected map: %v", b.ToMap())
	}
}
