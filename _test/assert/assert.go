package assert

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/jt0/quantity/gomerr"
)

func Assert(tb testing.TB, condition bool, msgAndArgs ...any) {
	tb.Helper()
	if !condition {
		tb.Fatal("Assert failed. " + message(msgAndArgs))
	}
}

func Success(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("Expected success, but got: %s", errString(err))
	}
}

func Error(tb testing.TB, err error, msgAndArgs ...any) {
	tb.Helper()
	if err == nil {
		tb.Fatal("Expected error to be non-nil. " + message(msgAndArgs))
	}
}

// ErrorType checks that errors.Is(err, target) holds. For a BatchError each
// contained error is checked in turn.
func ErrorType(tb testing.TB, err error, target error, msgAndArgs ...any) {
	tb.Helper()
	if err == nil {
		tb.Fatal("Expected an error. " + message(msgAndArgs))
	}

	if errors.Is(err, target) {
		return
	}

	if be, ok := err.(*gomerr.BatchError); ok {
		for _, ge := range be.Errors() {
			ErrorType(tb, ge, target, msgAndArgs...)
		}
		return
	}

	tb.Fatalf("Wrong error type. Expected 'errors.Is(%T, %T)' to succeed. %s\nReceived: %s", err, target, message(msgAndArgs), errString(err))
}

func Equals(tb testing.TB, expected, actual any, msgAndArgs ...any) {
	tb.Helper()
	if !reflect.DeepEqual(expected, actual) {
		tb.Fatalf("Failed equality check: %s\n\tExpected: %#v\n\tActual:   %#v", message(msgAndArgs), expected, actual)
	}
}

func NotEquals(tb testing.TB, expected, actual any, msgAndArgs ...any) {
	tb.Helper()
	if reflect.DeepEqual(expected, actual) {
		tb.Fatalf("Failed non-equality check: %s\n\tBoth: %#v", message(msgAndArgs), actual)
	}
}

func Panics(tb testing.TB, f func(), msgAndArgs ...any) {
	tb.Helper()
	defer func() {
		if recover() == nil {
			tb.Fatal("Expected a panic. " + message(msgAndArgs))
		}
	}()
	f()
}

func errString(err error) string {
	if ge, ok := err.(gomerr.Gomerr); ok {
		return "\n" + ge.String()
	}
	return err.Error()
}

func message(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	msg, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...)
	}
	return fmt.Sprintf(msg, msgAndArgs[1:]...)
}
