package gomerr

import "reflect"

type BatchError struct {
	Gomerr
	errors []Gomerr
}

// Batch collects the non-nil errors. It returns nil if there are none and the
// lone error itself if there is exactly one.
func Batch(errors ...Gomerr) Gomerr {
	var nonNil []Gomerr
	for _, ge := range errors {
		if ge != nil {
			nonNil = append(nonNil, ge)
		}
	}

	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		b := Build(new(BatchError)).(*BatchError)
		b.errors = nonNil
		return b
	}
}

func (b *BatchError) Errors() []Gomerr {
	return b.errors
}

var batchTypeString = reflect.TypeOf((*BatchError)(nil)).String()

func (b *BatchError) ToMap() map[string]any {
	errors := make([]map[string]any, len(b.errors))
	for i, ge := range b.errors {
		errors[i] = ge.ToMap()
	}

	m := map[string]any{
		"$.errorType": batchTypeString,
		"Errors":      errors,
	}
	if attributes := b.Attributes(); len(attributes) > 0 {
		m["_attributes"] = attributes
	}

	return m
}
