package gomerr

type BadValueType string

const (
	InvalidValueType   BadValueType = "Invalid"
	MalformedValueType BadValueType = "Malformed"

	ReasonAttributeKey = "Reason"
	ValidAttributeKey  = "Valid"
)

type BadValueError struct {
	Gomerr
	Type  BadValueType
	Name  string
	Value any `gomerr:"include_type"`
}

// InvalidValue reports a well-formed value that is not one of the accepted
// ones. valid describes what would have been accepted.
func InvalidValue(name string, value, valid any) *BadValueError {
	return Build(new(BadValueError), InvalidValueType, name, value).AddAttribute(ValidAttributeKey, valid).(*BadValueError)
}

func MalformedValue(name string, value any) *BadValueError {
	return Build(new(BadValueError), MalformedValueType, name, value).(*BadValueError)
}

func (bve *BadValueError) WithReason(reason string) *BadValueError {
	bve.AddAttribute(ReasonAttributeKey, reason)
	return bve
}
