package limit

import (
	"reflect"

	"github.com/jt0/quantity/gomerr"
)

type ExceededError struct {
	gomerr.Gomerr
	Limited   string
	Limit     Amount
	Current   Amount
	Attempted Amount
}

func Exceeded(limited Limited, limit, current, attempted Amount) *ExceededError {
	return gomerr.Build(new(ExceededError), limitedName(limited), limit, current, attempted).(*ExceededError)
}

func UnquantifiedExcess(limited Limited) *ExceededError {
	return gomerr.Build(new(ExceededError), limitedName(limited), Unknown, Unknown, Unknown).(*ExceededError)
}

func limitedName(limited Limited) string {
	if limited == nil {
		return "<nil>"
	}
	return unqualifiedTypeName(reflect.TypeOf(limited))
}
