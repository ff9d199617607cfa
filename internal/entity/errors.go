package entity

import "fmt"

// RefError reports a Ref that does not resolve within its own model.
type RefError struct {
	From   ID // the record containing the dangling reference
	Target ID // the id it points at
}

func (e RefError) Error() string {
	return fmt.Sprintf("ref error: #%d references #%d, which is not present in the model", e.From, e.Target)
}
