package emit

import (
	"fmt"

	"github.com/pkg/errors"
)

// EmitError wraps an I/O failure on the output stream. The wrapped
// cause carries a stack trace courtesy of github.com/pkg/errors,
// useful once Compose is several layers removed from the failing
// os.File.Write.
type EmitError struct {
	cause error
}

func (e EmitError) Error() string {
	return fmt.Sprintf("emit error: %s", e.cause)
}

func (e EmitError) Unwrap() error { return e.cause }

func wrapIOError(err error, context string) error {
	if err == nil {
		return nil
	}
	return EmitError{cause: errors.Wrap(err, context)}
}
