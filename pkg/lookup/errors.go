package lookup

import (
	"errors"
	"fmt"
)

// GenericMessage is shown for every failure that carries no detail text.
const GenericMessage = "Student not found or server error"

// ErrLookupFailed covers transport failures, server errors and unreadable
// responses.
var ErrLookupFailed = errors.New("student lookup failed")

// DetailError is a non-2xx response whose body carried a human readable
// detail string. The detail is surfaced to users verbatim.
type DetailError struct {
	Status int
	Detail string
}

func (e *DetailError) Error() string {
	return fmt.Sprintf("lookup rejected: status=%d detail=%q", e.Status, e.Detail)
}

func (e *DetailError) UserMessage() string {
	return e.Detail
}

type userMessager interface {
	UserMessage() string
}

// UserMessage maps err to the inline text shown to a user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}

	return GenericMessage
}
