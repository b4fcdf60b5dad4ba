package response

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrMissingField       = errors.New("missing required field")
	ErrNoDecoder          = errors.New("no decoder registered for message type")
)

// DecodeError reports a body that is not valid JSON or whose message does not
// match the shape selected by its discriminant.
type DecodeError struct {
	MessageType MessageType
	Err         error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.MessageType == "" {
		return fmt.Sprintf("decoding envelope: %v", e.Err)
	}

	return fmt.Sprintf("decoding %s message: %v", e.MessageType, e.Err)
}

// Unwrap returns the parser error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MissingMessageError reports an envelope that carries no message where one was expected.
type MissingMessageError struct {
	Expected MessageType
}

// Error implements the error interface.
func (e *MissingMessageError) Error() string {
	return fmt.Sprintf("expected a %s message but the envelope carried none", e.Expected)
}

// UnexpectedItemError reports an envelope whose message is of another type
// than the one requested.
type UnexpectedItemError struct {
	Expected MessageType
	Got      MessageType
}

// Error implements the error interface.
func (e *UnexpectedItemError) Error() string {
	return fmt.Sprintf("expected a %s message, got %s", e.Expected, e.Got)
}
