package response

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultMessageVersion is assumed when an envelope omits `message-version`.
const DefaultMessageVersion = "1.0.0"

// resourceNotFoundBody is the plain-text body the API returns for unknown identifiers.
var resourceNotFoundBody = []byte("Resource not found")

// Envelope is the outer object of every response.
type Envelope struct {
	Status         string      `json:"status"            yaml:"status"`
	MessageType    MessageType `json:"message-type"      yaml:"message-type"`
	MessageVersion string      `json:"message-version"   yaml:"message-version"`
	Message        Message     `json:"message,omitempty" yaml:"message,omitempty"`
}

// Is reports whether the envelope carries the given message type.
func (e *Envelope) Is(t MessageType) bool {
	return e != nil && e.MessageType == t
}

// IsWork reports whether the envelope carries a single work.
func (e *Envelope) IsWork() bool { return e.Is(MessageTypeWork) }

// IsWorkList reports whether the envelope carries a page of works.
func (e *Envelope) IsWorkList() bool { return e.Is(MessageTypeWorkList) }

// IsValidationFailure reports whether the server rejected the request.
func (e *Envelope) IsValidationFailure() bool { return e.Is(MessageTypeValidationFailure) }

// IsRouteNotFound reports whether the server does not serve the requested path.
func (e *Envelope) IsRouteNotFound() bool { return e.Is(MessageTypeRouteNotFound) }

// rawEnvelope is the shallow form of an envelope. Its fields decode
// independently of the shape of the message.
type rawEnvelope struct {
	Status         string          `json:"status"`
	MessageType    MessageType     `json:"message-type"`
	MessageVersion string          `json:"message-version"`
	Message        json.RawMessage `json:"message"`
}

// IsResourceNotFound reports whether body is the API's plain-text not-found reply.
func IsResourceNotFound(body []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(body), resourceNotFoundBody)
}

// Decode parses a response body. The `message-type` discriminant selects the
// decoder for the embedded message; a message whose shape does not match its
// discriminant yields a *DecodeError. A not-found body yields ErrResourceNotFound
// without any JSON parsing.
func Decode(data []byte) (*Envelope, error) {
	if IsResourceNotFound(data) {
		return nil, ErrResourceNotFound
	}

	var raw rawEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if raw.MessageType == "" {
		return nil, &DecodeError{Err: fmt.Errorf("%w: message-type", ErrMissingField)}
	}

	env := &Envelope{
		Status:         raw.Status,
		MessageType:    raw.MessageType,
		MessageVersion: raw.MessageVersion,
	}

	if env.MessageVersion == "" {
		env.MessageVersion = DefaultMessageVersion
	}

	if raw.MessageType != MessageTypeRouteNotFound && isAbsent(raw.Message) {
		return env, nil
	}

	decode, ok := decoders[raw.MessageType]
	if !ok {
		return nil, &DecodeError{MessageType: raw.MessageType, Err: ErrNoDecoder}
	}

	msg, err := decode(raw.Message)
	if err != nil {
		return nil, &DecodeError{MessageType: raw.MessageType, Err: err}
	}

	env.Message = msg

	return env, nil
}

// Expect returns the message of env as T, failing with *MissingMessageError
// when there is none and *UnexpectedItemError when it is of another type.
// T must be one of the concrete Message implementations.
func Expect[T Message](env *Envelope) (T, error) {
	var zero T

	want := zero.MessageType()

	if env == nil || env.Message == nil {
		return zero, &MissingMessageError{Expected: want}
	}

	msg, ok := env.Message.(T)
	if !ok {
		return zero, &UnexpectedItemError{Expected: want, Got: env.Message.MessageType()}
	}

	return msg, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
