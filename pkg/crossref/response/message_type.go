package response

import (
	"encoding/json"
	"fmt"
	"slices"
)

// MessageType is the discriminant carried in the `message-type` field of every
// envelope. It selects the shape of the embedded message.
type MessageType string

// Message types returned by the API.
const (
	MessageTypeWorkAgency        MessageType = "work-agency"
	MessageTypeFunder            MessageType = "funder"
	MessageTypePrefix            MessageType = "prefix"
	MessageTypeMember            MessageType = "member"
	MessageTypeWork              MessageType = "work"
	MessageTypeWorkList          MessageType = "work-list"
	MessageTypeFunderList        MessageType = "funder-list"
	MessageTypeType              MessageType = "type"
	MessageTypeTypeList          MessageType = "type-list"
	MessageTypeMemberList        MessageType = "member-list"
	MessageTypeJournal           MessageType = "journal"
	MessageTypeJournalList       MessageType = "journal-list"
	MessageTypeValidationFailure MessageType = "validation-failure"
	MessageTypeRouteNotFound     MessageType = "route-not-found"
)

// MessageTypes lists every discriminant the decoder understands.
func MessageTypes() []MessageType {
	return []MessageType{
		MessageTypeWorkAgency,
		MessageTypeFunder,
		MessageTypePrefix,
		MessageTypeMember,
		MessageTypeWork,
		MessageTypeWorkList,
		MessageTypeFunderList,
		MessageTypeType,
		MessageTypeTypeList,
		MessageTypeMemberList,
		MessageTypeJournal,
		MessageTypeJournalList,
		MessageTypeValidationFailure,
		MessageTypeRouteNotFound,
	}
}

// ParseMessageType resolves a wire discriminant.
func ParseMessageType(s string) (MessageType, error) {
	t := MessageType(s)
	if !slices.Contains(MessageTypes(), t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMessageType, s)
	}

	return t, nil
}

// String implements fmt.Stringer.
func (t MessageType) String() string {
	return string(t)
}

// UnmarshalJSON rejects discriminants outside the known set.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parsing message type: %w", err)
	}

	parsed, err := ParseMessageType(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
