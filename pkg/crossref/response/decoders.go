package response

import (
	"encoding/json"
	"fmt"
)

type decodeFunc func(raw json.RawMessage) (Message, error)

// decoders maps every discriminant to the decoder of its message shape.
// Decode fails loudly for a discriminant missing from this table.
var decoders = map[MessageType]decodeFunc{
	MessageTypeWorkAgency:        record[WorkAgency](workAgencyRequired),
	MessageTypeFunder:            record[Funder](funderRequired),
	MessageTypePrefix:            record[Prefix](prefixRequired),
	MessageTypeMember:            record[Member](memberRequired),
	MessageTypeWork:              record[Work](workRequired),
	MessageTypeType:              record[WorkType](workTypeRequired),
	MessageTypeJournal:           record[Journal](journalRequired),
	MessageTypeWorkList:          decodeWorkList,
	MessageTypeFunderList:        list(funderRequired, func(m ListMeta, items []Funder) Message { return &FunderList{m, items} }),
	MessageTypeMemberList:        list(memberRequired, func(m ListMeta, items []Member) Message { return &MemberList{m, items} }),
	MessageTypeJournalList:       list(journalRequired, func(m ListMeta, items []Journal) Message { return &JournalList{m, items} }),
	MessageTypeTypeList:          list(workTypeRequired, func(m ListMeta, items []WorkType) Message { return &TypeList{m, items} }),
	MessageTypeValidationFailure: decodeValidationFailure,
	MessageTypeRouteNotFound:     decodeRouteNotFound,
}

// record decodes a single object after checking that its required keys are present,
// so that a payload of another shape cannot silently decode into zero values.
func record[T any, PT interface {
	*T
	Message
}](required []string) decodeFunc {
	return func(raw json.RawMessage) (Message, error) {
		v, err := decodeItem[T](raw, required)
		if err != nil {
			return nil, err
		}

		return PT(v), nil
	}
}

func decodeItem[T any](raw json.RawMessage, required []string) (*T, error) {
	if err := requireKeys(raw, required); err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

// listPayload is the intermediate form of every list message.
type listPayload struct {
	Facets       FacetMap          `json:"facets"`
	NextCursor   *string           `json:"next-cursor"`
	TotalResults *int              `json:"total-results"`
	ItemsPerPage *int              `json:"items-per-page"`
	Query        *QueryEcho        `json:"query"`
	Items        []json.RawMessage `json:"items"`
}

func decodeListPayload(raw json.RawMessage) (listPayload, error) {
	var payload listPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}

	if payload.TotalResults == nil {
		return payload, fmt.Errorf("%w: total-results", ErrMissingField)
	}

	if payload.Items == nil {
		return payload, fmt.Errorf("%w: items", ErrMissingField)
	}

	return payload, nil
}

func (p listPayload) meta() ListMeta {
	return ListMeta{
		Facets:       p.Facets,
		TotalResults: *p.TotalResults,
		ItemsPerPage: p.ItemsPerPage,
		Query:        p.Query,
	}
}

func decodeItems[T any](raw []json.RawMessage, required []string) ([]T, error) {
	items := make([]T, 0, len(raw))

	for i, item := range raw {
		v, err := decodeItem[T](item, required)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, *v)
	}

	return items, nil
}

func list[T any](required []string, build func(ListMeta, []T) Message) decodeFunc {
	return func(raw json.RawMessage) (Message, error) {
		payload, err := decodeListPayload(raw)
		if err != nil {
			return nil, err
		}

		items, err := decodeItems[T](payload.Items, required)
		if err != nil {
			return nil, err
		}

		return build(payload.meta(), items), nil
	}
}

func decodeWorkList(raw json.RawMessage) (Message, error) {
	payload, err := decodeListPayload(raw)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems[Work](payload.Items, workRequired)
	if err != nil {
		return nil, err
	}

	return &WorkList{ListMeta: payload.meta(), NextCursor: payload.NextCursor, Items: items}, nil
}

func decodeValidationFailure(raw json.RawMessage) (Message, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	failures, err := decodeItems[Failure](items, failureRequired)
	if err != nil {
		return nil, err
	}

	return ValidationFailure(failures), nil
}

func decodeRouteNotFound(json.RawMessage) (Message, error) {
	return RouteNotFound{}, nil
}

// requireKeys fails unless raw is an object holding every key with a non-null value.
func requireKeys(raw json.RawMessage, keys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}

	if fields == nil {
		return fmt.Errorf("%w: expected an object", ErrMissingField)
	}

	for _, key := range keys {
		if value, ok := fields[key]; !ok || isAbsent(value) {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	return nil
}
