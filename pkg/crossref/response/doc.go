// Package response decodes the envelopes returned by the Crossref REST API.
//
// Every body is an Envelope whose `message-type` field selects the shape of
// its message. Decode dispatches on that discriminant and fails with a
// *DecodeError when the message does not have the announced shape. Expect
// narrows the decoded message to a concrete type:
//
//	env, err := response.Decode(body)
//	if err != nil { return err }
//
//	work, err := response.Expect[*response.Work](env)
package response
