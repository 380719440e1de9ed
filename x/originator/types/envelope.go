package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections/codec"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/wire"
)

// Envelope records a registration the originator dispatched. It is keyed by
// the dispatched message account so a unique message account can only ever
// be used once.
type Envelope struct {
	MessageId         string `json:"message_id"`
	DispatchedMessage string `json:"dispatched_message"`
	UniqueMessage     string `json:"unique_message"`
	Payer             string `json:"payer"`
	Credential        string `json:"credential"`
	Destination       uint32 `json:"destination"`
	Recipient         string `json:"recipient"`
}

// NewEnvelope builds an envelope record from resolved values.
func NewEnvelope(messageId util.HexAddress, accounts Accounts, credential wire.Credential, destination uint32, recipient util.HexAddress) Envelope {
	return Envelope{
		MessageId:         messageId.String(),
		DispatchedMessage: accounts.DispatchedMessage.String(),
		UniqueMessage:     accounts.UniqueMessage.String(),
		Payer:             accounts.Payer.String(),
		Credential:        credential.String(),
		Destination:       destination,
		Recipient:         recipient.String(),
	}
}

// Validate checks every identity in the envelope decodes to 32 bytes. Fields
// are checked in declaration order and the first failure is reported.
func (e Envelope) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"message_id", e.MessageId},
		{"dispatched_message", e.DispatchedMessage},
		{"unique_message", e.UniqueMessage},
		{"payer", e.Payer},
		{"credential", e.Credential},
		{"recipient", e.Recipient},
	}
	for _, f := range fields {
		if _, err := identity.ParseAddress(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// DispatchedMessageKey returns the store key of the envelope.
func (e Envelope) DispatchedMessageKey() ([]byte, error) {
	addr, err := identity.ParseAddress(e.DispatchedMessage)
	if err != nil {
		return nil, err
	}
	return addr.Bytes(), nil
}

// EnvelopeValueCodec stores envelopes as JSON.
var EnvelopeValueCodec codec.ValueCodec[Envelope] = jsonValueCodec[Envelope]{}

type jsonValueCodec[T any] struct{}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (jsonValueCodec[T]) ValueType() string {
	var zero T
	return fmt.Sprintf("json(%T)", zero)
}
