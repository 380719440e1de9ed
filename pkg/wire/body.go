// Package wire defines the fixed binary formats shared by the originator and
// the registrar: the 64-byte registration body carried inside a Hyperlane
// envelope and the instruction bytes accepted by the originator entrypoint.
package wire

import (
	"errors"
	"fmt"

	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
)

const (
	// CredentialLength is the size of an embedded credential.
	CredentialLength = 32
	// BodyLength is the exact size of a registration body:
	// payer (32 bytes) followed by the embedded credential (32 bytes).
	BodyLength = 32 + CredentialLength
)

var ErrMalformedBody = errors.New("register message body malformed")

// Credential is the opaque 32-byte identifier that gets bound to an address.
type Credential [CredentialLength]byte

// String returns the 0x prefixed hex form of the credential.
func (c Credential) String() string {
	return util.HexAddress(c).String()
}

// Bytes returns the credential as a byte slice.
func (c Credential) Bytes() []byte {
	return c[:]
}

// ParseCredential decodes a hex or base58 credential string.
func ParseCredential(s string) (Credential, error) {
	addr, err := identity.ParseAddress(s)
	if err != nil {
		return Credential{}, err
	}
	return Credential(addr), nil
}

// Body is the decoded registration payload.
type Body struct {
	Payer      util.HexAddress
	Credential Credential
}

// EncodeBody lays out payer || credential.
func EncodeBody(payer util.HexAddress, credential Credential) []byte {
	body := make([]byte, 0, BodyLength)
	body = append(body, payer[:]...)
	body = append(body, credential[:]...)
	return body
}

// Bytes is a shorthand for EncodeBody.
func (b Body) Bytes() []byte {
	return EncodeBody(b.Payer, b.Credential)
}

// DecodeBody splits a registration body. Bodies that are not exactly
// BodyLength bytes are rejected, including ones with trailing data.
func DecodeBody(body []byte) (Body, error) {
	if len(body) != BodyLength {
		return Body{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedBody, BodyLength, len(body))
	}

	var decoded Body
	copy(decoded.Payer[:], body[:32])
	copy(decoded.Credential[:], body[32:BodyLength])
	return decoded, nil
}
