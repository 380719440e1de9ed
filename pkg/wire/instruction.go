package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// InstructionSendRegister is the only instruction variant the originator
// entrypoint understands.
const InstructionSendRegister uint8 = 0

// MaxRecipientLength bounds the textual recipient so a malformed length
// prefix cannot trigger a large allocation.
const MaxRecipientLength = 256

var ErrInvalidInstruction = errors.New("invalid instruction data")

// RegisterMessage is the caller supplied request to bind a credential.
type RegisterMessage struct {
	// Destination is the Hyperlane domain of the ledger holding the binding.
	Destination uint32
	// EmbeddedCredential is the credential to bind on the destination.
	EmbeddedCredential Credential
	// Recipient is the destination recipient, hex or base58 encoded.
	Recipient string
}

// Validate checks the recipient bounds UnmarshalInstruction enforces.
func (msg RegisterMessage) Validate() error {
	if len(msg.Recipient) > MaxRecipientLength {
		return fmt.Errorf("%w: recipient length %d exceeds %d", ErrInvalidInstruction, len(msg.Recipient), MaxRecipientLength)
	}
	if !utf8.ValidString(msg.Recipient) {
		return fmt.Errorf("%w: recipient is not valid utf-8", ErrInvalidInstruction)
	}
	return nil
}

// MarshalInstruction encodes a SendRegister instruction:
//
//	u8 variant | u32 LE destination | [32]byte credential | u32 LE len | recipient
//
// Messages UnmarshalInstruction would reject are not encoded.
func MarshalInstruction(msg RegisterMessage) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+4+CredentialLength+4+len(msg.Recipient))
	out = append(out, InstructionSendRegister)
	out = binary.LittleEndian.AppendUint32(out, msg.Destination)
	out = append(out, msg.EmbeddedCredential[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(msg.Recipient)))
	out = append(out, msg.Recipient...)
	return out, nil
}

// UnmarshalInstruction decodes instruction bytes produced by
// MarshalInstruction. Unknown variants, truncated input and trailing bytes
// are all rejected.
func UnmarshalInstruction(data []byte) (RegisterMessage, error) {
	if len(data) == 0 {
		return RegisterMessage{}, fmt.Errorf("%w: empty", ErrInvalidInstruction)
	}
	if data[0] != InstructionSendRegister {
		return RegisterMessage{}, fmt.Errorf("%w: unknown variant %d", ErrInvalidInstruction, data[0])
	}
	data = data[1:]

	const fixed = 4 + CredentialLength + 4
	if len(data) < fixed {
		return RegisterMessage{}, fmt.Errorf("%w: truncated, got %d bytes", ErrInvalidInstruction, len(data))
	}

	var msg RegisterMessage
	msg.Destination = binary.LittleEndian.Uint32(data[:4])
	copy(msg.EmbeddedCredential[:], data[4:4+CredentialLength])

	recipientLen := binary.LittleEndian.Uint32(data[4+CredentialLength : fixed])
	if recipientLen > MaxRecipientLength {
		return RegisterMessage{}, fmt.Errorf("%w: recipient length %d exceeds %d", ErrInvalidInstruction, recipientLen, MaxRecipientLength)
	}

	rest := data[fixed:]
	if uint32(len(rest)) != recipientLen {
		return RegisterMessage{}, fmt.Errorf("%w: recipient length %d, %d bytes remaining", ErrInvalidInstruction, recipientLen, len(rest))
	}
	if !utf8.Valid(rest) {
		return RegisterMessage{}, fmt.Errorf("%w: recipient is not valid utf-8", ErrInvalidInstruction)
	}
	msg.Recipient = string(rest)

	return msg, nil
}
