package wire_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/stretchr/testify/require"
)

func TestEncodeBodyLayout(t *testing.T) {
	var payer util.HexAddress
	copy(payer[:], bytes.Repeat([]byte{0x01}, 32))
	var credential wire.Credential
	copy(credential[:], bytes.Repeat([]byte{0x02}, 32))

	body := wire.EncodeBody(payer, credential)
	require.Len(t, body, wire.BodyLength)
	require.Equal(t, payer[:], body[:32])
	require.Equal(t, credential[:], body[32:])

	decoded, err := wire.DecodeBody(body)
	require.NoError(t, err)
	require.Equal(t, payer, decoded.Payer)
	require.Equal(t, credential, decoded.Credential)
	require.Equal(t, body, decoded.Bytes())
}

func TestDecodeBodyRejectsWrongLength(t *testing.T) {
	for _, size := range []int{0, 1, 32, 63, 65, 128} {
		_, err := wire.DecodeBody(make([]byte, size))
		require.ErrorIs(t, err, wire.ErrMalformedBody, "size %d", size)
	}
}

func TestInstructionEncoding(t *testing.T) {
	var credential wire.Credential
	copy(credential[:], bytes.Repeat([]byte{0xaa}, 32))

	msg := wire.RegisterMessage{
		Destination:        69420,
		EmbeddedCredential: credential,
		Recipient:          "0x54b0b39fd02198dfaf116360668610d2a6c28833ed646a589cc54435c80f648d",
	}

	data, err := wire.MarshalInstruction(msg)
	require.NoError(t, err)

	// variant, little endian 69420 (0x00010f2c), credential, length prefix 66
	require.Equal(t, "002c0f0100", hex.EncodeToString(data[:5]))
	require.Equal(t, credential[:], data[5:37])
	require.Equal(t, "42000000", hex.EncodeToString(data[37:41]))
	require.Equal(t, msg.Recipient, string(data[41:]))

	decoded, err := wire.UnmarshalInstruction(data)
	require.NoError(t, err)
	require.Equal(t, msg, decoded)
}

func TestUnmarshalInstructionErrors(t *testing.T) {
	valid, err := wire.MarshalInstruction(wire.RegisterMessage{Destination: 1, Recipient: "abc"})
	require.NoError(t, err)

	testCases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown variant", append([]byte{1}, valid[1:]...)},
		{"truncated header", valid[:10]},
		{"truncated recipient", valid[:len(valid)-1]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
		{"oversized length prefix", append(append([]byte{}, valid[:37]...), 0xff, 0xff, 0xff, 0xff)},
		{"invalid utf-8", append(append([]byte{}, valid[:37]...), 0x01, 0x00, 0x00, 0x00, 0xff)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wire.UnmarshalInstruction(tc.data)
			require.ErrorIs(t, err, wire.ErrInvalidInstruction)
		})
	}
}

func TestMarshalInstructionRejectsWhatUnmarshalRejects(t *testing.T) {
	atLimit := wire.RegisterMessage{Destination: 1, Recipient: strings.Repeat("a", wire.MaxRecipientLength)}
	data, err := wire.MarshalInstruction(atLimit)
	require.NoError(t, err)
	decoded, err := wire.UnmarshalInstruction(data)
	require.NoError(t, err)
	require.Equal(t, atLimit, decoded)

	testCases := []struct {
		name      string
		recipient string
	}{
		{"recipient too long", strings.Repeat("a", wire.MaxRecipientLength+1)},
		{"invalid utf-8", "\xff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := wire.RegisterMessage{Destination: 1, Recipient: tc.recipient}
			_, err := wire.MarshalInstruction(msg)
			require.ErrorIs(t, err, wire.ErrInvalidInstruction)
			require.ErrorIs(t, msg.Validate(), wire.ErrInvalidInstruction)
		})
	}
}

func TestParseCredential(t *testing.T) {
	credential, err := wire.ParseCredential("0x0202020202020202020202020202020202020202020202020202020202020202")
	require.NoError(t, err)
	require.Equal(t, bytes.Repeat([]byte{0x02}, 32), credential.Bytes())

	_, err = wire.ParseCredential("not-a-credential")
	require.Error(t, err)
}
