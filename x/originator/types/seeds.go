package types

import "github.com/bcp-innovations/hyperlane-cosmos/util"

// Seed components of the derived identities involved in a dispatch. The
// dispatch authority is derived under the originator program id, the other
// two under the mailbox.
var (
	dispatchAuthoritySeeds = [][]byte{[]byte("hyperlane_dispatcher"), []byte("-"), []byte("dispatch_authority")}
	outboxSeeds            = [][]byte{[]byte("hyperlane"), []byte("-"), []byte("outbox")}
)

// DispatchAuthoritySeeds returns the seeds of the keyless dispatch authority
// without a bump.
func DispatchAuthoritySeeds() [][]byte {
	return cloneSeeds(dispatchAuthoritySeeds)
}

// DispatchAuthoritySignerSeeds returns the seeds the originator signs the
// outbound dispatch with: the authority seeds followed by the bump.
func DispatchAuthoritySignerSeeds(bump uint8) [][]byte {
	return append(cloneSeeds(dispatchAuthoritySeeds), []byte{bump})
}

// OutboxSeeds returns the seeds of the mailbox outbox account.
func OutboxSeeds() [][]byte {
	return cloneSeeds(outboxSeeds)
}

// DispatchedMessageSeeds returns the seeds of the account the mailbox stores
// a dispatched envelope in, keyed by the caller supplied unique account.
func DispatchedMessageSeeds(uniqueMessage util.HexAddress) [][]byte {
	return [][]byte{
		[]byte("hyperlane"), []byte("-"), []byte("dispatched_message"), []byte("-"),
		uniqueMessage.Bytes(),
	}
}

func cloneSeeds(seeds [][]byte) [][]byte {
	out := make([][]byte, len(seeds))
	copy(out, seeds)
	return out
}
