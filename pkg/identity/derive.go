package identity

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
)

const (
	// MaxSeeds is the maximum number of seeds accepted for a derivation,
	// including the bump.
	MaxSeeds = 16
	// MaxSeedLength bounds the size of a single seed.
	MaxSeedLength = 32

	derivedAddressMarker = "ProgramDerivedAddress"
)

var (
	ErrMaxSeedsExceeded      = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("seed exceeds maximum length")
	ErrInvalidSeeds          = errors.New("derived address lies on the ed25519 curve")
	ErrNoViableBump          = errors.New("unable to find a viable bump seed")
)

// CreateProgramAddress derives a keyless identity owned by programId. The
// result is sha256(seeds || programId || marker) and is only valid when it is
// not a point on the ed25519 curve, so no private key can exist for it.
func CreateProgramAddress(seeds [][]byte, programId util.HexAddress) (util.HexAddress, error) {
	if len(seeds) > MaxSeeds {
		return util.HexAddress{}, fmt.Errorf("%w: %d seeds, max %d", ErrMaxSeedsExceeded, len(seeds), MaxSeeds)
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return util.HexAddress{}, fmt.Errorf("%w: %d bytes, max %d", ErrMaxSeedLengthExceeded, len(seed), MaxSeedLength)
		}
		h.Write(seed)
	}
	h.Write(programId[:])
	h.Write([]byte(derivedAddressMarker))

	var addr util.HexAddress
	copy(addr[:], h.Sum(nil))

	if IsOnCurve(addr) {
		return util.HexAddress{}, ErrInvalidSeeds
	}

	return addr, nil
}

// FindProgramAddress searches bump seeds from 255 down to 0 and returns the
// first off-curve derivation together with the bump that produced it.
func FindProgramAddress(seeds [][]byte, programId util.HexAddress) (util.HexAddress, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}

		addr, err := CreateProgramAddress(withBump, programId)
		if errors.Is(err, ErrInvalidSeeds) {
			continue
		}
		if err != nil {
			return util.HexAddress{}, 0, err
		}
		return addr, uint8(bump), nil
	}

	return util.HexAddress{}, 0, ErrNoViableBump
}

// IsOnCurve reports whether the identity decodes as a compressed ed25519
// point, i.e. whether it could be a public key.
func IsOnCurve(addr util.HexAddress) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}
