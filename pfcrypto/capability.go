// Package pfcrypto defines the small capability interface picofeed
// consumes for randomness, key generation, signing, and verification,
// plus a default implementation backed by crypto/ed25519.
//
// The core block and feed packages never call crypto/ed25519 directly;
// they take a Capability so the signing primitive stays a pluggable
// external collaborator.
package pfcrypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
)

// KeySize is the size in bytes of a public key and of the seed half of a Keypair.
const KeySize = ed25519.PublicKeySize // 32

// SignatureSize is the size in bytes of a signature.
const SignatureSize = ed25519.SignatureSize // 64

// Keypair holds a 32-byte seed followed by the 32-byte public key it
// derives, kept together so the public key can be read without
// recomputing it.
type Keypair struct {
	Seed   [KeySize]byte
	Public [KeySize]byte
}

// Capability is the external crypto collaborator the core consumes:
// randomness, key derivation, signing, and verification over
// Ed25519-compatible 32-byte keys and 64-byte signatures.
type Capability interface {
	// Random fills buf with cryptographically random bytes.
	Random(buf []byte) error

	// Keypair derives a fresh keypair from a new random seed.
	Keypair() (Keypair, error)

	// Sign signs msg with pair, returning a 64-byte signature.
	Sign(pair Keypair, msg []byte) ([SignatureSize]byte, error)

	// Verify reports whether sig is a valid signature over msg by pub.
	Verify(pub [KeySize]byte, msg []byte, sig [SignatureSize]byte) bool
}

// Ed25519Capability is the default Capability, backed by the standard
// library's crypto/ed25519 and crypto/rand.
//
// No third-party Ed25519 implementation appears anywhere in the
// reference corpus this module was built against; crypto/ed25519 is
// the ecosystem's canonical primitive for this operation.
type Ed25519Capability struct {
	// Rand is the randomness source; defaults to crypto/rand.Reader when nil.
	Rand io.Reader
}

var _ Capability = Ed25519Capability{}

// NewEd25519Capability returns the default Capability using crypto/rand.Reader.
func NewEd25519Capability() Ed25519Capability {
	return Ed25519Capability{Rand: rand.Reader}
}

func (c Ed25519Capability) reader() io.Reader {
	if c.Rand != nil {
		return c.Rand
	}

	return rand.Reader
}

// Random fills buf with cryptographically random bytes.
func (c Ed25519Capability) Random(buf []byte) error {
	_, err := io.ReadFull(c.reader(), buf)
	return err
}

// Keypair derives a fresh Ed25519 keypair from a random seed.
func (c Ed25519Capability) Keypair() (Keypair, error) {
	var seed [KeySize]byte
	if err := c.Random(seed[:]); err != nil {
		return Keypair{}, err
	}

	priv := ed25519.NewKeyFromSeed(seed[:])
	pub := priv.Public().(ed25519.PublicKey)

	var kp Keypair
	copy(kp.Seed[:], seed[:])
	copy(kp.Public[:], pub)

	return kp, nil
}

// Sign signs msg with pair's private key, derived from its seed.
func (c Ed25519Capability) Sign(pair Keypair, msg []byte) ([SignatureSize]byte, error) {
	priv := ed25519.NewKeyFromSeed(pair.Seed[:])

	var sig [SignatureSize]byte
	copy(sig[:], ed25519.Sign(priv, msg))

	return sig, nil
}

// Verify reports whether sig is a valid Ed25519 signature over msg by pub.
func (c Ed25519Capability) Verify(pub [KeySize]byte, msg []byte, sig [SignatureSize]byte) bool {
	return ed25519.Verify(pub[:], msg, sig[:])
}
