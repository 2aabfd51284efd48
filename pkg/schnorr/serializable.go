package schnorr

import "errors"

// ErrUninitialized is returned when an operation is attempted on a
// zero-value entity that has not been constructed or deserialized yet.
var ErrUninitialized = errors.New("entity is uninitialized")

// Serializable is the capability shared by the three persistent entities:
// writing into and reading from a caller-owned buffer at a given offset.
// Callers know the concrete type; the interface exists to keep the three
// implementations honest about the contract.
type Serializable interface {
	// Serialize writes the entity's wire form into dst at offset.
	Serialize(dst []byte, offset uint) error

	// Deserialize reads the entity's wire form from src at offset. On
	// failure the receiver is left unchanged.
	Deserialize(src []byte, offset uint) error
}

var (
	_ Serializable = (*PrivateKey)(nil)
	_ Serializable = (*PublicKey)(nil)
	_ Serializable = (*Signature)(nil)
)
