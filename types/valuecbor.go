package types

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// valueWire is the CBOR form of a Value: [kind, bits, object]
type valueWire struct {
	_    struct{} `cbor:",toarray"`
	Kind Kind
	Bits int64
	Ref  any
}

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	// Deterministic encoding makes equal values produce equal bytes.
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// EncMode returns the deterministic CBOR mode used for values, so that
// containers of values encode consistently.
func EncMode() cbor.EncMode { return encMode }

func (v Value) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(valueWire{Kind: v.kind, Bits: v.bits, Ref: v.ref})
}

// UnmarshalCBOR restores a Value. Non object kinds round trip exactly. Object
// payloads decode to their generic CBOR form (strings, int64/uint64, float64,
// bool) and must be comparable.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var w valueWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Kind > maxKind {
		return fmt.Errorf("%w: %d", ErrValueKind, w.Kind)
	}
	if w.Kind != KindObject {
		if w.Ref != nil {
			return fmt.Errorf("%w: %s value carries an object payload", ErrValueKind, w.Kind)
		}
		*v = Value{kind: w.Kind, bits: w.Bits}
		return nil
	}
	if w.Ref != nil && !reflect.TypeOf(w.Ref).Comparable() {
		return fmt.Errorf("%w: object payload %T is not comparable", ErrValueType, w.Ref)
	}
	*v = Value{kind: KindObject, ref: w.Ref}
	return nil
}
