package tuples

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-livetable/types"
	"github.com/fxamacker/cbor/v2"
)

// MaxArity is the widest composite key supported.
const MaxArity = 3

// ExternalKey is a composite key in logical form. It is comparable, so it
// can be used directly as a map key, and ordered field by field.
type ExternalKey struct {
	n      int
	fields [MaxArity]types.Value
}

// NewExternalKey builds a key from between two and MaxArity values. Object
// values must be comparable.
func NewExternalKey(values ...types.Value) (ExternalKey, error) {
	if len(values) < 2 || len(values) > MaxArity {
		return ExternalKey{}, fmt.Errorf("%w: %d", ErrArity, len(values))
	}
	return newExternalKey(values...), nil
}

func newExternalKey(values ...types.Value) ExternalKey {
	k := ExternalKey{n: len(values)}
	copy(k.fields[:], values)
	return k
}

func (k ExternalKey) Len() int { return k.n }

func (k ExternalKey) Field(i int) (types.Value, error) {
	if i < 0 || i >= k.n {
		return types.Value{}, indexError(i, k.n)
	}
	return k.fields[i], nil
}

func (k ExternalKey) Values() []types.Value {
	return append([]types.Value(nil), k.fields[:k.n]...)
}

// Compare orders keys field by field. A key that is a prefix of another
// sorts first.
func (k ExternalKey) Compare(o ExternalKey) int {
	n := min(k.n, o.n)
	for i := 0; i < n; i++ {
		if c := k.fields[i].Compare(o.fields[i]); c != 0 {
			return c
		}
	}
	switch {
	case k.n < o.n:
		return -1
	case k.n > o.n:
		return 1
	}
	return 0
}

func (k ExternalKey) String() string {
	parts := make([]string, k.n)
	for i, v := range k.fields[:k.n] {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalCBOR encodes the key as an array of its values.
func (k ExternalKey) MarshalCBOR() ([]byte, error) {
	return types.EncMode().Marshal(k.fields[:k.n])
}

func (k *ExternalKey) UnmarshalCBOR(data []byte) error {
	var values []types.Value
	if err := cbor.Unmarshal(data, &values); err != nil {
		return err
	}
	key, err := NewExternalKey(values...)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// Bytes returns the deterministic encoding of the key. Equal keys encode to
// equal bytes.
func (k ExternalKey) Bytes() ([]byte, error) {
	return k.MarshalCBOR()
}
