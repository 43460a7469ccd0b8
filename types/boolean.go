package types

// Boolean is a nullable, tri-state, logical boolean. The zero value is null.
type Boolean struct {
	value bool
	valid bool
}

var (
	True        = Boolean{value: true, valid: true}
	False       = Boolean{value: false, valid: true}
	NullBoolean = Boolean{}
)

// Storage codes for Boolean.
const (
	NullBooleanAsByte  int8 = NullByte
	FalseBooleanAsByte int8 = 0
	TrueBooleanAsByte  int8 = 1
)

func BooleanOf(b bool) Boolean {
	if b {
		return True
	}
	return False
}

func (b Boolean) IsNull() bool { return !b.valid }

// Bool returns the value and whether it is non null.
func (b Boolean) Bool() (bool, bool) { return b.value, b.valid }

func (b Boolean) String() string {
	switch {
	case !b.valid:
		return "null"
	case b.value:
		return "true"
	}
	return "false"
}

func BooleanAsByte(b Boolean) int8 {
	switch {
	case !b.valid:
		return NullBooleanAsByte
	case b.value:
		return TrueBooleanAsByte
	}
	return FalseBooleanAsByte
}

// ByteAsBoolean decodes a boolean storage code. Any code other than the null
// and false codes is true.
func ByteAsBoolean(code int8) Boolean {
	switch code {
	case NullBooleanAsByte:
		return NullBoolean
	case FalseBooleanAsByte:
		return False
	}
	return True
}
