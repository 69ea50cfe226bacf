package types

// The tagged representation of erased values. The code generator and
// this library share the layout - the tag is set where the value is
// materialized and is never inferred from the payload after the fact.

import (
	"github.com/Velocidex/ordereddict"

	"github.com/serval-lang/erased/utils"
)

// Kind discriminates which payload field of a Value is live.
type Kind uint8

const (
	// The zero Kind, so a zero Value is a well formed absent value.
	KindNone Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStr
	KindList
	KindDict
	KindTuple
)

func (self Kind) String() string {
	switch self {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// IsValid reports whether the tag is inside the defined variant
// set. Anything else is a code generation or corruption bug.
func (self Kind) IsValid() bool {
	return self <= KindTuple
}

// Value is a tagged erased value. Readers must check Tag before
// touching any payload field - only the field selected by the tag is
// meaningful. Use the constructors below; they are the only paths
// that establish the tag/payload invariant.
type Value struct {
	Tag Kind

	// The ownership mode of the Bytes payload, fixed at
	// construction. Borrowed text aliases caller owned memory
	// which must outlive the value; owned text was copied in.
	Borrowed bool

	Int   int64
	Float float64
	Bool  bool
	Bytes []byte
	List  *Sequence
	Dict  *ordereddict.Dict
	Tuple *Sequence
}

// None returns the absent value.
func None() Value {
	return Value{}
}

func NewInt(v int64) Value {
	return Value{Tag: KindInt, Int: v}
}

func NewFloat(v float64) Value {
	return Value{Tag: KindFloat, Float: v}
}

func NewBool(v bool) Value {
	return Value{Tag: KindBool, Bool: v}
}

// NewStr copies the text in - the value owns its bytes.
func NewStr(s string) Value {
	return Value{Tag: KindStr, Bytes: []byte(s)}
}

// BorrowStr aliases b without copying. The caller keeps ownership
// and must keep b alive and unmodified for the value's lifetime.
func BorrowStr(b []byte) Value {
	return Value{Tag: KindStr, Borrowed: true, Bytes: b}
}

// NewStrUTF16 builds an owned text value from a UTF-16 little endian
// payload, as handed over by wide host APIs.
func NewStrUTF16(b []byte) (Value, error) {
	decoded, err := utils.DecodeUTF16(b)
	if err != nil {
		return Value{}, err
	}
	return NewStr(decoded), nil
}

func NewList(seq *Sequence) Value {
	return Value{Tag: KindList, List: seq}
}

// NewDict wraps an insertion ordered dict whose cells must hold
// Value. A cell holding anything else fails formatting with
// ErrInvariantViolation.
func NewDict(dict *ordereddict.Dict) Value {
	return Value{Tag: KindDict, Dict: dict}
}

func NewTuple(seq *Sequence) Value {
	return Value{Tag: KindTuple, Tuple: seq}
}

// IsNone reports whether the value is absent. A nil reference counts
// as absent - absence is a legitimate value, never an error.
func (self *Value) IsNone() bool {
	return self == nil || self.Tag == KindNone
}
