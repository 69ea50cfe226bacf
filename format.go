// Package erased renders tagged erased values into their canonical
// text form. It is the formatting half of the contract between the
// code generator and the runtime: the generator materializes every
// dynamically typed slot as a tagged types.Value, and this package
// turns such a value - or a sequence of them - into an owned string.
//
// Formatting is a pure read. It never mutates or retains its input,
// takes no locks, and allocates only the returned string, so
// concurrent calls on inputs that nobody is mutating need no
// coordination.
package erased

import (
	"strconv"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/serval-lang/erased/types"
	"github.com/serval-lang/erased/utils"
)

// Format renders a single erased value. A nil reference is the
// legitimate absent case and renders as None. A tag outside the
// defined variant set fails with types.ErrInvariantViolation - a
// value whose type can not be established from its tag is a bug
// upstream, never something to guess at.
func Format(value *types.Value) (string, error) {
	buf := &strings.Builder{}
	err := writeValue(buf, value)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatSequence renders a sequence of erased values as a bracketed,
// comma separated list, delegating each element to Format's
// renderer. A nil sequence renders as None, an empty one as [].
func FormatSequence(seq *types.Sequence) (string, error) {
	buf := &strings.Builder{}
	err := writeSequence(buf, seq)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeValue(buf *strings.Builder, value *types.Value) error {
	if value == nil {
		buf.WriteString("None")
		return nil
	}

	switch value.Tag {
	case types.KindNone:
		buf.WriteString("None")

	case types.KindInt:
		buf.WriteString(strconv.FormatInt(value.Int, 10))

	case types.KindFloat:
		buf.WriteString(utils.FormatFloat(value.Float))

	case types.KindBool:
		if value.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case types.KindStr:
		buf.WriteString(utils.Quote(value.Bytes))

	case types.KindList:
		return writeSequence(buf, value.List)

	case types.KindDict:
		return writeDict(buf, value.Dict)

	case types.KindTuple:
		return writeTuple(buf, value.Tuple)

	default:
		return types.InvariantViolationf(
			"unknown value tag %d", value.Tag)
	}

	return nil
}

func writeSequence(buf *strings.Builder, seq *types.Sequence) error {
	if seq == nil {
		buf.WriteString("None")
		return nil
	}

	buf.WriteString("[")
	for idx := range seq.Items {
		if idx > 0 {
			buf.WriteString(", ")
		}

		err := writeValue(buf, &seq.Items[idx])
		if err != nil {
			return err
		}
	}
	buf.WriteString("]")

	return nil
}

// Tuples render in parens with the trailing comma disambiguating a
// one element tuple from a parenthesized value.
func writeTuple(buf *strings.Builder, seq *types.Sequence) error {
	if seq == nil {
		buf.WriteString("None")
		return nil
	}

	buf.WriteString("(")
	for idx := range seq.Items {
		if idx > 0 {
			buf.WriteString(", ")
		}

		err := writeValue(buf, &seq.Items[idx])
		if err != nil {
			return err
		}
	}
	if len(seq.Items) == 1 {
		buf.WriteString(",")
	}
	buf.WriteString(")")

	return nil
}

func writeDict(buf *strings.Builder, dict *ordereddict.Dict) error {
	if dict == nil {
		buf.WriteString("None")
		return nil
	}

	buf.WriteString("{")
	for idx, key := range dict.Keys() {
		if idx > 0 {
			buf.WriteString(", ")
		}

		buf.WriteString(utils.Quote([]byte(key)))
		buf.WriteString(": ")

		cell, _ := dict.Get(key)
		value, ok := cell.(types.Value)
		if !ok {
			return types.InvariantViolationf(
				"dict cell %q does not hold a tagged value (%T)",
				key, cell)
		}

		err := writeValue(buf, &value)
		if err != nil {
			return err
		}
	}
	buf.WriteString("}")

	return nil
}
