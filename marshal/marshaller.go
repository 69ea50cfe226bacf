// Package marshal is the wire layout contract between the code
// generator and the formatting runtime. Values cross the boundary as
// a versioned msgpack envelope; the decoder validates the version and
// every tag instead of assuming the two sides agree.
package marshal

import (
	"github.com/Velocidex/ordereddict"
	errors "github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/serval-lang/erased/types"
)

// LayoutVersion pins the wire layout. Both sides must be built
// against the same version; a mismatch is rejected at decode time.
const LayoutVersion = 1

type wireEnvelope struct {
	Version int        `msgpack:"v"`
	Value   *wireValue `msgpack:"d"`
}

type wireValue struct {
	Tag   uint8   `msgpack:"t"`
	Int   int64   `msgpack:"i,omitempty"`
	Float float64 `msgpack:"f,omitempty"`
	Bool  bool    `msgpack:"b,omitempty"`
	Bytes []byte  `msgpack:"s,omitempty"`

	// Container payloads. Nil marks an absent container, which is
	// distinct from an empty one.
	Nil   bool         `msgpack:"n,omitempty"`
	Items []*wireValue `msgpack:"l,omitempty"`
	Keys  []string     `msgpack:"k,omitempty"`
	Cells []*wireValue `msgpack:"c,omitempty"`
}

// Marshal encodes a tagged value for the generator/runtime
// boundary. A nil value encodes the absent case. Encoding a value
// with a malformed tag fails with types.ErrInvariantViolation.
func Marshal(value *types.Value) ([]byte, error) {
	wire, err := toWire(value)
	if err != nil {
		return nil, err
	}

	return msgpack.Marshal(&wireEnvelope{
		Version: LayoutVersion,
		Value:   wire,
	})
}

// Unmarshal decodes a wire payload produced by Marshal (or by the
// code generator's twin encoder). Unknown tags and inconsistent
// payloads fail with types.ErrInvariantViolation; a layout version
// mismatch is its own error since it is a build problem, not
// corruption.
func Unmarshal(data []byte) (*types.Value, error) {
	envelope := &wireEnvelope{}
	err := msgpack.Unmarshal(data, envelope)
	if err != nil {
		return nil, errors.Wrap(err, "decoding value envelope")
	}

	if envelope.Version != LayoutVersion {
		return nil, errors.Errorf(
			"value layout version mismatch: payload has %d, runtime speaks %d",
			envelope.Version, LayoutVersion)
	}

	return fromWire(envelope.Value)
}

func toWire(value *types.Value) (*wireValue, error) {
	if value == nil {
		return nil, nil
	}

	res := &wireValue{Tag: uint8(value.Tag)}

	switch value.Tag {
	case types.KindNone:

	case types.KindInt:
		res.Int = value.Int

	case types.KindFloat:
		res.Float = value.Float

	case types.KindBool:
		res.Bool = value.Bool

	case types.KindStr:
		res.Bytes = value.Bytes

	case types.KindList, types.KindTuple:
		seq := value.List
		if value.Tag == types.KindTuple {
			seq = value.Tuple
		}
		if seq == nil {
			res.Nil = true
			break
		}
		res.Items = make([]*wireValue, 0, len(seq.Items))
		for idx := range seq.Items {
			item, err := toWire(&seq.Items[idx])
			if err != nil {
				return nil, err
			}
			res.Items = append(res.Items, item)
		}

	case types.KindDict:
		if value.Dict == nil {
			res.Nil = true
			break
		}
		for _, key := range value.Dict.Keys() {
			cell, _ := value.Dict.Get(key)
			cell_value, ok := cell.(types.Value)
			if !ok {
				return nil, types.InvariantViolationf(
					"dict cell %q does not hold a tagged value (%T)",
					key, cell)
			}

			wire_cell, err := toWire(&cell_value)
			if err != nil {
				return nil, err
			}
			res.Keys = append(res.Keys, key)
			res.Cells = append(res.Cells, wire_cell)
		}

	default:
		return nil, types.InvariantViolationf(
			"unknown value tag %d", value.Tag)
	}

	return res, nil
}

func fromWire(wire *wireValue) (*types.Value, error) {
	if wire == nil {
		return nil, nil
	}

	tag := types.Kind(wire.Tag)
	if !tag.IsValid() {
		return nil, types.InvariantViolationf(
			"unknown value tag %d on the wire", wire.Tag)
	}

	switch tag {
	case types.KindNone:
		res := types.None()
		return &res, nil

	case types.KindInt:
		res := types.NewInt(wire.Int)
		return &res, nil

	case types.KindFloat:
		res := types.NewFloat(wire.Float)
		return &res, nil

	case types.KindBool:
		res := types.NewBool(wire.Bool)
		return &res, nil

	case types.KindStr:
		// Decoded text is always owned - the wire buffer is not
		// caller memory anyone else holds on to.
		res := types.Value{Tag: types.KindStr, Bytes: wire.Bytes}
		return &res, nil

	case types.KindList, types.KindTuple:
		var seq *types.Sequence
		if !wire.Nil {
			seq = types.NewSequence(len(wire.Items))
			for _, item := range wire.Items {
				value, err := fromWire(item)
				if err != nil {
					return nil, err
				}
				if value == nil {
					return nil, types.InvariantViolationf(
						"nil element inside a sequence payload")
				}
				seq.Append(*value)
			}
		}
		if tag == types.KindTuple {
			res := types.NewTuple(seq)
			return &res, nil
		}
		res := types.NewList(seq)
		return &res, nil

	case types.KindDict:
		if wire.Nil {
			res := types.NewDict(nil)
			return &res, nil
		}
		if len(wire.Keys) != len(wire.Cells) {
			return nil, types.InvariantViolationf(
				"dict payload has %d keys but %d cells",
				len(wire.Keys), len(wire.Cells))
		}

		dict := ordereddict.NewDict()
		for idx, key := range wire.Keys {
			value, err := fromWire(wire.Cells[idx])
			if err != nil {
				return nil, err
			}
			if value == nil {
				return nil, types.InvariantViolationf(
					"nil cell inside a dict payload")
			}
			dict.Set(key, *value)
		}
		res := types.NewDict(dict)
		return &res, nil
	}

	// Unreachable - the tag was validated above.
	return nil, types.InvariantViolationf("unhandled value tag %d", wire.Tag)
}
