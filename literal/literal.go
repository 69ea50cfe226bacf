// Package literal parses the canonical rendered form of erased
// values back into tagged values. The grammar accepts exactly what
// the formatter emits: None, integers, floats, booleans, double
// quoted text, lists, tuples and dicts, arbitrarily nested.
package literal

import (
	"strconv"

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	errors "github.com/pkg/errors"

	"github.com/serval-lang/erased/types"
	"github.com/serval-lang/erased/utils"
)

var (
	literalLexer = lexer.Must(lexer.Regexp(
		`(\s+)` +
			`|(?P<None>\bNone\b)` +
			`|(?P<Bool>\btrue\b|\bfalse\b)` +
			`|(?P<Number>[-+]?(inf|nan|\d*\.?\d+([eE][-+]?\d+)?))` +
			`|(?P<String>"([^"\\]*(\\.[^"\\]*)*)")` +
			`|(?P<Operators>[\[\](){},:])`,
	))

	literalParser = participle.MustBuild(
		&_Literal{},
		participle.Lexer(literalLexer),
	)
)

type _Literal struct {
	None    bool      ` @None`
	Boolean *string   `| @Bool`
	Number  *string   `| @Number`
	String  *string   `| @String`
	List    *_List    `| @@`
	Tuple   *_Tuple   `| @@`
	Dict    *_Dict    `| @@`
}

type _List struct {
	Values []*_Literal `"[" [ @@ { "," @@ } ] "]"`
}

// Tuples carry an optional trailing comma ("(1,)"), so the tail is
// parsed as ", value" groups where only the last may omit the value.
type _Tuple struct {
	First *_Literal     `"(" [ @@`
	Rest  []*_TupleTail `{ @@ } ] ")"`
}

type _TupleTail struct {
	Comma string    `@","`
	Value *_Literal `[ @@ ]`
}

type _DictEntry struct {
	Key   *string   `@String ":"`
	Value *_Literal `@@`
}

type _Dict struct {
	Entries []*_DictEntry `"{" [ @@ { "," @@ } ] "}"`
}

// Parse converts canonical value text into a tagged value.
func Parse(text string) (*types.Value, error) {
	lit := &_Literal{}
	err := literalParser.ParseString(text, lit)
	if err != nil {
		return nil, errors.Wrap(err, "parsing value literal")
	}
	return lit.reduce()
}

func (self *_Literal) reduce() (*types.Value, error) {
	if self.None {
		res := types.None()
		return &res, nil
	}

	if self.Boolean != nil {
		res := types.NewBool(*self.Boolean == "true")
		return &res, nil
	}

	if self.Number != nil {
		// An integer unless it only parses as a float.
		int_value, err := strconv.ParseInt(*self.Number, 10, 64)
		if err == nil {
			res := types.NewInt(int_value)
			return &res, nil
		}

		float_value, err := strconv.ParseFloat(*self.Number, 64)
		if err != nil {
			return nil, errors.Wrapf(
				err, "parsing number %q", *self.Number)
		}
		res := types.NewFloat(float_value)
		return &res, nil
	}

	if self.String != nil {
		decoded, err := utils.Unquote(*self.String)
		if err != nil {
			return nil, err
		}
		res := types.Value{Tag: types.KindStr, Bytes: decoded}
		return &res, nil
	}

	if self.List != nil {
		seq, err := reduceSequence(self.List.Values)
		if err != nil {
			return nil, err
		}
		res := types.NewList(seq)
		return &res, nil
	}

	if self.Tuple != nil {
		values, err := self.Tuple.elements()
		if err != nil {
			return nil, err
		}
		seq, err := reduceSequence(values)
		if err != nil {
			return nil, err
		}
		res := types.NewTuple(seq)
		return &res, nil
	}

	if self.Dict != nil {
		dict := ordereddict.NewDict()
		for _, entry := range self.Dict.Entries {
			key, err := utils.Unquote(*entry.Key)
			if err != nil {
				return nil, err
			}

			value, err := entry.Value.reduce()
			if err != nil {
				return nil, err
			}
			dict.Set(string(key), *value)
		}
		res := types.NewDict(dict)
		return &res, nil
	}

	// The grammar can not produce an empty literal.
	return nil, errors.New("empty value literal")
}

func (self *_Tuple) elements() ([]*_Literal, error) {
	values := []*_Literal{}
	if self.First == nil {
		if len(self.Rest) > 0 {
			return nil, errors.New("tuple starts with a comma")
		}
		return values, nil
	}

	values = append(values, self.First)
	for idx, tail := range self.Rest {
		if tail.Value == nil {
			// Only a trailing comma may leave the value out.
			if idx != len(self.Rest)-1 {
				return nil, errors.New("misplaced comma in tuple")
			}
			break
		}
		values = append(values, tail.Value)
	}
	return values, nil
}

func reduceSequence(values []*_Literal) (*types.Sequence, error) {
	seq := types.NewSequence(len(values))
	for _, lit := range values {
		value, err := lit.reduce()
		if err != nil {
			return nil, err
		}
		seq.Append(*value)
	}
	return seq, nil
}
