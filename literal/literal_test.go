package literal_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"

	"github.com/serval-lang/erased"
	"github.com/serval-lang/erased/literal"
	"github.com/serval-lang/erased/types"
)

// Canonical text must survive a parse/format cycle byte for byte.
var round_trip_testcases = []string{
	`None`,
	`0`,
	`42`,
	`-17`,
	`3.14`,
	`1.0`,
	`-2.5e-08`,
	`1e+21`,
	`nan`,
	`inf`,
	`-inf`,
	`true`,
	`false`,
	`"hi"`,
	`""`,
	`"say \"hi\"\n"`,
	`"\x00\x1f"`,
	`[]`,
	`[5]`,
	`[5, "hi"]`,
	`[[1, 2], []]`,
	`[None, true, 1.5]`,
	`()`,
	`(1,)`,
	`(1, "x")`,
	`((1,), [2])`,
	`{}`,
	`{"a": 1, "b": [2]}`,
	`{"outer": {"inner": (1,)}}`,
}

func TestRoundTrip(t *testing.T) {
	for _, testcase := range round_trip_testcases {
		value, err := literal.Parse(testcase)
		assert.NoError(t, err, testcase)

		res, err := erased.Format(value)
		assert.NoError(t, err, testcase)
		assert.Equal(t, testcase, res)
	}
}

func TestParseStructure(t *testing.T) {
	value, err := literal.Parse(`[5, "hi"]`)
	assert.NoError(t, err)

	expected := types.NewList(
		types.NewSequence(2).Append(
			types.NewInt(5),
			types.Value{Tag: types.KindStr, Bytes: []byte("hi")}))

	if diff := deep.Equal(&expected, value); diff != nil {
		t.Fatal(diff)
	}
}

func TestParseTuples(t *testing.T) {
	value, err := literal.Parse(`(1,)`)
	assert.NoError(t, err)
	assert.Equal(t, types.KindTuple, value.Tag)
	assert.Equal(t, 1, value.Tuple.Len())

	value, err = literal.Parse(`(1, 2)`)
	assert.NoError(t, err)
	assert.Equal(t, 2, value.Tuple.Len())

	value, err = literal.Parse(`()`)
	assert.NoError(t, err)
	assert.Equal(t, 0, value.Tuple.Len())
}

func TestParseNumbers(t *testing.T) {
	value, err := literal.Parse(`42`)
	assert.NoError(t, err)
	assert.Equal(t, types.KindInt, value.Tag)
	assert.Equal(t, int64(42), value.Int)

	// A decimal point forces the float reading.
	value, err = literal.Parse(`42.0`)
	assert.NoError(t, err)
	assert.Equal(t, types.KindFloat, value.Tag)
	assert.Equal(t, 42.0, value.Float)
}

func TestParseErrors(t *testing.T) {
	for _, testcase := range []string{
		``,
		`[5,`,
		`(,)`,
		`(1, , 2)`,
		`{"a" 1}`,
		`{1: 2}`,
		`foo`,
		`"unterminated`,
	} {
		_, err := literal.Parse(testcase)
		assert.Error(t, err, "testcase %q", testcase)
	}
}
