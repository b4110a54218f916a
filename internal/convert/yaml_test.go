package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cjlib "github.com/constarg/cjlib-go"
	"github.com/constarg/cjlib-go/internal/convert"
)

func TestYAMLToValueScalarsAndNesting(t *testing.T) {
	t.Parallel()

	raw := []byte(`
name: ada
active: true
count: 2
tags:
  - math
  - computing
address:
  city: london
`)

	v, err := convert.YAMLToValue(raw)
	require.NoError(t, err)
	require.Equal(t, cjlib.Object, v.Type())

	name, err := v.Key("name").AsString()
	require.NoError(t, err)
	assert.Equal(t, "ada", name)

	active, err := v.Key("active").AsBoolean()
	require.NoError(t, err)
	assert.True(t, active)

	count, err := v.Key("count").AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	tags, err := v.Key("tags").AsArray()
	require.NoError(t, err)
	assert.Equal(t, 2, tags.Len())
	first, ok := tags.Get(0)
	require.True(t, ok)
	firstS, _ := first.AsString()
	assert.Equal(t, "math", firstS)

	city, err := v.Key("address").Key("city").AsString()
	require.NoError(t, err)
	assert.Equal(t, "london", city)
}

func TestYAMLToValueEmptyDocumentIsNull(t *testing.T) {
	t.Parallel()

	v, err := convert.YAMLToValue([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, cjlib.Null, v.Type())
}

func TestYAMLToValueRoundTripsThroughSerialize(t *testing.T) {
	t.Parallel()

	v, err := convert.YAMLToValue([]byte("a: 1\nb: two\n"))
	require.NoError(t, err)

	out, err := cjlib.Serialize(v)
	require.NoError(t, err)

	reparsed, err := cjlib.ParseBytes(out)
	require.NoError(t, err)
	a, err := reparsed.Key("a").AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
}
