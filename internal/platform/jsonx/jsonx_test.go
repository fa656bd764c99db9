package jsonx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func TestString(t *testing.T) {
	for in, want := range map[string]string{
		``:          "",
		`null`:      "",
		`""`:        "",
		`"  abc "`:  "abc",
		`12345`:     "12345",
		`"0012345"`: "0012345",
	} {
		got, err := String(raw(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := String(raw(`{"a":1}`))
	assert.Error(t, err)
}

func TestOptString(t *testing.T) {
	got, err := OptString(raw(`""`))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptString(raw(`"60 días"`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "60 días", *got)
}

func TestInt64(t *testing.T) {
	n, ok, err := Int64(raw(`"7"`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 7, n)

	n, ok, err = Int64(raw(`3.0`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 3, n)

	_, ok, err = Int64(raw(`null`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = Int64(raw(`"x"`))
	assert.Error(t, err)

	_, _, err = Int64(raw(`2.5`))
	assert.Error(t, err)
}

func TestDecimal(t *testing.T) {
	d, err := Decimal(raw(`"-5"`))
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.True(t, d.Decimal.Equal(decimal.NewFromInt(-5)))

	d, err = Decimal(raw(`""`))
	require.NoError(t, err)
	assert.False(t, d.Valid)

	_, err = Decimal(raw(`"pesado"`))
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	d, err := Date(raw(`"2024-03-09"`))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), *d)

	d, err = Date(raw(`"2024-03-09T04:00:00.000Z"`))
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-03-09", *FormatDate(d))

	d, err = Date(raw(`null`))
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = Date(raw(`"09/03/2024"`))
	assert.Error(t, err)
}

func TestNumber(t *testing.T) {
	assert.Nil(t, Number(decimal.NullDecimal{}))

	b, err := json.Marshal(map[string]any{"peso_ani": Number(decimal.NewNullDecimal(decimal.RequireFromString("450.50")))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"peso_ani": 450.5}`, string(b))
}
