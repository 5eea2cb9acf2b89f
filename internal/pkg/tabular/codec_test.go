package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "rentsmart-service/internal/pkg/errors"
)

func TestEncode_QuotesStringsOnly(t *testing.T) {
	records := []*Record{
		NewRecord().Set("id", "1").Set("name", "A").Set("mileage", 45000.0).Set("active", true),
		NewRecord().Set("id", "2").Set("name", "B").Set("mileage", 12000.0).Set("active", false),
	}

	text, err := Encode(records)
	require.NoError(t, err)

	want := "id,name,mileage,active\n" +
		"\"1\",\"A\",45000,true\n" +
		"\"2\",\"B\",12000,false"
	assert.Equal(t, want, text)
}

func TestEncode_EmptyInput(t *testing.T) {
	_, err := Encode(nil)
	assert.ErrorIs(t, err, xerrors.ErrInsufficientData)
}

func TestEncode_ShapeMismatch(t *testing.T) {
	records := []*Record{
		NewRecord().Set("id", "1").Set("name", "A"),
		NewRecord().Set("id", "2"),
	}
	_, err := Encode(records)
	assert.ErrorIs(t, err, xerrors.ErrShapeMismatch)
}

func TestEncode_ColumnOrderFollowsFirstRecord(t *testing.T) {
	records := []*Record{
		NewRecord().Set("zebra", 1.0).Set("apple", 2.0),
	}
	text, err := Encode(records)
	require.NoError(t, err)
	assert.Equal(t, "zebra,apple\n1,2", text)
}

// Quoted cells stay strings through a round trip even when they look numeric.
func TestDecode_QuotedCellsStayStrings(t *testing.T) {
	text := "id,name\n\"1\",\"A\"\n\"2\",\"B\""

	records, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, records, 2)

	id, ok := records[0].Get("id")
	require.True(t, ok)
	assert.Equal(t, "1", id)

	name, ok := records[1].Get("name")
	require.True(t, ok)
	assert.Equal(t, "B", name)
}

func TestDecode_UnquotedCellsCoerce(t *testing.T) {
	text := "mileage,active,note\n45000,true,\nactives,false,spare"

	records, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, records, 2)

	mileage, _ := records[0].Get("mileage")
	assert.Equal(t, 45000.0, mileage)

	active, _ := records[0].Get("active")
	assert.Equal(t, true, active)

	note, _ := records[0].Get("note")
	assert.Equal(t, "", note)

	word, _ := records[1].Get("mileage")
	assert.Equal(t, "actives", word)
}

func TestDecode_SkipsBlankLines(t *testing.T) {
	text := "id,name\r\n\"1\",\"A\"\r\n\r\n\"2\",\"B\"\r\n"

	records, err := Decode(text)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestDecode_ColumnCountMismatch(t *testing.T) {
	text := "id,name\n\"1\",\"A\",\"extra\""
	_, err := Decode(text)
	assert.ErrorIs(t, err, xerrors.ErrShapeMismatch)
}

func TestDecode_HeaderOnly(t *testing.T) {
	_, err := Decode("id,name")
	assert.ErrorIs(t, err, xerrors.ErrInsufficientData)
}

func TestRoundTrip_PreservesTypesAndOrder(t *testing.T) {
	in := []*Record{
		NewRecord().Set("id", "v001").Set("year", 2022.0).Set("sold", false),
		NewRecord().Set("id", "v002").Set("year", 2021.0).Set("sold", true),
	}

	text, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.Equal(t, in[i].Keys(), out[i].Keys())
		for _, k := range in[i].Keys() {
			wantVal, _ := in[i].Get(k)
			gotVal, _ := out[i].Get(k)
			assert.Equal(t, wantVal, gotVal, "row %d key %s", i, k)
		}
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"", ""},
		{"45000", 45000.0},
		{"-3.5", -3.5},
		{"true", true},
		{"false", false},
		{"Toyota", "Toyota"},
		{"2024-02-05", "2024-02-05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Coerce(tt.raw), "raw %q", tt.raw)
	}
}
