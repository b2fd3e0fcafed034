// Package core_test covers table construction, lookups, station ordering
// and struct validation.
package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/evcharge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []core.Location {
	return []core.Location{
		{Name: "Depot"},
		{Name: "Mall", ChargerInstalled: true, UnitPrice: 0.30},
		{Name: "Library", ChargerInstalled: true},
		{Name: "Park", UnitPrice: 0.99}, // price without a charger is ignored
		{Name: "Airport", ChargerInstalled: true, UnitPrice: 0.12},
		{Name: "Harbour", ChargerInstalled: true, UnitPrice: 0.30},
	}
}

func TestNewTable_AssignsIndices(t *testing.T) {
	t.Parallel()

	in := sample()
	in[2].Index = 99
	tab, err := core.NewTable(in)
	require.NoError(t, err)
	require.Equal(t, 6, tab.Len())

	for i, l := range tab.All() {
		assert.Equal(t, i, l.Index)
	}

	// The input slice is not retained.
	in[0].Name = "changed"
	l, err := tab.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Depot", l.Name)
}

func TestNewTable_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []core.Location
		want error
	}{
		{"empty", nil, core.ErrEmptyTable},
		{"blank name", []core.Location{{Name: ""}}, core.ErrInvalid},
		{"negative price", []core.Location{{Name: "A", ChargerInstalled: true, UnitPrice: -1}}, core.ErrInvalid},
		{"nan price", []core.Location{{Name: "A", ChargerInstalled: true, UnitPrice: math.NaN()}}, core.ErrInvalid},
		{"duplicate", []core.Location{{Name: "A"}, {Name: "B"}, {Name: "A"}}, core.ErrDuplicateName},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := core.NewTable(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_TranslatedMessages(t *testing.T) {
	t.Parallel()

	err := core.Validate(core.Location{UnitPrice: -2})
	require.Error(t, err)

	var ve *core.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Messages, 2)
	assert.Contains(t, ve.Messages[0], "Name is a required field")
	assert.Contains(t, ve.Messages[1], "UnitPrice must be 0 or greater")
	assert.ErrorIs(t, err, core.ErrInvalid)

	require.NoError(t, core.Validate(core.Location{Name: "ok"}))
}

func TestLookups(t *testing.T) {
	t.Parallel()
	tab, err := core.NewTable(sample())
	require.NoError(t, err)

	i, err := tab.Index("Airport")
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	_, err = tab.Index("Nowhere")
	require.ErrorIs(t, err, core.ErrUnknownLocation)

	_, err = tab.At(6)
	require.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = tab.At(-1)
	require.ErrorIs(t, err, core.ErrOutOfRange)

	assert.True(t, tab.IsStation(1))
	assert.False(t, tab.IsStation(3))
	assert.False(t, tab.IsStation(42))

	names, err := tab.Names([]int{0, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Depot", "Airport", "Mall"}, names)

	_, err = tab.Names([]int{0, 9})
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestPriceAndString(t *testing.T) {
	t.Parallel()
	tab, err := core.NewTable(sample())
	require.NoError(t, err)

	park, _ := tab.At(3)
	_, ok := park.Price()
	assert.False(t, ok, "no charger means no price")
	assert.False(t, park.IsFree())
	assert.Equal(t, "3 Park (N/A)", park.String())

	lib, _ := tab.At(2)
	p, ok := lib.Price()
	assert.True(t, ok)
	assert.Equal(t, 0.0, p)
	assert.True(t, lib.IsFree())
	assert.Equal(t, "2 Library (free of charge)", lib.String())

	mall, _ := tab.At(1)
	assert.Equal(t, "1 Mall ($0.30/kWh)", mall.String())
}

func TestStations_PriceOrderStable(t *testing.T) {
	t.Parallel()
	tab, err := core.NewTable(sample())
	require.NoError(t, err)

	var got []int
	for _, s := range tab.Stations() {
		got = append(got, s.Index)
	}
	// Library (0), Airport (0.12), Mall (0.30), Harbour (0.30); Park is excluded.
	if diff := cmp.Diff([]int{2, 4, 1, 5}, got); diff != "" {
		t.Errorf("Stations order mismatch (-want +got):\n%s", diff)
	}
}
