package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/evcharge/advisor"
	"github.com/katalvlaran/evcharge/core"
	"github.com/katalvlaran/evcharge/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func townAdvisor(t *testing.T) *advisor.Advisor {
	t.Helper()
	tab, g, err := loader.FromReaders(
		strings.NewReader("Home,0,0\nFree,1,0\nMid,1,0.5\nCheap,1,0.2\nWork,0,0\nIsland,1,0.1\n"),
		strings.NewReader(`0  10 20 0  0  0
10 0  5  0  40 0
20 5  0  10 0  0
0  0  10 0  10 0
0  40 0  10 0  0
0  0  0  0  0  0
`),
	)
	require.NoError(t, err)
	a, err := advisor.New(g, tab)
	require.NoError(t, err)

	return a
}

func query(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := runQuery(&buf, townAdvisor(t), rand.New(rand.NewSource(3)), args)

	return buf.String(), err
}

func TestRunQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want []string
	}{
		{[]string{"stations"}, []string{"Free", "free", "$0.10/kWh"}},
		{[]string{"locations"}, []string{"Index", "Work", "N/A"}},
		{[]string{"distances", "Home"}, []string{"Work", "35", "Island", "unreachable"}},
		{[]string{"path", "Home", "Work"}, []string{"Path: Home -> Free -> Mid -> Cheap -> Work", "Distance: 35"}},
		{[]string{"path", "Home", "Island"}, []string{"No path from Home to Island."}},
		{[]string{"adjacent", "Home"}, []string{"Adjacent charging stations: Free -> Mid"}},
		{[]string{"nearest", "Island"}, []string{"No charging station reachable."}},
		{[]string{"nearest", "Home"}, []string{"Nearest charging station: Free", "Distance: 10"}},
		{[]string{"cheapest-adjacent", "Home", "30"}, []string{"Charging amount: 30 kWh", "Charge at: Mid", "Total cost: $19.00"}},
		{[]string{"cheapest-other", "Mid", "10"}, []string{"Charge at: Free", "Total cost: $1.00"}},
		{[]string{"cheapest-route", "Home", "Work", "30"}, []string{"Charge at: Cheap", "Travel path: Home -> Free"}},
		{[]string{"best-plan", "Home", "Work", "40"}, []string{
			"Strategy: split", "Charge 25 kWh at Free", "Charge 15 kWh at Cheap", "Total cost: $6.50",
		}},
		{[]string{"best-plan", "Home", "Work"}, []string{"Charging amount: ", "Strategy: "}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(strings.Join(tc.args, "_"), func(t *testing.T) {
			t.Parallel()
			out, err := query(t, tc.args...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRunQuery_Errors(t *testing.T) {
	t.Parallel()

	_, err := query(t)
	require.ErrorIs(t, err, errUsage)
	_, err = query(t, "teleport")
	require.ErrorIs(t, err, errUsage)
	_, err = query(t, "path", "Home")
	require.ErrorIs(t, err, errUsage)
	_, err = query(t, "nearest", "Home", "12")
	require.ErrorIs(t, err, errUsage)
	_, err = query(t, "best-plan", "Home", "Work", "lots")
	require.ErrorIs(t, err, errUsage)
	_, err = query(t, "nearest", "Atlantis")
	require.ErrorIs(t, err, core.ErrUnknownLocation)
	_, err = query(t, "best-plan", "Home", "Work", "-3")
	require.ErrorIs(t, err, advisor.ErrNegativeAmount)
}
