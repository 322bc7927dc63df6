package scrape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	type team struct {
		Abbr string
		Name string
	}
	teams := []team{
		{Abbr: "DET", Name: "Detroit Pistons"},
		{Abbr: "TOR", Name: "Toronto Raptors"},
		{Abbr: "BOS", Name: "Boston Celtics"},
	}
	key := func(t team) string { return t.Abbr }

	{
		got, err := Lookup(teams, key, "TOR")
		require.NoError(t, err)
		require.Equal(t, "Toronto Raptors", got.Name)
	}
	{
		got, err := Lookup(teams, key, "det")
		require.NoError(t, err)
		require.Equal(t, "Detroit Pistons", got.Name)
	}
	{
		_, err := Lookup(teams, key, "DTE")
		require.True(t, errors.Is(err, ErrNotFound))
		require.Contains(t, err.Error(), "DET", "should suggest the closest key")
	}
	{
		_, err := Lookup([]team{}, key, "DET")
		require.True(t, errors.Is(err, ErrNotFound))
	}
}
