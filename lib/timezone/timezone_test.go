package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocationIsEastern(t *testing.T) {
	cases := []struct {
		name   string
		moment time.Time
		offset int
	}{
		{
			name:   "standard time",
			moment: time.Date(2019, time.January, 15, 12, 0, 0, 0, Location),
			offset: -5 * 60 * 60,
		},
		{
			name:   "daylight saving time",
			moment: time.Date(2019, time.July, 15, 12, 0, 0, 0, Location),
			offset: -4 * 60 * 60,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, offset := test.moment.Zone()
			require.Equal(t, test.offset, offset)
		})
	}
}

func TestNowUsesLocation(t *testing.T) {
	require.Equal(t, Location, Now().Location())
}
