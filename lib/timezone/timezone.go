package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be eastern since that is what the stat sites
// publish start times and season boundaries in, otherwise date math
// based on <time.Time>.Year()/Month()/Day()/Hour()/... shifts around
// depending on where the process runs
func Now() time.Time {
	return time.Now().In(Location)
}
