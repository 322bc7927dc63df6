package scrape

import (
	"fmt"

	"sportsref/lib/textutil"

	"github.com/antzucaro/matchr"
)

var ErrNotFound = fmt.Errorf("not found")

// Lookup finds the item whose key matches want, ignoring case and
// whitespace. a miss returns an error wrapping ErrNotFound that names
// the closest known key so typos surface in the message.
func Lookup[T any](items []T, key func(T) string, want string) (T, error) {
	var zero T

	target := textutil.NormalizeName(want)
	for _, item := range items {
		if textutil.NormalizeName(key(item)) == target {
			return item, nil
		}
	}

	closest := ""
	similarity := 0.0
	for _, item := range items {
		k := key(item)
		s := matchr.JaroWinkler(textutil.NormalizeName(k), target, false)
		if s > similarity {
			similarity = s
			closest = k
		}
	}
	if closest == "" {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, want)
	}
	return zero, fmt.Errorf("%w: %q (closest match %q)", ErrNotFound, want, closest)
}
