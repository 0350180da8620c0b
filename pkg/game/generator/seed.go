package generator

import (
	"hash/fnv"
	"strconv"
	"time"
)

// ResolveSeed turns the configured seed into the string recorded on the map and
// the value fed to the random source. With useRandom set the seed comes from now.
// Numeric seeds are used as-is so a logged seed can be passed back verbatim.
func ResolveSeed(seed string, useRandom bool, now time.Time) (string, int64) {
	if useRandom {
		seed = strconv.FormatInt(now.UnixNano(), 10)
	}

	if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return seed, v
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	return seed, int64(h.Sum64())
}
