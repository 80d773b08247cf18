package exhibition

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestRankChange(t *testing.T) {
	previous := map[uint32]int{10: 1, 20: 2, 30: 5}

	assert.Equal(t, "new", RankChange(previous, 99, 1))
	assert.Equal(t, "0", RankChange(previous, 10, 1))
	assert.Equal(t, "3", RankChange(previous, 30, 2), "moved up from 5 to 2")
	assert.Equal(t, "-2", RankChange(previous, 10, 3), "moved down from 1 to 3")
}

func TestProperty_RankChange(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	ranks := gen.IntRange(1, 10)

	properties.Property("previous rank equals current rank plus change", prop.ForAll(
		func(previousRank, currentRank int) bool {
			change, err := strconv.Atoi(RankChange(map[uint32]int{1: previousRank}, 1, currentRank))
			return err == nil && currentRank+change == previousRank
		},
		ranks, ranks,
	))

	properties.Property("unranked exhibitions are new", prop.ForAll(
		func(currentRank int) bool {
			return RankChange(map[uint32]int{}, 1, currentRank) == rankNew
		},
		ranks,
	))

	properties.TestingRun(t)
}
