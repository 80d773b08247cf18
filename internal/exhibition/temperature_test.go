package exhibition

import (
	"math"
	"testing"

	"github.com/artfriendly/go-api-server/internal/model"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTemperature(t *testing.T) {
	testCases := []struct {
		name  string
		likes int64
		views int64
		hopes []model.Hope
		want  float64
	}{
		{name: "empty", want: 0},
		{name: "likes only", likes: 3, want: 3},
		{name: "views only", views: 7, want: 0.7},
		{name: "mixed", likes: 2, views: 5, hopes: []model.Hope{model.HopeWantToSee, model.HopeGood}, want: 4.2},
		{name: "negative floored", hopes: []model.Hope{model.HopeNotGood, model.HopeNotGood}, want: 0},
		{name: "negative offset by likes", likes: 1, hopes: []model.Hope{model.HopeNotGood}, want: 0.5},
		{name: "rounded", views: 3, hopes: []model.Hope{model.HopeSoSo}, want: 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, CalculateTemperature(tc.likes, tc.views, tc.hopes), 1e-9)
		})
	}
}

func hopesFromIndexes(indexes []int) []model.Hope {
	hopes := make([]model.Hope, 0, len(indexes))
	for _, index := range indexes {
		hope, _ := model.HopeFromIndex(index)
		hopes = append(hopes, hope)
	}
	return hopes
}

func TestProperty_Temperature(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	counts := gen.Int64Range(0, 10000)
	hopeIndexes := gen.SliceOf(gen.IntRange(1, 5))

	properties.Property("temperature is never negative", prop.ForAll(
		func(likes, views int64, indexes []int) bool {
			return CalculateTemperature(likes, views, hopesFromIndexes(indexes)) >= 0
		},
		counts, counts, hopeIndexes,
	))

	properties.Property("temperature has at most one decimal", prop.ForAll(
		func(likes, views int64, indexes []int) bool {
			scaled := CalculateTemperature(likes, views, hopesFromIndexes(indexes)) * 10
			return math.Abs(scaled-math.Round(scaled)) < 1e-6
		},
		counts, counts, hopeIndexes,
	))

	properties.Property("another like never lowers the temperature", prop.ForAll(
		func(likes, views int64, indexes []int) bool {
			hopes := hopesFromIndexes(indexes)
			return CalculateTemperature(likes+1, views, hopes) >= CalculateTemperature(likes, views, hopes)
		},
		counts, counts, hopeIndexes,
	))

	properties.Property("likes alone count one degree each", prop.ForAll(
		func(likes int64) bool {
			return CalculateTemperature(likes, 0, nil) == float64(likes)
		},
		counts,
	))

	properties.TestingRun(t)
}
