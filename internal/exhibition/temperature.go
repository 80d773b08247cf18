package exhibition

import (
	"math"

	"github.com/artfriendly/go-api-server/internal/model"
)

const (
	likeWeight = 1.0
	viewWeight = 0.1
)

// CalculateTemperature rounds to one decimal and never goes below zero.
func CalculateTemperature(likes, views int64, hopes []model.Hope) float64 {
	temperature := float64(likes)*likeWeight + float64(views)*viewWeight
	for _, hope := range hopes {
		temperature += hope.Weight()
	}

	temperature = math.Round(temperature*10) / 10
	if temperature < 0 {
		return 0
	}
	return temperature
}
