package util

import (
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomTicker generates a random four-letter ticker symbol
func RandomTicker() string {
	return strings.ToUpper(RandomString(4))
}

// RandomReturns generates n synthetic period returns with the given
// volatility scale, for seeding tests with plausible series.
func RandomReturns(n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = scale * rand.NormFloat64()
	}
	return out
}
