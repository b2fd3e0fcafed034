package advisor

import "golang.org/x/exp/rand"

// Bounds of RandomAmount, inclusive.
const (
	MinRandomAmount = 10
	MaxRandomAmount = 50
)

// RandomAmount draws a charging amount uniformly from
// [MinRandomAmount, MaxRandomAmount]. The advisor itself never draws
// amounts; callers that want a simulated demand pass the result in.
func RandomAmount(r *rand.Rand) int {
	return r.Intn(MaxRandomAmount-MinRandomAmount+1) + MinRandomAmount
}
