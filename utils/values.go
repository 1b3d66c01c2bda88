package utils

import (
	"sort"
	"strings"
)

// Rectangle is a plain value object.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area returns width times height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// AssembleWord builds a word from letters keyed by their position. Positions
// only define relative order, gaps and negative values are fine.
func AssembleWord(letters map[int]rune) string {
	positions := make([]int, 0, len(letters))
	for p := range letters {
		positions = append(positions, p)
	}
	sort.Ints(positions)

	var b strings.Builder
	for _, p := range positions {
		b.WriteRune(letters[p])
	}
	return b.String()
}

// SellTickets simulates a cash register selling 25-unit tickets to a queue of
// customers paying with 25, 50 or 100 bills, starting with no change. It
// reports whether every customer can be given exact change in queue order.
// Change for 100 prefers a 50+25 pair over three 25s to keep small bills
// available longer.
func SellTickets(bills []int) bool {
	var have25, have50 int
	for _, bill := range bills {
		switch bill {
		case 25:
			have25++
		case 50:
			if have25 == 0 {
				return false
			}
			have25--
			have50++
		case 100:
			switch {
			case have50 > 0 && have25 > 0:
				have50--
				have25--
			case have25 >= 3:
				have25 -= 3
			default:
				return false
			}
		default:
			return false
		}
	}
	return true
}
