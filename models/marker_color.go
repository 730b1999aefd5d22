package models

import "fmt"

// MarkerColor is the category tag of a post. The set is closed: the five
// values below are also the keys of the per-user category label mapping, so
// any mapping keyed by MarkerColor must contain exactly these five entries.
type MarkerColor string

const (
	MarkerColorRed    MarkerColor = "RED"
	MarkerColorYellow MarkerColor = "YELLOW"
	MarkerColorBlue   MarkerColor = "BLUE"
	MarkerColorGreen  MarkerColor = "GREEN"
	MarkerColorPurple MarkerColor = "PURPLE"
)

// MarkerColors lists every valid color.
var MarkerColors = []MarkerColor{
	MarkerColorRed,
	MarkerColorYellow,
	MarkerColorBlue,
	MarkerColorGreen,
	MarkerColorPurple,
}

func (m MarkerColor) Valid() bool {
	for _, color := range MarkerColors {
		if m == color {
			return true
		}
	}
	return false
}

// ValidateCategoryLabels checks that labels is keyed by exactly the five
// marker colors, no more, no fewer.
func ValidateCategoryLabels(labels map[MarkerColor]string) error {
	if len(labels) != len(MarkerColors) {
		return fmt.Errorf("category mapping must contain exactly %d colors", len(MarkerColors))
	}
	for _, color := range MarkerColors {
		if _, ok := labels[color]; !ok {
			return fmt.Errorf("category mapping is missing color %s", color)
		}
	}
	return nil
}
