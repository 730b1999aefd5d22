package models_test

import (
	"testing"

	"github.com/pin-diary/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerColor_Valid(t *testing.T) {
	for _, color := range models.MarkerColors {
		assert.True(t, color.Valid(), "color %s", color)
	}
	assert.False(t, models.MarkerColor("ORANGE").Valid())
	assert.False(t, models.MarkerColor("red").Valid())
	assert.False(t, models.MarkerColor("").Valid())
}

func fullLabels() map[models.MarkerColor]string {
	return map[models.MarkerColor]string{
		models.MarkerColorRed:    "food",
		models.MarkerColorYellow: "cafe",
		models.MarkerColorBlue:   "travel",
		models.MarkerColorGreen:  "nature",
		models.MarkerColorPurple: "culture",
	}
}

func TestValidateCategoryLabels(t *testing.T) {
	require.NoError(t, models.ValidateCategoryLabels(fullLabels()))

	missing := fullLabels()
	delete(missing, models.MarkerColorGreen)
	assert.Error(t, models.ValidateCategoryLabels(missing))

	extra := fullLabels()
	extra["ORANGE"] = "unknown"
	assert.Error(t, models.ValidateCategoryLabels(extra))

	swapped := fullLabels()
	delete(swapped, models.MarkerColorBlue)
	swapped["blue"] = "lowercase key"
	assert.Error(t, models.ValidateCategoryLabels(swapped))

	assert.Error(t, models.ValidateCategoryLabels(nil))
}

func TestUserCategoryLabelsRoundTrip(t *testing.T) {
	user := models.User{}
	user.SetCategoryLabels(fullLabels())

	labels := user.CategoryLabels()
	assert.Equal(t, "food", labels[models.MarkerColorRed])
	assert.Equal(t, "culture", labels[models.MarkerColorPurple])
	assert.Len(t, labels, 5)
}
