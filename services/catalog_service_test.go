package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waco-shop/models"
)

func TestParseVariations(t *testing.T) {
	variations := ParseVariations("16oz: ₱89\n22oz: ₱109")

	require.Len(t, variations, 2)
	assert.Equal(t, "16oz", variations[0].Size)
	assert.True(t, variations[0].Price.Equal(decimal.NewFromInt(89)))
	assert.Equal(t, "22oz", variations[1].Size)
	assert.True(t, variations[1].Price.Equal(decimal.NewFromInt(109)))
}

func TestParseVariationsIgnoresNonMatchingLines(t *testing.T) {
	content := "ICED COFFEE\nBest seller!\n16oz: ₱89.50\nask the barista\n22OZ: ₱ 109"

	variations := ParseVariations(content)

	require.Len(t, variations, 2)
	assert.Equal(t, "16oz", variations[0].Size)
	assert.True(t, variations[0].Price.Equal(decimal.RequireFromString("89.5")))
	assert.Equal(t, "22OZ", variations[1].Size)
	assert.True(t, variations[1].Price.Equal(decimal.NewFromInt(109)))
}

func TestParseVariationsEmpty(t *testing.T) {
	assert.Empty(t, ParseVariations("WAFFLE CLASSIC"))
	assert.Empty(t, ParseVariations(""))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"ICED COFFEE\n16oz: ₱89", "Iced Coffee"},
		{"iced coffee special", "Iced Coffee"},
		{"MILKTEA OKINAWA", "Milktea"},
		{"FRUIT YOGURT", "Fruit Yogurt"},
		{"FRUIT SODA", "Fruit Soda"},
		{"WAFFLE CLASSIC", "Waffles"},
		{"BURGER CLASSIC", "Waffles"},
		{"FRESH LEMONADE", "Others"},
		{"", "Others"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.content), "content %q", tt.content)
	}
}

func TestIsCustomizable(t *testing.T) {
	assert.True(t, IsCustomizable("ICED COFFEE\n16oz: ₱89"))
	assert.True(t, IsCustomizable("MILKTEA OKINAWA"))
	assert.True(t, IsCustomizable("FRUIT YOGURT"))
	assert.True(t, IsCustomizable("FRUIT SODA"))
	assert.False(t, IsCustomizable("WAFFLE CLASSIC"))
	assert.False(t, IsCustomizable("BURGER CLASSIC"))
}

func TestCustomizableVariationsSizeWhitelist(t *testing.T) {
	// 8oz is parseable but not serveable; customization must refuse when
	// nothing on the whitelist remains.
	assert.Empty(t, CustomizableVariations("ICED COFFEE\n8oz: ₱49"))

	variations := CustomizableVariations("ICED COFFEE\n8oz: ₱49\n16oz: ₱89")
	require.Len(t, variations, 1)
	assert.Equal(t, "16oz", variations[0].Size)
}

func TestResolvePrice(t *testing.T) {
	base := decimal.NewFromInt(89)

	tests := []struct {
		name string
		sel  models.CustomizationSelection
		want int64
	}{
		{"no options", models.CustomizationSelection{}, 89},
		{"regular", models.CustomizationSelection{Size: SizeRegular}, 89},
		{"large", models.CustomizationSelection{Size: SizeLarge}, 109},
		{"pearls", models.CustomizationSelection{AddOns: []string{"Pearls"}}, 99},
		{"cream cheese", models.CustomizationSelection{AddOns: []string{"Cream Cheese"}}, 104},
		{"large with pearls", models.CustomizationSelection{Size: SizeLarge, AddOns: []string{"Pearls"}}, 119},
		{"everything", models.CustomizationSelection{Size: SizeLarge, SugarLevel: "50%", AddOns: []string{"Pearls", "Cream Cheese"}}, 134},
		{"sugar has no surcharge", models.CustomizationSelection{SugarLevel: "100%"}, 89},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(base, tt.sel)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s want %d", got, tt.want)
		})
	}
}

func TestCustomizedName(t *testing.T) {
	sel := models.CustomizationSelection{Size: SizeLarge, SugarLevel: "50%", AddOns: []string{"Pearls"}}
	name := CustomizedName("Waco Milktea", "16oz", sel)
	assert.Equal(t, "Waco Milktea (16oz, Large, 50% sugar, Pearls)", name)

	plain := CustomizedName("Spanish Latte", "22oz", models.CustomizationSelection{})
	assert.Equal(t, "Spanish Latte (22oz)", plain)
}

func TestOptionValidation(t *testing.T) {
	assert.True(t, ValidSizeOption(""))
	assert.True(t, ValidSizeOption(SizeRegular))
	assert.True(t, ValidSizeOption(SizeLarge))
	assert.False(t, ValidSizeOption("XL"))

	assert.True(t, ValidSugarLevel(""))
	assert.True(t, ValidSugarLevel("75%"))
	assert.False(t, ValidSugarLevel("30%"))

	assert.True(t, ValidAddOn("Pearls"))
	assert.True(t, ValidAddOn("Cream Cheese"))
	assert.False(t, ValidAddOn("Espresso Shot"))
}
