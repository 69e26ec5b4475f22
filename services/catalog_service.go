package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"waco-shop/models"
	"waco-shop/repositories"
)

// variationPattern matches one "<size>oz: ₱<price>" entry on a content
// line, e.g. "16oz: ₱89".
var variationPattern = regexp.MustCompile(`(?i)(\d+oz):\s*₱\s*(\d+(\.\d+)?)`)

// categoryRules are tested in order against the upper-cased content; the
// first matching prefix wins. BURGER items share the Waffles section, as
// the menu has always grouped them.
var categoryRules = []struct {
	prefix string
	label  string
}{
	{"ICED COFFEE", "Iced Coffee"},
	{"MILKTEA", "Milktea"},
	{"FRUIT YOGURT", "Fruit Yogurt"},
	{"FRUIT SODA", "Fruit Soda"},
	{"WAFFLE", "Waffles"},
	{"BURGER", "Waffles"},
}

const DefaultCategory = "Others"

// drinkKeywords gate customization: only drinks get the customize dialog.
var drinkKeywords = []string{"ICED", "MILKTEA", "YOGURT", "SODA"}

// allowedSizes is the whitelist of serveable cup sizes. A drink whose
// content parses to none of these cannot be customized and falls back to a
// plain add-to-cart.
var allowedSizes = map[string]bool{
	"16OZ": true,
	"22OZ": true,
	"12OZ": true,
	"18OZ": true,
}

const (
	SizeRegular = "Regular"
	SizeLarge   = "Large"
)

var SugarLevels = []string{"0%", "25%", "50%", "75%", "100%"}

var (
	largeSurcharge = decimal.NewFromInt(20)
	addOnSurcharges = map[string]decimal.Decimal{
		"Pearls":       decimal.NewFromInt(10),
		"Cream Cheese": decimal.NewFromInt(15),
	}
)

// ParseVariations scans each content line for a size/price entry. Lines
// that don't match are ignored; output order follows input order.
func ParseVariations(content string) []models.Variation {
	var variations []models.Variation
	for _, line := range strings.Split(content, "\n") {
		m := variationPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		price, err := decimal.NewFromString(m[2])
		if err != nil {
			continue
		}
		variations = append(variations, models.Variation{Size: m[1], Price: price})
	}
	return variations
}

func Classify(content string) string {
	upper := strings.ToUpper(content)
	for _, rule := range categoryRules {
		if strings.HasPrefix(upper, rule.prefix) {
			return rule.label
		}
	}
	return DefaultCategory
}

func IsCustomizable(content string) bool {
	upper := strings.ToUpper(content)
	for _, kw := range drinkKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// CustomizableVariations filters parsed variations down to the allowed
// size whitelist. An empty result means customization is refused for this
// product.
func CustomizableVariations(content string) []models.Variation {
	var out []models.Variation
	for _, v := range ParseVariations(content) {
		if allowedSizes[strings.ToUpper(v.Size)] {
			out = append(out, v)
		}
	}
	return out
}

// ResolvePrice computes the final unit price: the base variation price plus
// fixed, independent surcharges per selected option.
func ResolvePrice(base decimal.Decimal, sel models.CustomizationSelection) decimal.Decimal {
	price := base
	if sel.Size == SizeLarge {
		price = price.Add(largeSurcharge)
	}
	for _, addOn := range sel.AddOns {
		if surcharge, ok := addOnSurcharges[addOn]; ok {
			price = price.Add(surcharge)
		}
	}
	return price
}

func ValidSizeOption(size string) bool {
	return size == "" || size == SizeRegular || size == SizeLarge
}

func ValidSugarLevel(level string) bool {
	if level == "" {
		return true
	}
	for _, s := range SugarLevels {
		if s == level {
			return true
		}
	}
	return false
}

func ValidAddOn(addOn string) bool {
	_, ok := addOnSurcharges[addOn]
	return ok
}

// CustomizedName renders the cart display name for a customized drink,
// e.g. "Waco Milktea (16oz, Large, 50% sugar, Pearls)". The name carries
// the full customization so distinct selections stay distinct cart lines.
func CustomizedName(productName, variationSize string, sel models.CustomizationSelection) string {
	parts := []string{variationSize}
	if sel.Size == SizeLarge {
		parts = append(parts, SizeLarge)
	}
	if sel.SugarLevel != "" {
		parts = append(parts, sel.SugarLevel+" sugar")
	}
	parts = append(parts, sel.AddOns...)
	return fmt.Sprintf("%s (%s)", productName, strings.Join(parts, ", "))
}

type CatalogService struct {
	productRepo *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		productRepo: repositories.NewProductRepository(),
	}
}

// GetProducts returns catalog rows with structured variations attached, so
// callers work on typed data instead of re-parsing the content text.
func (s *CatalogService) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.productRepo.GetAll(ctx, category)
	if err != nil {
		return nil, err
	}
	for i := range products {
		s.decorate(&products[i])
	}
	return products, nil
}

func (s *CatalogService) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	p, err := s.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	s.decorate(p)
	return p, nil
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.GetCategories(ctx)
}

func (s *CatalogService) decorate(p *models.Product) {
	if p.Category == "" {
		p.Category = Classify(p.Content)
	}
	p.Variations = ParseVariations(p.Content)
	p.Customizable = IsCustomizable(p.Content) && len(CustomizableVariations(p.Content)) > 0
}
