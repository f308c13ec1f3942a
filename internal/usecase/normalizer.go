package usecase

import (
	"strings"

	"github.com/fakeguard/backend/internal/domain"
)

// fieldSpec pairs a canonical record field key with its rendered label.
type fieldSpec struct {
	key   string
	label string
}

// descriptionFields maps each category to its fixed, ordered field list.
// Keeping this as one table (instead of a render function per category)
// avoids drift between near-identical code paths.
var descriptionFields = map[domain.Category][]fieldSpec{
	domain.CategoryDrug: {
		{"drug_name", "Drug Name"},
		{"price", "Price"},
		{"dosage", "Dosage"},
		{"form", "Form"},
		{"brand_name", "Brand Name"},
		{"medicine_type", "Medicine Type"},
		{"pack_size", "Pack Size"},
		{"indications", "Indications"},
		{"side_effects", "Side Effects"},
		{"expiry_date_available", "Expiry Date Available"},
		{"platform", "Platform"},
		{"nafdac_number_present", "NAFDAC Number Present"},
		{"package_description", "Package Description"},
	},
	domain.CategoryBabyProduct: {
		{"name", "Name"},
		{"brand_name", "Brand Name"},
		{"price_in_naira", "Price in Naira"},
		{"platform", "Platform"},
		{"product_type", "Product Type"},
		{"age_group", "Age Group"},
		{"package_description", "Package Description"},
		{"visible_expiry_date", "Visible Expiry Date"},
	},
}

// Describe renders a product record as a single description string: one
// "<Label>: <value>" line per field, in the category's declared order.
// Field-identical records always produce byte-identical output.
func Describe(record *domain.ProductRecord) (string, error) {
	if record == nil {
		return "", domain.ErrInvalidRequest
	}

	fields, ok := descriptionFields[record.Category]
	if !ok {
		return "", domain.ErrUnknownCategory
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, f.label+": "+record.Fields[f.key])
	}

	return strings.Join(lines, "\n"), nil
}
