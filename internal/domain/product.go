package domain

import "strconv"

// Category identifies which reference corpus a product is checked against.
type Category string

const (
	CategoryDrug        Category = "drug"
	CategoryBabyProduct Category = "baby-product"
)

// ProductRecord is the category-tagged set of fields describing one product
// instance. It is built once per request and never mutated afterwards.
type ProductRecord struct {
	Category Category
	Fields   map[string]string
}

// DrugListing is the request schema for a drug check. Required-field
// validation happens at binding time, before the record reaches the
// classifier.
type DrugListing struct {
	DrugName            string `json:"drug_name" binding:"required"`
	Price               int    `json:"price" binding:"required"`
	Dosage              string `json:"dosage" binding:"required"`
	Form                string `json:"form" binding:"required"`
	BrandName           string `json:"brand_name" binding:"required"`
	MedicineType        string `json:"medicine_type" binding:"required"`
	PackSize            string `json:"pack_size" binding:"required"`
	Indications         string `json:"indications" binding:"required"`
	SideEffects         string `json:"side_effects" binding:"required"`
	ExpiryDateAvailable string `json:"expiry_date_available" binding:"required"`
	Platform            string `json:"platform" binding:"required"`
	NafdacNumberPresent string `json:"nafdac_number_present" binding:"required"`
	PackageDescription  string `json:"package_description" binding:"required"`
}

// ToRecord converts the listing into a generic ProductRecord.
func (l *DrugListing) ToRecord() *ProductRecord {
	return &ProductRecord{
		Category: CategoryDrug,
		Fields: map[string]string{
			"drug_name":             l.DrugName,
			"price":                 strconv.Itoa(l.Price),
			"dosage":                l.Dosage,
			"form":                  l.Form,
			"brand_name":            l.BrandName,
			"medicine_type":         l.MedicineType,
			"pack_size":             l.PackSize,
			"indications":           l.Indications,
			"side_effects":          l.SideEffects,
			"expiry_date_available": l.ExpiryDateAvailable,
			"platform":              l.Platform,
			"nafdac_number_present": l.NafdacNumberPresent,
			"package_description":   l.PackageDescription,
		},
	}
}

// BabyProductListing is the request schema for a baby-product check.
type BabyProductListing struct {
	Name               string `json:"name" binding:"required"`
	BrandName          string `json:"brand_name" binding:"required"`
	PriceInNaira       int    `json:"price_in_naira" binding:"required"`
	Platform           string `json:"platform" binding:"required"`
	ProductType        string `json:"product_type" binding:"required"`
	AgeGroup           string `json:"age_group" binding:"required"`
	PackageDescription string `json:"package_description" binding:"required"`
	VisibleExpiryDate  string `json:"visible_expiry_date" binding:"required"`
}

// ToRecord converts the listing into a generic ProductRecord.
func (l *BabyProductListing) ToRecord() *ProductRecord {
	return &ProductRecord{
		Category: CategoryBabyProduct,
		Fields: map[string]string{
			"name":                l.Name,
			"brand_name":          l.BrandName,
			"price_in_naira":      strconv.Itoa(l.PriceInNaira),
			"platform":            l.Platform,
			"product_type":        l.ProductType,
			"age_group":           l.AgeGroup,
			"package_description": l.PackageDescription,
			"visible_expiry_date": l.VisibleExpiryDate,
		},
	}
}
