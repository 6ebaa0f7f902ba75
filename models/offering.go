package models

// ServiceOffering identifies one of the bookable course products.
type ServiceOffering string

const (
	FullPackage   ServiceOffering = "fullPackage"
	GroupPackage  ServiceOffering = "groupPackage"
	TestReadiness ServiceOffering = "testReadiness"
)

// ValidOffering reports whether s names a known offering.
func ValidOffering(s ServiceOffering) bool {
	switch s {
	case FullPackage, GroupPackage, TestReadiness:
		return true
	}
	return false
}

// PriceList carries the base unit price of each offering.
type PriceList struct {
	FullPackage   float64 `json:"fullPackage"`
	GroupPackage  float64 `json:"groupPackage"`
	TestReadiness float64 `json:"testReadiness"`
}

// QuoteLine is the contribution of a single offering to a quote.
type QuoteLine struct {
	Offering ServiceOffering `json:"offering"`
	Units    int             `json:"units"`
	Subtotal float64         `json:"subtotal"`
	Discount float64         `json:"discount"`
}

// Quote is the customer-facing total for a selection.
type Quote struct {
	TotalPrice    float64     `json:"totalPrice"`
	TotalDiscount float64     `json:"totalDiscount"`
	Lines         []QuoteLine `json:"lines,omitempty"`
}
