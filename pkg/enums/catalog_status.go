package enums

import "fmt"

// CatalogStatus tracks the storefront visibility of catalog entities
// (coupons, extras, categories).
type CatalogStatus string

const (
	CatalogStatusShowing CatalogStatus = "showing"
	CatalogStatusHidden  CatalogStatus = "hidden"
)

var validCatalogStatuses = []CatalogStatus{
	CatalogStatusShowing,
	CatalogStatusHidden,
}

// String implements fmt.Stringer.
func (s CatalogStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CatalogStatus.
func (s CatalogStatus) IsValid() bool {
	for _, candidate := range validCatalogStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCatalogStatus converts raw input into a CatalogStatus.
func ParseCatalogStatus(value string) (CatalogStatus, error) {
	for _, candidate := range validCatalogStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid catalog status %q", value)
}
