package enums

import "fmt"

// TierStatus tracks whether a profit grid tier participates in rate
// resolution. Only active tiers are consulted; inactive tiers may be stored
// in any state pending reactivation.
type TierStatus string

const (
	TierStatusActive   TierStatus = "active"
	TierStatusInactive TierStatus = "inactive"
)

var validTierStatuses = []TierStatus{
	TierStatusActive,
	TierStatusInactive,
}

// String implements fmt.Stringer.
func (s TierStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TierStatus.
func (s TierStatus) IsValid() bool {
	for _, candidate := range validTierStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTierStatus converts raw input into a TierStatus.
func ParseTierStatus(value string) (TierStatus, error) {
	for _, candidate := range validTierStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tier status %q", value)
}
