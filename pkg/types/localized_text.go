package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// LocalizedText holds the Arabic and English renditions of a catalog text
// field. It is stored as a jsonb column and always replaced whole on update,
// never merged field by field.
type LocalizedText struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// IsEmpty reports whether both renditions are blank.
func (t LocalizedText) IsEmpty() bool {
	return strings.TrimSpace(t.Ar) == "" && strings.TrimSpace(t.En) == ""
}

// Value marshals LocalizedText into its jsonb representation.
func (t LocalizedText) Value() (driver.Value, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("localized text: %w", err)
	}
	return string(raw), nil
}

// Scan reads LocalizedText back from its jsonb representation.
func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = LocalizedText{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("localized text: unsupported scan type %T", value)
	}

	return json.Unmarshal(raw, t)
}
