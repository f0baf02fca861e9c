package types

// SuccessEnvelope wraps every successful API response.
type SuccessEnvelope struct {
	Status bool `json:"status"`
	Data   any  `json:"data"`
}

// ErrorEnvelope wraps every failed API response. ErrNo distinguishes
// validation, invalid-input, not-found and dependency failures so clients do
// not have to parse ErrMsg.
type ErrorEnvelope struct {
	Status  bool   `json:"status"`
	ErrNo   int    `json:"errNo"`
	ErrMsg  string `json:"errMsg"`
	Details any    `json:"details,omitempty"`
}
