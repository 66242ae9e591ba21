package model

// AdjustRequestBody is the payload of the measure-editing endpoint. Action
// is one of "add", "shift", "remove" or "shift-time"; the remaining fields
// only matter for the actions that read them.
type AdjustRequestBody struct {
	Action   string  `json:"action"`
	Measure  int     `json:"measure"`
	Note     string  `json:"note,omitempty"`
	Rest     bool    `json:"rest,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Start    float64 `json:"start,omitempty"`
	Offset   float64 `json:"offset,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
