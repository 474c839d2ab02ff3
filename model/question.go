package model

// Question is the body sent to the ask endpoint.
// The text is sent exactly as typed: no trimming, no empty check.
type Question struct {
	Question string `json:"question"`
}
