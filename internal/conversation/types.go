package conversation

import "time"

// Exchange is one recorded input/response pair.
type Exchange struct {
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
