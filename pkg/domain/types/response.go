package types

import "fmt"

// Response represents the answer given to a library question.
// An unanswered question carries no Response at all (nil pointer on the
// Answer entity), which is distinct from any of these values.
type Response string

const (
	ResponseYes           Response = "YES"
	ResponseNo            Response = "NO"
	ResponsePostponed     Response = "POSTPONED"
	ResponseNotApplicable Response = "NOT_APPLICABLE"
)

// AllResponses returns all valid responses
func AllResponses() []Response {
	return []Response{
		ResponseYes,
		ResponseNo,
		ResponsePostponed,
		ResponseNotApplicable,
	}
}

// IsValid checks if the response is valid
func (r Response) IsValid() bool {
	switch r {
	case ResponseYes,
		ResponseNo,
		ResponsePostponed,
		ResponseNotApplicable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the response
func (r Response) String() string {
	return string(r)
}

// ParseResponse parses a string into a Response
func ParseResponse(s string) (Response, error) {
	resp := Response(s)
	if !resp.IsValid() {
		return "", fmt.Errorf("invalid response: %s", s)
	}
	return resp, nil
}
