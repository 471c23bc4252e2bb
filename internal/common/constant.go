// Package common contains shared constants and sentinel errors used across
// QuizBoard components.
package common

// RequestIDHeaderName is the HTTP header used to tag every outbound API
// request with a unique identifier.
const RequestIDHeaderName = "X-Request-ID"

// GenericErrorMessage is shown when the remote API gives no better reason.
const GenericErrorMessage = "Something went wrong"
