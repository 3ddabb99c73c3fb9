package errors

import "net/http"

var ErrTooManyRequests = &Exception{
	Message:    "Too Many Attempts.",
	StatusCode: http.StatusTooManyRequests,
}
