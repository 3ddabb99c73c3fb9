package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Message:    "Unauthenticated.",
	StatusCode: http.StatusUnauthorized,
}
