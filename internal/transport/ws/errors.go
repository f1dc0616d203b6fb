package ws

import "errors"

var (
	ErrUnauthorized = errors.New("ws: unauthorized")
	ErrMissingToken = errors.New("ws: missing access token")
)
