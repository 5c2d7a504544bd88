package api

import "errors"

// Sentinel errors distinguishing the four failure classes callers route on.
// An expired session and an unreachable backend must never be conflated: the
// first sends the user to the auth screen, the second to the network-issue
// screen.
var (
	// ErrValidation is a user-correctable rejection (HTTP 406). The wrapped
	// message carries the server's `details` string for inline display.
	ErrValidation = errors.New("request rejected")

	// ErrUnauthorized means the session token is missing, invalid, or
	// expired (HTTP 401).
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNetwork means the request never produced an HTTP response:
	// timeout, DNS failure, connection refused.
	ErrNetwork = errors.New("backend unreachable")

	// ErrServer covers every other non-2xx response.
	ErrServer = errors.New("backend error")
)
