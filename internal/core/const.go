package core

const (
	// DocumentVersion is the version of the persisted filter document.
	DocumentVersion = 1

	// SizeLimit1Mb is the max request body size for the API (JSON payloads).
	SizeLimit1Mb = 1024 * 1024

	RequestIDHeader = "X-Request-Id"
)
