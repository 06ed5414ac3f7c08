package yatgtypes

type WebhookInfo struct {
	URL                  string
	HasCustomCertificate bool
	PendingUpdateCount   int
	IPAddress            *string
	LastErrorDate        *int64
	LastErrorMessage     *string
	MaxConnections       *int
	AllowedUpdates       []string
}

// ResponseParameters explains why a request failed and how to recover.
type ResponseParameters struct {
	MigrateToChatID *int64
	RetryAfter      *int
}

// Response is the envelope every Bot API method answers with. Result stays
// a raw tree so it can be fed into the decoder entry point matching the
// method that was called.
type Response struct {
	OK          bool
	Result      any
	ErrorCode   *int
	Description *string
	Parameters  *ResponseParameters
}
