package constvars

const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderXRequestID  = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
	MIMEOctetStream     = "application/octet-stream"
)

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)
