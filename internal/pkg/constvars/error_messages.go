package constvars

// Client-facing messages. Registry and transport failures are
// deliberately collapsed into one generic message; the form keeps its
// state so the clerk can resubmit.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientInvalidImageFormat            = "Invalid image format or size"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
)

// Developer messages.
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevQueryParamValidationFailed = "query parameter %s validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevImageValidationFailed      = "image validation failed"

	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"

	ErrDevPatientNotExists          = "patient does not exist"
	ErrDevUHIDAttemptsExhausted     = "uhid generation attempts exhausted without a free identifier"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevRabbitMQFailedToPublish   = "failed to publish message to queue"
	ErrDevRedisFailedToSet          = "failed to set value in redis"
	ErrDevRedisFailedToGet          = "failed to get value from redis"
)
