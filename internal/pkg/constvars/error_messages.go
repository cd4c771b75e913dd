package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"datetime":         "must be a date formatted as %s",
	"required_if":      "is required when %s is %s",
	"required_without": "is required when %s is not present",
	"view_kind":        "must be either 'class' or 'teacher'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"oneof":            true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"datetime":         true,
	"required_if":      true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please try again later"
	ErrClientSchoolBackendUnavailable      = "schedule data is temporarily unavailable, please try again later"
	ErrClientServerLongRespond             = "server takes too long to respond"
)

// Error messages for developers
const (
	ErrDevValidationFailed               = "input validation failed"
	ErrDevInvalidInput                   = "invalid input"
	ErrDevCannotParseJSON                = "cannot parse JSON payload"
	ErrDevCannotParseDate                = "cannot parse date value"
	ErrDevCannotMarshalJSON              = "cannot marshal JSON payload"
	ErrDevBuildRequest                   = "cannot build HTTP request"
	ErrDevSendRequest                    = "cannot send HTTP request"
	ErrDevDecodeResponseFailed           = "cannot decode %s response"
	ErrDevGetSchoolResourceFailed        = "cannot fetch %s from school backend"
	ErrDevURLQueryParamValidationFailed  = "query parameter %s is invalid"
	ErrDevRedisSetFailed                 = "cannot write to redis"
	ErrDevRedisGetFailed                 = "cannot read key %s from redis"
	ErrDevRedisDeleteFailed              = "cannot delete key from redis"
	ErrDevMissingRequestID               = "request id not found in context"
	ErrDevDeadlineExceeded               = "request deadline exceeded"
)
