package constvars

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

	LoggingViewKey           = "view"
	LoggingAcademicYearIDKey = "academic_year_id"
	LoggingClassIDKey        = "class_id"
	LoggingTeacherIDKey      = "teacher_id"
	LoggingSubjectIDKey      = "subject_id"
	LoggingWeekStartKey      = "week_start"
	LoggingCacheKeyKey       = "cache_key"
	LoggingEntryCountKey     = "entry_count"
	LoggingExceptionCountKey = "exception_count"
	LoggingTermCountKey      = "term_count"
)
