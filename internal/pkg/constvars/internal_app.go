package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResponseUnknown = "unknown"

	// WeekScheduleCacheKeyFormat is academic year id, view kind, entity id,
	// week start date.
	WeekScheduleCacheKeyFormat = "week-schedule:%d:%s:%d:%s"
)
