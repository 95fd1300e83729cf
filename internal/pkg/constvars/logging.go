package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"

	LoggingLocationKey      = "location"
	LoggingPatientIDKey     = "patient_id"
	LoggingPatientCountKey  = "patient_count"
	LoggingTotalRecordsKey  = "total_records"
	LoggingPageKey          = "page"
	LoggingLimitKey         = "limit"
	LoggingSearchTermKey    = "search_term"
	LoggingStaffEmailKey    = "staff_email"
	LoggingCacheKey         = "cache_key"
	LoggingPipelineKey      = "pipeline"
	LoggingCollectionKey    = "collection"
	LoggingObjectNameKey    = "object_name"
	LoggingBucketNameKey    = "bucket_name"
	LoggingQueueNameKey     = "queue_name"
	LoggingKeepAliveURLKey  = "keep_alive_url"
	LoggingKeepAliveCronKey = "keep_alive_cron"
	LoggingHTTPStatusKey    = "http_status"
)
