package constant

import (
	"time"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValueSortBy  = "id"
	DefaultValueSortDir = "ASC"
)

const (
	DateFormat = time.RFC3339Nano
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelHTTPScopeName       = "http"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderUserAgent   = "User-Agent"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
)

const (
	ServerEnvDevelopment = "development"
)
