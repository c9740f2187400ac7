package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"
	RouteMe       = RouteAuth + "/me"

	// images
	RouteImages         = RouteApiV1 + "/images"
	RouteImage          = RouteImages + "/:image_id"
	RouteImageUploadURL = RouteImages + "/upload-url"
	RouteImageConfirm   = RouteImages + "/confirm"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
