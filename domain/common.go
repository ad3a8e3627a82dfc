package domain

var (
	MessagePong                 = "pong"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageRouteNotFound        = "route not found"
)
