package api

import "github.com/foodbridge-inc/foodbridge-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrIdentityTaken.Error(),
		1101: store.ErrActorNotFound.Error(),

		1200: store.ErrListingNotFound.Error(),
		1201: store.ErrListingNotAvailable.Error(),
		1202: store.ErrListingAlreadyClaimed.Error(),
		1203: store.ErrNotListingOwner.Error(),

		1300: store.ErrClaimNotFound.Error(),

		1400: store.ErrNotificationNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorIdentityTaken = errorJSON(1100)
	errorActorNotFound = errorJSON(1101)

	errorListingNotFound       = errorJSON(1200)
	errorListingNotAvailable   = errorJSON(1201)
	errorListingAlreadyClaimed = errorJSON(1202)
	errorNotListingOwner       = errorJSON(1203)

	errorClaimNotFound = errorJSON(1300)

	errorNotificationNotFound = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
