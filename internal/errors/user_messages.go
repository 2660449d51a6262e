package errors

// User-friendly error messages, used when no localized variant is available.
const (
	MsgPropertyNotFound   = "The property you're looking for doesn't exist."
	MsgInvalidForm        = "Please check the highlighted fields and try again."
	MsgRelayFailed        = "Sorry, there was an error sending your message. Please try again."
	MsgRateLimited        = "You're sending requests too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgServiceUnavailable = "The service is temporarily unavailable. Please try again in a few minutes."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)

// Message catalog keys for the messages above.
const (
	KeyPropertyNotFound   = "errors.propertyNotFound"
	KeyInvalidForm        = "errors.invalidForm"
	KeyRelayFailed        = "contact.form.errorMessage"
	KeyRateLimited        = "errors.rateLimited"
	KeyInvalidParameters  = "errors.invalidParameters"
	KeyServiceUnavailable = "errors.serviceUnavailable"
	KeyInternalError      = "errors.internal"
)
