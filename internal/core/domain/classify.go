package domain

import "strings"

// Stop codes with a dedicated classification. Any other value, including
// codes introduced by the platform later, classifies as ErrorCodeUnknown.
const (
	StopCodeEssentialContainerExited = "EssentialContainerExited"
	StopCodeTaskFailedToStart        = "TaskFailedToStart"
)

const (
	// ErrorCodeUnknown is the fallback error code.
	ErrorCodeUnknown = "UnknownError"
	// ErrorMessageUnknown is the fallback error message.
	ErrorMessageUnknown = "An unknown error occurred"
)

// reasonSeparator splits a pre-formatted "code: message" stopped reason.
const reasonSeparator = ": "

// Classification is the normalized error signal of a stopped task.
type Classification struct {
	Code    string
	Message string
}

var stopCodeClassifications = map[string]Classification{
	StopCodeEssentialContainerExited: {
		Code:    StopCodeEssentialContainerExited,
		Message: "Essential container in task exited",
	},
	StopCodeTaskFailedToStart: {
		Code:    StopCodeTaskFailedToStart,
		Message: "Task failed to transition to a RUNNING state",
	},
}

// Classify maps a stop code and stopped reason to an error code and message.
//
// A reason containing ": " is split once, on its first separator, so colons
// inside the message survive verbatim. Otherwise the stop code is looked up,
// falling back to UnknownError.
func Classify(stopCode, stoppedReason string) Classification {
	if code, message, found := strings.Cut(stoppedReason, reasonSeparator); found {
		return Classification{Code: code, Message: message}
	}

	if c, ok := stopCodeClassifications[stopCode]; ok {
		return c
	}

	return Classification{Code: ErrorCodeUnknown, Message: ErrorMessageUnknown}
}
