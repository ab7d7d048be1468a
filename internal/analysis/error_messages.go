package analysis

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference.
//
// Error codes are grouped by category:
//
//	CSV001 - Empty input: The request body contained no CSV data
//	CSV002 - Malformed CSV: A data row's cell count differs from the header
//	CSV003 - Disallowed content: Input contains content rejected by policy
//	ANL001 - Not found: No analysis exists with the requested id
//	ING001 - System busy: Too many concurrent ingests
//	DB001  - Storage unavailable: The database cannot be reached
//	REQ001 - Request cancelled
//	REQ002 - Request timed out
//	ERR000 - Unknown error (fallback)
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "cannot be empty",
		msg: UserMessage{
			Message: "CSV data cannot be empty",
			Action:  "Send non-empty CSV text in the request body",
			Code:    "CSV001",
		},
	},
	{
		pattern: "invalid csv format",
		msg: UserMessage{
			Message: "The CSV is malformed: a row has the wrong number of columns",
			Action:  "Ensure every row has the same number of cells as the header",
			Code:    "CSV002",
		},
	},
	{
		pattern: "is not allowed",
		msg: UserMessage{
			Message: "The CSV contains disallowed content",
			Action:  "Remove the flagged content and try again",
			Code:    "CSV003",
		},
	},
	{
		pattern: "analysis not found",
		msg: UserMessage{
			Message: "No analysis exists with that id",
			Action:  "Verify the id, or list analyses to find the right one",
			Code:    "ANL001",
		},
	},
	{
		pattern: "too many concurrent ingests",
		msg: UserMessage{
			Message: "Too many analyses are in progress",
			Action:  "Please wait a moment and try again",
			Code:    "ING001",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to reach the database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "REQ002",
		},
	},
}

// MapError converts a technical error to a user-friendly message.
// Unmatched errors map to the generic ERR000 message; the technical detail
// belongs in server logs, not client responses.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{Message: "Success", Code: ""}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}

// FormatUserError renders a UserMessage as a single line for logs.
func FormatUserError(msg UserMessage) string {
	if msg.Action != "" {
		return fmt.Sprintf("%s. %s (ref: %s)", msg.Message, msg.Action, msg.Code)
	}
	return fmt.Sprintf("%s (ref: %s)", msg.Message, msg.Code)
}
