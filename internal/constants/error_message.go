package constants

const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeWriteFailed     = "WRITE_FAILED"
)

const (
	ErrMsgInvalidArgument = "invalid generation parameters"
	ErrMsgWriteFailed     = "failed to write to output stream"
)

var errorMessages = map[string]string{
	ErrCodeInvalidArgument: ErrMsgInvalidArgument,
	ErrCodeWriteFailed:     ErrMsgWriteFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}
