package models

import "errors"

var (
	ErrFileSave        = errors.New("file save error")
	ErrToolUnavailable = errors.New("ffmpeg binary not found")
	ErrProcessTimeout  = errors.New("segmentation timed out")
	ErrToolExecution   = errors.New("ffmpeg exited with error")
	ErrNotFound        = errors.New("record not found")
)

// FailureKind классифицирует ошибку сплита для метрик и логов.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrToolUnavailable):
		return "tool_unavailable"
	case errors.Is(err, ErrProcessTimeout):
		return "timeout"
	case errors.Is(err, ErrToolExecution):
		return "tool_error"
	case errors.Is(err, ErrFileSave):
		return "save_error"
	default:
		return "internal"
	}
}
