package interfaces

// Logger is the structured logger used by every core component.
//
// Example usage:
//
//	logger.Error("Failed to retrieve article page", map[string]interface{}{
//		"url":         "https://example.com/a",
//		"status_code": 404,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs run progress and outcomes.
	Info(msg string, fields map[string]interface{})

	// Warn logs conditions that degrade a candidate but do not stop the run.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
