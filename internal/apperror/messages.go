package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// System errors
	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	// Rate-table input errors
	CodeInvalidDimension:     "Table dimension must be an integer of at least 2",
	CodeRowLengthMismatch:    "Rate row does not hold exactly N-1 entries",
	CodeMalformedToken:       "Input token is not a valid number",
	CodeUnexpectedEOF:        "Input ended in the middle of a table",
	CodeNonPositiveRate:      "Exchange rate must be positive",
	CodeDimensionCapExceeded: "Table dimension exceeds the configured cap",
	CodeInputOpenFailed:      "Failed to open input file",
	CodeInputDecodeFailed:    "Failed to decode input file",

	// Detection and reporting errors
	CodeDetectionFailed:   "Arbitrage detection failed",
	CodeReportWriteFailed: "Failed to write results",
}
