package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Rate-table input error codes
const (
	CodeInvalidDimension     Code = "INVALID_DIMENSION"
	CodeRowLengthMismatch    Code = "ROW_LENGTH_MISMATCH"
	CodeMalformedToken       Code = "MALFORMED_TOKEN"
	CodeUnexpectedEOF        Code = "UNEXPECTED_EOF"
	CodeNonPositiveRate      Code = "NON_POSITIVE_RATE"
	CodeDimensionCapExceeded Code = "DIMENSION_CAP_EXCEEDED"
	CodeInputOpenFailed      Code = "INPUT_OPEN_FAILED"
	CodeInputDecodeFailed    Code = "INPUT_DECODE_FAILED"
)

// Detection and reporting error codes
const (
	CodeDetectionFailed   Code = "DETECTION_FAILED"
	CodeReportWriteFailed Code = "REPORT_WRITE_FAILED"
)
