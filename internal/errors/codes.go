package errors

type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL_ERROR"

	CodeConfigValidation   Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError    Code = "CONFIG_READ_ERROR"
	CodeConfigParseError   Code = "CONFIG_PARSE_ERROR"
	CodeCredentialsMissing Code = "CREDENTIALS_MISSING"
	CodeSchemaRegistry     Code = "SCHEMA_REGISTRY_ERROR"

	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodeObjectNotFound    Code = "OBJECT_NOT_FOUND"
	CodeReportWriteError  Code = "REPORT_WRITE_ERROR"
)

func (c Code) String() string {
	return string(c)
}
