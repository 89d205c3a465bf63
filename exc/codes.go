package exc

const (
	CodeInvalidArgument         = "C0001"
	CodeEmptyValueAccess        = "C0002"
	CodeUnexpectedValuePresent  = "C0003"
	CodeFailureValueAccess      = "C0004"
	CodeUnexpectedFailureAccess = "C0005"
	CodeUnexpectedSuccessAccess = "C0006"
)
