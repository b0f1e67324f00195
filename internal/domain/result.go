package domain

type ResultKind uint8

const (
	ResultSuccess ResultKind = iota
	ResultValidationFailure
	ResultAPIFailure
	ResultNetworkFailure
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "SUCCESS"
	case ResultValidationFailure:
		return "VALIDATION_FAILURE"
	case ResultAPIFailure:
		return "API_FAILURE"
	case ResultNetworkFailure:
		return "NETWORK_FAILURE"
	default:
		return "UNSPECIFIED"
	}
}

// ExecutionResult is the single outcome of one order invocation. Exactly
// one variant applies; the boundary layer maps non-success kinds to a
// non-zero exit code.
type ExecutionResult struct {
	Kind     ResultKind
	Order    *OrderAck
	Reason   string
	Code     int
	Attempts int
}

func Success(ack *OrderAck) ExecutionResult {
	return ExecutionResult{Kind: ResultSuccess, Order: ack}
}

func ValidationFailure(err error) ExecutionResult {
	return ExecutionResult{Kind: ResultValidationFailure, Reason: err.Error()}
}

func APIFailure(code int, msg string, attempts int) ExecutionResult {
	return ExecutionResult{Kind: ResultAPIFailure, Code: code, Reason: msg, Attempts: attempts}
}

func NetworkFailure(reason string, attempts int) ExecutionResult {
	return ExecutionResult{Kind: ResultNetworkFailure, Reason: reason, Attempts: attempts}
}

func (r ExecutionResult) OK() bool {
	return r.Kind == ResultSuccess
}
