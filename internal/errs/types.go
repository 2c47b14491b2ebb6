package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// InvalidUserError rejects a malformed user identifier before it can reach
// the store. Never coerced into a query.
type InvalidUserError struct {
	ErrorMessage
}

// InvalidTimeWindowError rejects non-numeric or out-of-range month/year input.
type InvalidTimeWindowError struct {
	ErrorMessage
}

// StoreUnavailableError marks a store fetch that failed transiently
// (timeout, unavailable backend). Retryable by the caller.
type StoreUnavailableError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

type ExternalServiceError struct {
	ErrorMessage
	Service   string
	Transient bool
	Err       error
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidUserError() *InvalidUserError {
	return &InvalidUserError{
		ErrorMessage: ErrorMessage{Message: "invalid user ID format"},
	}
}

func NewInvalidTimeWindowError(message string) *InvalidTimeWindowError {
	return &InvalidTimeWindowError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewStoreUnavailableError(operation, message string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewExternalServiceError(service, message string, transient bool, err error) *ExternalServiceError {
	return &ExternalServiceError{
		ErrorMessage: ErrorMessage{Message: message},
		Service:      service,
		Transient:    transient,
		Err:          err,
	}
}
