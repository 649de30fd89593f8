package ollama

import "fmt"

// ConnectionError indicates the local model endpoint could not be reached.
type ConnectionError struct {
	Endpoint string
	Cause    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot reach model endpoint %s (is `ollama serve` running?): %v", e.Endpoint, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
