package placeorder

import "fmt"

// The pipeline reports exactly one of three failure kinds: a domain
// validation rejection, a pricing rejection, or an unexpected failure of an
// injected collaborator. No partial output accompanies an error.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type PricingError struct {
	Message string
}

func (e *PricingError) Error() string { return e.Message }

// ServiceInfo identifies the collaborator behind a remote-service failure.
type ServiceInfo struct {
	Name     string
	Endpoint string
}

type RemoteServiceError struct {
	Service ServiceInfo
	Err     error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service %s failed: %v", e.Service.Name, e.Err)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

func validationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func pricingError(message string) *PricingError {
	return &PricingError{Message: message}
}

func remoteServiceError(service string, err error) *RemoteServiceError {
	return &RemoteServiceError{Service: ServiceInfo{Name: service}, Err: err}
}
