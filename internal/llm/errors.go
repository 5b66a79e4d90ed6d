package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rotisserie/eris"

	"smartdna/internal/domain"
)

// ErrorKind clasifica una falla de proveedor.
type ErrorKind string

const (
	KindStatus    ErrorKind = "status"
	KindTimeout   ErrorKind = "timeout"
	KindTransport ErrorKind = "transport"
	KindEmpty     ErrorKind = "empty"
)

// ProviderError es la falla tipada de una llamada a proveedor.
type ProviderError struct {
	Provider   domain.ProviderID
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: api call failed: status=%d", e.Provider, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsTimeout indica si la falla fue por deadline.
func IsTimeout(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Kind == KindTimeout {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func statusError(provider domain.ProviderID, status int) error {
	return &ProviderError{Provider: provider, Kind: KindStatus, StatusCode: status}
}

func emptyError(provider domain.ProviderID) error {
	return &ProviderError{Provider: provider, Kind: KindEmpty, Err: eris.New("empty response")}
}

// transportError clasifica errores de red/SDK; los deadlines se marcan como timeout.
// La cancelacion del llamador se devuelve tal cual para que no dispare fallback.
func transportError(provider domain.ProviderID, err error, msg string) error {
	if errors.Is(err, context.Canceled) {
		return eris.Wrap(err, msg)
	}
	kind := KindTransport
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &ProviderError{Provider: provider, Kind: kind, Err: eris.Wrap(err, msg)}
}
