package service

import (
	"errors"
	"fmt"
)

// ValidationError marca una entrada mal formada. Nunca se reintenta.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ConfigurationError indica que falta una credencial obligatoria para el
// proveedor elegido. No dispara fallback.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Component, e.Reason)
}

// IsValidationError reporta si err es (o envuelve) un ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConfigurationError reporta si err es (o envuelve) un ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
