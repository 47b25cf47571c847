package httperr

import (
	"errors"
	"fmt"
)

// BusinessError: regra de negócio violada (estado inválido, não encontrado).
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ValidationError: campo obrigatório ausente ou malformado.
type ValidationError struct {
	Field string
	Code  string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

func ErrValidation(field, code string) error {
	return ValidationError{Field: field, Code: code}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ConflictError: horário ocupado entre a leitura e a escrita.
type ConflictError struct {
	Code string
}

func (e ConflictError) Error() string {
	return e.Code
}

func ErrConflict(code string) error {
	return ConflictError{Code: code}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// ExternalServiceError: falha de um colaborador remoto (IA, storage, pagamento).
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e ExternalServiceError) Unwrap() error {
	return e.Err
}

func ErrExternal(service string, err error) error {
	return ExternalServiceError{Service: service, Err: err}
}

func IsExternal(err error) bool {
	var ee ExternalServiceError
	return errors.As(err, &ee)
}

// Code extrai o código estável de qualquer erro da taxonomia.
func Code(err error) string {
	var (
		be BusinessError
		ve ValidationError
		ce ConflictError
		ee ExternalServiceError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Code
	case errors.As(err, &ce):
		return ce.Code
	case errors.As(err, &be):
		return be.Code
	case errors.As(err, &ee):
		return "external_service_error"
	default:
		return "internal_error"
	}
}
