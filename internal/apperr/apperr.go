// Package apperr define la taxonomía de errores que la API expone al cliente.
//
// Cada error de dominio lleva un Kind; los handlers solo miran el Kind para
// elegir el status HTTP, el resto del mensaje es diagnóstico.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindUnknown               Kind = ""
	KindInvalidArgument       Kind = "InvalidArgument"
	KindUnauthenticated       Kind = "Unauthenticated"
	KindMalformedIdentity     Kind = "MalformedIdentity"
	KindMovieNotFound         Kind = "MovieNotFound"
	KindConflict              Kind = "Conflict"
	KindUpstreamUnavailable   Kind = "UpstreamUnavailable"
	KindUpstreamError         Kind = "UpstreamError"
	KindUpstreamProtocolError Kind = "UpstreamProtocolError"
	KindStorageError          Kind = "StorageError"
)

// Error es un error clasificado. Op indica la operación que falló
// (p.ej. "rating.submit") y Err la causa original, si existe.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New crea un error clasificado sin causa.
func New(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap clasifica err. Si err ya tiene un Kind, se conserva la cadena pero
// el Kind exterior manda.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf devuelve el Kind más externo de la cadena, o KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reporta si err (o algo que envuelve) es de la clase kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Retryable indica si el cliente puede reintentar la misma petición.
func Retryable(err error) bool {
	return KindOf(err) == KindUpstreamUnavailable
}

// HTTPStatus traduce un Kind al status que espera el cliente.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidArgument, KindMalformedIdentity:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindMovieNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstreamUnavailable, KindUpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
