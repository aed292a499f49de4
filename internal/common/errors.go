package common

import (
	"errors"
	"net/http"
)

// Error kinds for the whole API. Services wrap these with %w plus detail;
// handlers map them to HTTP statuses and user-safe messages.
var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrRateLimited         = errors.New("rate limited")
	ErrGenerationParse     = errors.New("generation parse error")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrNotFound            = errors.New("not found")
	ErrPersistence         = errors.New("persistence error")
)

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns what the client is allowed to see. Internal detail
// for 5xx kinds stays in the server logs.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return "Muitas gerações em sequência. Aguarde um minuto e tente novamente."
	case errors.Is(err, ErrUnauthorized):
		return "Sessão inválida ou expirada."
	case errors.Is(err, ErrNotFound):
		return "Recurso não encontrado."
	case errors.Is(err, ErrGenerationParse), errors.Is(err, ErrProviderUnavailable):
		return "Falha ao gerar conteúdo. Tente novamente."
	case errors.Is(err, ErrPersistence):
		return "Falha ao salvar. Tente novamente."
	case errors.Is(err, ErrInvalidRequest):
		return err.Error()
	default:
		return "Erro interno."
	}
}
