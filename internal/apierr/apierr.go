// Пакет apierr — таксономия отказов клиента:
// ValidationError (локально, до запроса), ErrNotFound (ресурс отсутствует),
// ServerError (не-2xx с сообщением), NetworkError (транспортный сбой без ответа).
package apierr

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound — ресурс отсутствует (HTTP 404). Всегда отдельный исход,
// никогда не ServerError.
var ErrNotFound = errors.New("not found")

// ServerError — ответ сервера со статусом не-2xx (кроме 404).
type ServerError struct {
	StatusCode int
	Message    string // из поля message тела ответа либо generic-текст
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status=%d message=%q", e.StatusCode, e.Message)
}

// GenericMessage — текст по умолчанию, когда тело ошибки не дало message.
func GenericMessage(status int) string {
	return fmt.Sprintf("Request failed with status %d", status)
}

// NetworkError — запрос не дошёл до сервера или ответ не был получен.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError — локальная ошибка ввода; до транспортного слоя не доходит.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Kind — класс отказа для ветвления на границе координатора.
type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindServer     Kind = "server"
	KindNetwork    Kind = "network"
)

// KindOf — классификация произвольной ошибки.
// Отмена/дедлайн контекста считаются сетевым отказом: ответа нет.
func KindOf(err error) Kind {
	var (
		srvErr *ServerError
		netErr *NetworkError
		valErr *ValidationError
	)

	switch {
	case err == nil:
		return KindNone

	case errors.As(err, &valErr):
		return KindValidation

	case errors.Is(err, ErrNotFound):
		return KindNotFound

	case errors.As(err, &srvErr):
		return KindServer

	case errors.As(err, &netErr),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return KindNetwork

	default:
		return KindServer
	}
}

// Message — человекочитаемый текст отказа для показа пользователю.
func Message(err error) string {
	var (
		srvErr *ServerError
		valErr *ValidationError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &valErr):
		return valErr.Message
	case errors.Is(err, ErrNotFound):
		return "Not found."
	case errors.As(err, &srvErr):
		return srvErr.Message
	default:
		return err.Error()
	}
}
