package httpx

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/vietct/orderflow-client/pkg/ctxmeta"
)

// RequestIDTransport:
// - берёт request_id из контекста запроса или генерирует UUID
// - проставляет его в исходящий заголовок X-Request-ID
// - не трогает заголовок, если вызывающая сторона поставила его сама
type RequestIDTransport struct {
	Base http.RoundTripper
}

// NewRequestIDTransport — обёртка над базовым транспортом (nil — http.DefaultTransport).
func NewRequestIDTransport(base http.RoundTripper) *RequestIDTransport {
	return &RequestIDTransport{Base: base}
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("X-Request-ID") == "" {
		requestID, ok := ctxmeta.RequestIDFromContext(req.Context())
		if !ok {
			requestID = uuid.New().String()
		}

		// RoundTripper не должен мутировать исходный запрос.
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", requestID)
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
