// Пакет api — транспортный адаптер к REST-сервису OrderFlow:
// исходящие HTTP-вызовы, разбор JSON и нормализация ответов в view-модели.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vietct/orderflow-client/internal/apierr"
	"github.com/vietct/orderflow-client/internal/ports"
	"github.com/vietct/orderflow-client/pkg/ctxmeta"
	"github.com/vietct/orderflow-client/pkg/httpx"
	"github.com/vietct/orderflow-client/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Проверка, что Client закрывает оба шлюза.
var (
	_ ports.CatalogGateway = (*Client)(nil)
	_ ports.OrderGateway   = (*Client)(nil)
)

// ограничение на чтение тела ошибки: хватит для поля message.
const maxErrorBody = 1 << 20

// Options — настройки клиента.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int    // размер страницы каталога
	Sort     string // сортировка каталога
}

// Client — HTTP-клиент сервиса OrderFlow.
// Ретраев и собственных таймаутов сверх Options.Timeout нет:
// повтор — только по инициативе пользователя, отмена — через контекст.
type Client struct {
	baseURL  string
	hc       *http.Client
	log      ports.Logger
	pageSize int
	sort     string
}

// NewClient — конструктор. Транспорт: X-Request-ID + OTEL-трейсинг поверх
// стандартного http.DefaultTransport.
func NewClient(opts Options, log ports.Logger) *Client {
	if opts.PageSize <= 0 {
		opts.PageSize = 9
	}
	if opts.Sort == "" {
		opts.Sort = "createdAt,DESC"
	}

	transport := otelhttp.NewTransport(httpx.NewRequestIDTransport(nil))

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		hc: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		log:      log,
		pageSize: opts.PageSize,
		sort:     opts.Sort,
	}
}

// do — один HTTP-вызов: сборка запроса, классификация исхода, декодирование.
// Исходы: nil (успех), apierr.ErrNotFound (404), *apierr.ServerError (прочие
// не-2xx), *apierr.NetworkError (ответа нет). Паник и «сырых» ошибок наружу нет.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, query, body, out)
	elapsed := time.Since(start)

	metrics.APIRequests.WithLabelValues(op, outcomeLabel(apierr.KindOf(err))).Inc()
	metrics.APIRequestDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	rid, _ := ctxmeta.RequestIDFromContext(ctx)
	if err != nil {
		c.log.Warnf(ctx, "api call failed op=%s method=%s path=%s request_id=%s took=%s err=%v",
			op, method, path, rid, elapsed, err)
		return err
	}

	c.log.Infof(ctx, "api call op=%s method=%s path=%s request_id=%s took=%s",
		op, method, path, rid, elapsed)
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// request_id кладём в контекст заранее: его подхватит RequestIDTransport
	// и тот же идентификатор попадёт в логи.
	if _, ok := ctxmeta.RequestIDFromContext(ctx); !ok {
		ctx = ctxmeta.WithRequestID(ctx, uuid.New().String())
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &apierr.NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// 404 — всегда NotFound, независимо от тела.
	if resp.StatusCode == http.StatusNotFound {
		return apierr.ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apierr.ServerError{
			StatusCode: resp.StatusCode,
			Message:    failureMessage(resp),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// битое тело успешного ответа не должно ронять вызывающего
		return &apierr.ServerError{
			StatusCode: resp.StatusCode,
			Message:    apierr.GenericMessage(resp.StatusCode),
		}
	}
	return nil
}

// failureMessage — сообщение отказа из тела ответа: непустое поле message,
// иначе generic-текст. Любые проблемы разбора деградируют в generic.
func failureMessage(resp *http.Response) string {
	generic := apierr.GenericMessage(resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return generic
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return generic
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		return msg
	}
	return generic
}

func outcomeLabel(kind apierr.Kind) string {
	switch kind {
	case apierr.KindNone:
		return "ok"
	case apierr.KindNotFound:
		return "not_found"
	case apierr.KindNetwork:
		return "network_error"
	default:
		return "server_error"
	}
}
