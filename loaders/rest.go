package loaders

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	q "github.com/teamkeel/graphgate/query"
	"github.com/teamkeel/graphgate/runtime/common"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TotalCountHeader is where the backend reports the size of the full result
// set when asked for it with total_count=true.
const TotalCountHeader = "X-Total-Count"

// REST fetches pages from a JSON list endpoint that takes page and size query
// parameters and returns a JSON array.
type REST[T any] struct {
	// URL of the list endpoint. Existing query parameters are kept.
	URL    string
	Client *http.Client
	Header http.Header
}

// NewREST returns a REST loader whose client is traced with otelhttp.
func NewREST[T any](endpoint string, timeout time.Duration) *REST[T] {
	return &REST[T]{
		URL: endpoint,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Fetch implements q.FetchFunc.
func (r *REST[T]) Fetch(ctx context.Context, req q.PageRequest) (q.FetchResult[T], error) {
	u, err := url.Parse(r.URL)
	if err != nil {
		return q.FetchResult[T]{}, errors.Wrap(err, "parsing backend url")
	}

	values := u.Query()
	values.Set("page", strconv.Itoa(req.Page))
	values.Set("size", strconv.Itoa(req.Size))
	if req.WantTotalCount {
		values.Set("total_count", "true")
	}
	u.RawQuery = values.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return q.FetchResult[T]{}, errors.Wrap(err, "creating backend request")
	}
	httpReq.Header.Set("Accept", "application/json")
	for k, values := range r.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return q.FetchResult[T]{}, ctxErr
		}
		return q.FetchResult[T]{}, errors.Wrap(common.ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return q.FetchResult[T]{}, errors.Wrap(common.ErrUnavailable, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithFields(log.Fields{
			"url":    u.String(),
			"status": resp.StatusCode,
		}).Warn("backend request failed")
		return q.FetchResult[T]{}, common.NewBackendError(resp.StatusCode, backendMessage(body))
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return q.FetchResult[T]{}, common.NewBackendError(resp.StatusCode, "malformed response: "+err.Error())
	}
	if items == nil {
		items = []T{}
	}

	result := q.FetchResult[T]{Items: items}

	if header := resp.Header.Get(TotalCountHeader); header != "" {
		total, err := strconv.Atoi(header)
		if err != nil || total < 0 {
			return q.FetchResult[T]{}, common.NewBackendError(resp.StatusCode, "malformed "+TotalCountHeader+" header: "+header)
		}
		result.TotalCount = q.KnownTotal(total)
	}

	return result, nil
}

// backendMessage extracts {"error": "..."} or {"message": "..."} bodies,
// falling back to the raw body.
func backendMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return string(body)
}
