package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hrflow/internal/navigation"
)

const maxErrorBody = 4 << 10

// HTTPConfig configures the employee details REST client.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// HTTPFetcher calls GET {base}/api/v1/get/getEmpDetails/{id}/{apiKey}.
type HTTPFetcher struct {
	baseURL    string
	apiKey     string
	retryLimit int
	client     *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// empDetailsResponse is the envelope returned by the details endpoint.
type empDetailsResponse struct {
	Data struct {
		EmpID     string `json:"empId"`
		Status    string `json:"status"`
		InAppRole string `json:"inAppRole"`
		Company   string `json:"company"`
	} `json:"data"`
}

// NewHTTPFetcher builds a REST fetcher. BaseURL and APIKey are required.
func NewHTTPFetcher(cfg HTTPConfig) (*HTTPFetcher, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("profile base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse profile base url: %w", err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("profile api key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &HTTPFetcher{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		retryLimit: retries,
		client:     hc,
	}, nil
}

// Fetch retrieves the record. Network failures and 5xx responses are retried
// up to the configured limit; everything else is returned at once.
func (f *HTTPFetcher) Fetch(ctx context.Context, id string) (navigation.UserRecord, error) {
	endpoint := f.baseURL + "/api/v1/get/getEmpDetails/" + url.PathEscape(id) + "/" + url.PathEscape(f.apiKey)

	attempts := f.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		rec, err := f.get(ctx, endpoint, id)
		if err == nil {
			return rec, nil
		}
		lastErr = err
		if !retryable(err) || attempt == attempts-1 {
			break
		}
		delay := time.Duration(attempt+1) * 200 * time.Millisecond
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return navigation.UserRecord{}, &FetchError{Kind: KindNetworkError, ID: id, Err: ctx.Err()}
		case <-timer.C:
		}
	}
	return navigation.UserRecord{}, lastErr
}

func retryable(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	switch fe.Kind {
	case KindNetworkError:
		return true
	case KindServerError:
		return fe.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}

func (f *HTTPFetcher) get(ctx context.Context, endpoint, id string) (navigation.UserRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return navigation.UserRecord{}, &FetchError{Kind: KindNetworkError, ID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return navigation.UserRecord{}, &FetchError{Kind: KindNetworkError, ID: id, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return navigation.UserRecord{}, &FetchError{Kind: KindNotFound, ID: id, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return navigation.UserRecord{}, &FetchError{
			Kind:       KindServerError,
			ID:         id,
			StatusCode: resp.StatusCode,
			Err:        errors.New(strings.TrimSpace(string(body))),
		}
	}

	var payload empDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return navigation.UserRecord{}, &FetchError{
			Kind:       KindServerError,
			ID:         id,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode employee details: %w", err),
		}
	}

	return navigation.UserRecord{
		ID:      payload.Data.EmpID,
		Status:  navigation.Status(payload.Data.Status),
		Role:    payload.Data.InAppRole,
		Company: payload.Data.Company,
	}, nil
}
