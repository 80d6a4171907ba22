package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/flat-peak/go-sdk/pkg/errs"
	"github.com/flat-peak/go-sdk/pkg/models"
)

// BuildURL normalizes a configured host into a base URL. Hosts without
// a scheme default to https.
func BuildURL(host string) string {
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		return host
	}

	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	return host
}

func Get[T any](ctx context.Context, client *http.Client, url string, query url.Values) (T, error) {
	var m T
	r, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return m, err
	}

	if len(query) > 0 {
		merged := r.URL.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		r.URL.RawQuery = merged.Encode()
	}

	return doRequest[T](client, r)
}

func Post[T any](ctx context.Context, client *http.Client, url string, data any, query url.Values) (T, error) {
	return requestWithBody[T](ctx, client, "POST", url, data, query)
}

func Put[T any](ctx context.Context, client *http.Client, url string, data any, query url.Values) (T, error) {
	return requestWithBody[T](ctx, client, "PUT", url, data, query)
}

func Patch[T any](ctx context.Context, client *http.Client, url string, data any) (T, error) {
	return requestWithBody[T](ctx, client, "PATCH", url, data, nil)
}

func Delete(ctx context.Context, client *http.Client, url string) error {
	r, err := http.NewRequestWithContext(ctx, "DELETE", url, nil)
	if err != nil {
		return err
	}

	_, err = doRequest[struct{}](client, r)
	return err
}

func requestWithBody[T any](ctx context.Context, client *http.Client, method string, url string, data any, query url.Values) (T, error) {
	var m T
	var reader io.Reader
	if data != nil {
		b, err := toJSON(data)
		if err != nil {
			return m, err
		}
		reader = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return m, err
	}

	if len(query) > 0 {
		r.URL.RawQuery = query.Encode()
	}

	return doRequest[T](client, r)
}

func doRequest[T any](client *http.Client, r *http.Request) (T, error) {
	var m T
	res, err := client.Do(r)
	if err != nil {
		return m, err
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return m, err
	}

	return decodeResponse[T](res.StatusCode, body)
}

// decodeResponse converts an API response into a typed value. A JSON
// body with `object == "error"` is surfaced as *errs.APIError carrying
// the remote message verbatim, regardless of status code.
func decodeResponse[T any](statusCode int, body []byte) (T, error) {
	var m T
	if failure, err := ParseJSON[models.FailureResponse](body); err == nil && failure.Object == models.ObjectError {
		return m, &errs.APIError{Message: failure.Message}
	}

	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return m, fmt.Errorf("unexpected status code %d: %s", statusCode, string(body))
	}

	if len(body) == 0 {
		return m, nil
	}

	return ParseJSON[T](body)
}

// accountQuery scopes a request to an explicit account. Without it the
// remote side uses the default account of the authenticating key.
func accountQuery(accountID string) url.Values {
	if accountID == "" {
		return nil
	}

	query := url.Values{}
	query.Set("account_id", accountID)
	return query
}

func ParseJSON[T any](s []byte) (T, error) {
	var r T
	if err := json.Unmarshal(s, &r); err != nil {
		return r, err
	}
	return r, nil
}

func toJSON(T any) ([]byte, error) {
	return json.Marshal(T)
}
