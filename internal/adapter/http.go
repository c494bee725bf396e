package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/amishk599/jobharvester/internal/model"
)

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 512

// getJSON issues a GET to endpoint with the given query parameters and decodes
// the JSON body into an untyped value. Non-200 responses become *model.HTTPError.
func getJSON(ctx context.Context, client *http.Client, endpoint string, params url.Values) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		// The URL carries credentials; keep only the transport error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, urlErr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// extractList returns the records found under the first key that holds a
// non-empty array, or the payload itself when it is a top-level array.
// Items that are not JSON objects are skipped.
func extractList(payload any, keys ...string) []model.RawJob {
	var items []any
	switch p := payload.(type) {
	case []any:
		items = p
	case map[string]any:
		for _, k := range keys {
			if list, ok := p[k].([]any); ok && len(list) > 0 {
				items = list
				break
			}
		}
	}

	jobs := make([]model.RawJob, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			jobs = append(jobs, model.RawJob(obj))
		}
	}
	return jobs
}

// payloadError returns the provider's in-body error message, if any.
func payloadError(payload any) string {
	p, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	if msg, ok := p["error"].(string); ok {
		return msg
	}
	return ""
}
