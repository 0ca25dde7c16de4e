package metrics

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetch downloads a metrics document over http(s). Transient failures are
// retried twice before giving up; anything other than a 200 is an error.
func Fetch(url string) ([]byte, error) {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch metrics data: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch metrics data: %s returned %s", url, resp.Status())
	}
	return resp.Body(), nil
}
