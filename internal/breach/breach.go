// Package breach looks up passwords in the Have I Been Pwned corpus using
// the k-anonymity range API. Only the first five characters of the SHA-1
// digest ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.pwnedpasswords.com"

// Client queries the range API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the public API.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Count returns how many times the password appears in the breach corpus.
// Zero means the password was not found in the returned range.
func (c *Client) Count(ctx context.Context, password string) (int, error) {
	digest := fmt.Sprintf("%X", sha1.Sum([]byte(password)))
	prefix, suffix := digest[:5], digest[5:]

	url := c.baseURL + "/range/" + prefix
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("breach: create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("breach: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("breach: API returned %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		h, countStr, ok := strings.Cut(strings.TrimSpace(scanner.Text()), ":")
		if !ok {
			continue
		}
		if strings.EqualFold(h, suffix) {
			count, err := strconv.Atoi(strings.TrimSpace(countStr))
			if err != nil {
				return 0, fmt.Errorf("breach: parse count %q: %w", countStr, err)
			}
			return count, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("breach: read response: %w", err)
	}
	return 0, nil
}
