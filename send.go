package formtree

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultSendTimeout bounds [Node.Send].
const DefaultSendTimeout = 10 * time.Second

// Send POSTs the tree as an application/x-www-form-urlencoded body to
// rawURL and returns the response body. A single attempt with the default
// timeout; no retry. Any HTTP response counts as delivered — only transport
// failures return an error.
func (n *Node) Send(ctx context.Context, rawURL string) (string, error) {
	return n.SendTimeout(ctx, rawURL, DefaultSendTimeout)
}

// SendTimeout is [Node.Send] with an explicit cutoff covering the whole
// request, connect included.
func (n *Node) SendTimeout(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(n.Query()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
