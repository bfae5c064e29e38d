package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/petitpas/storefront/internal/domain"
)

const accessTokenHeader = "X-Storefront-Access-Token"

// Client talks to the commerce platform's single query/mutation endpoint.
// It is the only component allowed to speak the gateway's wire format;
// everything it returns is already reshaped into domain types.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
	}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// query issues one request and decodes the data payload into out.
// Transport and query-level failures map to ErrGatewayUnavailable; the
// caller never retries.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	var envelope gqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGatewayUnavailable, err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, envelope.Errors[0].Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%w: decode data: %v", domain.ErrGatewayUnavailable, err)
		}
	}
	return nil
}

// userError converts the first gateway-reported user error into the domain
// sentinel so adapters upstream can show the message verbatim.
func userError(errs []wireUserError) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrGatewayUserError, errs[0].Message)
}
