package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Client is the interface implemented by exchange rate providers.
// It exists so services can accept a mock client in tests.
type Client interface {
	GetUSDBRL(ctx context.Context) (float64, error)
}

// RateClient provides methods for fetching currency quotes from the
// AwesomeAPI exchange rate service. It wraps an HTTP client and converts
// the provider's string-encoded numbers into float64 values.
type RateClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewRateClient creates a new exchange rate client with default HTTP settings.
// The token is optional; when set, it is passed to the provider to lift the
// anonymous request quota.
func NewRateClient(baseURL, token string) *RateClient {
	return &RateClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		token:      token,
	}
}

// GetUSDBRL fetches the current USD to BRL conversion rate. The bid price of
// the latest quote is used as the conversion rate.
func (c *RateClient) GetUSDBRL(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/json/last/USD-BRL", c.baseURL)
	if c.token != "" {
		url += "?token=" + c.token
	}

	result, err := c.queryProvider(ctx, url)
	if err != nil {
		return 0, err
	}

	if result.USDBRL.Bid == "" {
		return 0, fmt.Errorf("no USD-BRL quote returned")
	}

	rate, err := strconv.ParseFloat(result.USDBRL.Bid, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse USD-BRL bid %q: %w", result.USDBRL.Bid, err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("invalid USD-BRL rate %f", rate)
	}

	return rate, nil
}

// queryProvider executes an HTTP request against the rate API and parses the
// JSON response.
func (c *RateClient) queryProvider(ctx context.Context, url string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	return response, nil
}
