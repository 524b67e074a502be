package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
)

// groupColumns are the columns every grouped-count query groups by.
var groupColumns = []string{speciesColumn, boroughColumn, healthColumn, stewardColumn}

// SocrataSource reads grouped counts from a Socrata (SODA) JSON endpoint.
type SocrataSource struct {
	client   *http.Client
	baseURL  string
	limit    int
	appToken string
}

var _ contract.RecordSource = &SocrataSource{} // Compile-time check

// NewSocrataSource returns a source for the given resource URL. A zero timeout
// leaves the HTTP client without a deadline.
func NewSocrataSource(baseURL string, limit int, timeout time.Duration, appToken string) *SocrataSource {
	return &SocrataSource{
		client:   &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		limit:    limit,
		appToken: appToken,
	}
}

// BuildQueryURL returns the SoQL request that groups trees by species,
// borough, health and steward bucket and counts them.
func BuildQueryURL(baseURL string, limit int) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid source url %q: %w", baseURL, err)
	}
	group := strings.Join(groupColumns, ",")
	q := u.Query()
	q.Set("$select", group+",count("+treeIDColumn+")")
	q.Set("$group", group)
	q.Set("$limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch issues the grouped-count query once. Non-2xx responses are errors;
// there is no retry.
func (s *SocrataSource) Fetch(ctx context.Context) ([]schema.RawCandidate, error) {
	queryURL, err := BuildQueryURL(s.baseURL, s.limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.appToken != "" {
		req.Header.Set("X-App-Token", s.appToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	rows, err := decodeRows(resp.Body)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Describe implements contract.RecordSource.
func (s *SocrataSource) Describe() string {
	if u, err := url.Parse(s.baseURL); err == nil && u.Host != "" {
		return "socrata " + u.Host + u.Path
	}
	return "socrata " + s.baseURL
}

// Close implements contract.RecordSource.
func (s *SocrataSource) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
