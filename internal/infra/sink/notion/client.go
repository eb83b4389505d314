// Package notion implements the txsync.RecordSink interface against the
// Notion pages API. Each valued transaction becomes one page in a fixed
// database, with its fields encoded as typed properties.
package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/validator"
	"github.com/kevinosminski/crypto-notion-tracker/internal/txsync"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the public Notion API root.
const DefaultBaseURL = "https://api.notion.com"

// notionVersion pins the API version header every request carries.
const notionVersion = "2022-06-28"

// maxErrorBodySize caps how much of a rejection body is read into the error.
const maxErrorBodySize = 2048

// ErrRecordRejected indicates Notion refused the page creation (schema
// mismatch, auth failure, rate limit). The wrapped detail carries the HTTP
// status and the response body.
var ErrRecordRejected = errors.New("record rejected by datastore")

type client struct {
	httpClient *retryablehttp.Client
	baseURL    string
	token      string
	databaseID string
}

var _ txsync.RecordSink = (*client)(nil)

// NewClient creates a sink that appends records to the given Notion database
// using the provided integration token.
func NewClient(httpClient *retryablehttp.Client, baseURL, token, databaseID string) *client {
	return &client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		databaseID: databaseID,
	}
}

// CreateRecord implements the txsync.RecordSink interface. It validates the
// record, encodes it into the database's typed-property schema, and issues
// exactly one page-creation request. Any non-2xx answer is returned as
// ErrRecordRejected so the caller can report it per record.
func (c *client) CreateRecord(ctx context.Context, record txsync.ValuedRecord) error {
	if err := validator.Validate(record); err != nil {
		return err
	}

	payload, err := json.Marshal(newPageRequest(c.databaseID, record))
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", payload)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return fmt.Errorf("%w: status %d: %s", ErrRecordRejected, res.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
