// Package store talks to the remote webhook API that persists bank
// transactions and invoices, and loads categorization rules from disk.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Georgi-Piskov/barin-alp-system/internal/cache"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"

	"github.com/google/uuid"
)

const (
	cacheKeyBankTransactions = "bank-transactions"
	cacheKeyInvoices         = "invoices"

	headerRequestID = "X-Request-ID"
)

// Endpoints names the webhook paths the client calls, relative to the
// base URL.
type Endpoints struct {
	BankTransactions      string
	SaveBankTransactions  string
	UpdateBankTransaction string
	Invoices              string
}

// envelope is the wire shape every webhook response uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

// Client is a thin HTTP client over the webhook API with a read-through
// cache on the list endpoints. Mutations invalidate the affected keys.
type Client struct {
	baseURL   string
	endpoints Endpoints
	http      *http.Client
	cache     *cache.Cache
	logger    logging.Logger
}

// NewClient builds a Client. A nil cache disables caching; calls still
// work, every read just goes to the network.
func NewClient(baseURL string, endpoints Endpoints, timeout time.Duration, c *cache.Cache, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		endpoints: endpoints,
		http:      &http.Client{Timeout: timeout},
		cache:     c,
		logger:    logger,
	}
}

// GetBankTransactions returns all stored transactions, served from cache
// when a fresh copy is available.
func (c *Client) GetBankTransactions(ctx context.Context) ([]models.BankTransaction, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(cacheKeyBankTransactions); ok {
			return v.([]models.BankTransaction), nil
		}
	}

	var txs []models.BankTransaction
	if err := c.get(ctx, c.endpoints.BankTransactions, &txs); err != nil {
		return nil, err
	}
	for i := range txs {
		txs[i].SyncDate()
	}

	if c.cache != nil {
		c.cache.Set(cacheKeyBankTransactions, txs)
	}
	return txs, nil
}

// saveResponse is the payload the save endpoint returns: the store runs its
// own duplicate check and reports what it actually kept.
type saveResponse struct {
	InsertedCount  int `json:"insertedCount"`
	DuplicateCount int `json:"duplicateCount"`
}

// SaveBankTransactions posts a batch of new transactions, invalidates the
// transaction cache and returns the store's inserted and duplicate counts.
// A store that omits the counts is taken to have inserted the whole batch.
func (c *Client) SaveBankTransactions(ctx context.Context, txs []models.BankTransaction) (int, int, error) {
	for i := range txs {
		txs[i].SyncDateString()
	}
	resp := saveResponse{InsertedCount: len(txs)}
	if err := c.post(ctx, c.endpoints.SaveBankTransactions, txs, &resp); err != nil {
		return 0, 0, err
	}
	if c.cache != nil {
		c.cache.Invalidate(cacheKeyBankTransactions)
	}
	return resp.InsertedCount, resp.DuplicateCount, nil
}

// UpdateBankTransaction sends a single changed transaction and invalidates
// the transaction cache.
func (c *Client) UpdateBankTransaction(ctx context.Context, tx models.BankTransaction) error {
	tx.SyncDateString()
	if err := c.post(ctx, c.endpoints.UpdateBankTransaction, tx, nil); err != nil {
		return err
	}
	if c.cache != nil {
		c.cache.Invalidate(cacheKeyBankTransactions)
	}
	return nil
}

// GetInvoices returns all stored invoices, cached like the transaction
// list.
func (c *Client) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	if c.cache != nil {
		if v, ok := c.cache.Get(cacheKeyInvoices); ok {
			return v.([]models.Invoice), nil
		}
	}

	var invoices []models.Invoice
	if err := c.get(ctx, c.endpoints.Invoices, &invoices); err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].SyncDate()
	}

	if c.cache != nil {
		c.cache.Set(cacheKeyInvoices, invoices)
	}
	return invoices, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	requestID := uuid.NewString()
	url := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("calling webhook",
		logging.Field{Key: logging.FieldEndpoint, Value: endpoint},
		logging.Field{Key: logging.FieldRequestID, Value: requestID},
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response from %s: %w", endpoint, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		return fmt.Errorf("%s: %s", endpoint, msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding data from %s: %w", endpoint, err)
		}
	}
	return nil
}
