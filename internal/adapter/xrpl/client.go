package xrpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/infrastructure/metrics"
	"github.com/tuitiontrust/treasury/internal/usecase"
)

// rippled error codes the client treats specially.
const errActNotFound = "actNotFound"

// Validation polling bounds for submitted transactions. Testnet ledgers close
// every 3-4 seconds, so 15s covers several close cycles.
const (
	pollInitialInterval = 500 * time.Millisecond
	pollMaxInterval     = 2 * time.Second
	pollMaxElapsed      = 15 * time.Second
)

// Client implements usecase.LedgerGateway against a rippled JSON-RPC
// endpoint. Transactions are signed server-side via the sign method, which is
// acceptable against a trusted testnet node but must not be pointed at a
// public mainnet endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	account    string
	secret     string
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewClient creates a new Client. metrics may be nil.
func NewClient(endpoint, account, secret string, m *metrics.Metrics, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		account:    account,
		secret:     secret,
		metrics:    m,
		logger:     logger,
	}
}

// AccountTransactions fetches the most recent transactions touching account.
// An unfunded account yields an empty slice rather than an error.
func (c *Client) AccountTransactions(ctx context.Context, account string, limit int) ([]*domain.PaymentTx, error) {
	var result accountTxResult
	err := c.call(ctx, "account_tx", accountTxParams{
		Account:        account,
		LedgerIndexMin: -1,
		LedgerIndexMax: -1,
		Limit:          limit,
		Binary:         false,
	}, &result)
	if err != nil {
		if result.Error == errActNotFound {
			return nil, nil
		}

		return nil, err
	}

	entries := make([]*domain.PaymentTx, 0, len(result.Transactions))
	for _, raw := range result.Transactions {
		var entry txEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			c.logger.Warn().Err(err).Msg("skipping undecodable account_tx entry")
			continue
		}
		if tx := entry.toDomain(raw); tx != nil {
			entries = append(entries, tx)
		}
	}

	return entries, nil
}

// AccountBalance returns the account's XRP balance. An unfunded account
// reports zero.
func (c *Client) AccountBalance(ctx context.Context, account string) (decimal.Decimal, error) {
	var result accountInfoResult
	err := c.call(ctx, "account_info", accountInfoParams{
		Account:     account,
		LedgerIndex: "validated",
	}, &result)
	if err != nil {
		if result.Error == errActNotFound {
			return decimal.Zero, nil
		}

		return decimal.Zero, err
	}

	drops, err := decimal.NewFromString(result.AccountData.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse balance %q: %w", result.AccountData.Balance, err)
	}

	return drops.Shift(-6), nil
}

// AccountLines returns the account's trust lines, optionally filtered to one
// peer.
func (c *Client) AccountLines(ctx context.Context, account, peer string) ([]domain.TrustLine, error) {
	var result accountLinesResult
	err := c.call(ctx, "account_lines", accountLinesParams{
		Account: account,
		Peer:    peer,
	}, &result)
	if err != nil {
		if result.Error == errActNotFound {
			return nil, nil
		}

		return nil, err
	}

	lines := make([]domain.TrustLine, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, domain.TrustLine{
			Account:  line.Account,
			Currency: line.Currency,
			Balance:  line.Balance,
			Limit:    line.Limit,
		})
	}

	return lines, nil
}

// SubmitPayment signs and submits a payment from the client's account, then
// waits for ledger validation.
func (c *Client) SubmitPayment(ctx context.Context, p usecase.PaymentInstruction) (*usecase.SubmitResult, error) {
	txJSON := map[string]any{
		"TransactionType": domain.TxTypePayment,
		"Account":         c.account,
		"Destination":     p.Destination,
		"Amount": map[string]string{
			"currency": p.Currency,
			"issuer":   p.Issuer,
			"value":    p.Value,
		},
	}

	return c.signAndSubmit(ctx, txJSON)
}

// SubmitTrustSet signs and submits a TrustSet for the client's account, then
// waits for ledger validation.
func (c *Client) SubmitTrustSet(ctx context.Context, t usecase.TrustSetInstruction) (*usecase.SubmitResult, error) {
	txJSON := map[string]any{
		"TransactionType": "TrustSet",
		"Account":         c.account,
		"LimitAmount": map[string]string{
			"currency": t.Currency,
			"issuer":   t.Issuer,
			"value":    t.Limit,
		},
	}

	return c.signAndSubmit(ctx, txJSON)
}

func (c *Client) signAndSubmit(ctx context.Context, txJSON map[string]any) (*usecase.SubmitResult, error) {
	var signed signResult
	if err := c.call(ctx, "sign", signParams{Secret: c.secret, TxJSON: txJSON}, &signed); err != nil {
		return nil, err
	}

	var submitted submitResult
	if err := c.call(ctx, "submit", submitParams{TxBlob: signed.TxBlob}, &submitted); err != nil {
		return nil, err
	}

	hash := submitted.TxJSON.Hash
	if hash == "" {
		hash = signed.TxJSON.Hash
	}

	result := &usecase.SubmitResult{
		Hash:       hash,
		ResultCode: submitted.EngineResult,
	}

	// Only a provisionally-applied transaction can validate; tem/tef/tec
	// class rejections are final at submission time.
	if submitted.EngineResult != domain.TxResultSuccess {
		return result, nil
	}

	return c.awaitValidation(ctx, result)
}

// awaitValidation polls the tx method until the ledger reports the
// transaction validated. A timeout is not an error: the submission result is
// returned with Validated false and the caller decides what that means.
func (c *Client) awaitValidation(ctx context.Context, result *usecase.SubmitResult) (*usecase.SubmitResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = pollInitialInterval
	b.MaxInterval = pollMaxInterval
	b.MaxElapsedTime = pollMaxElapsed

	err := backoff.Retry(func() error {
		var status txResult
		if err := c.call(ctx, "tx", txParams{Transaction: result.Hash}, &status); err != nil {
			return err
		}
		if !status.Validated {
			return fmt.Errorf("transaction %s not yet validated", result.Hash)
		}

		result.Validated = true
		if status.Meta != nil && status.Meta.TransactionResult != "" {
			result.ResultCode = status.Meta.TransactionResult
		}

		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		c.logger.Warn().
			Str("tx_hash", result.Hash).
			Err(err).
			Msg("gave up waiting for validation")
	}

	return result, nil
}

// call performs one JSON-RPC request. The out parameter must embed rpcStatus;
// on a rippled-level error the status fields are populated and an error is
// returned, so callers can inspect the error code.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	start := time.Now()
	if c.metrics != nil {
		c.metrics.LedgerRequests.WithLabelValues(method).Inc()
		defer func() {
			c.metrics.LedgerDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		}()
	}

	body, err := json.Marshal(rpcRequest{Method: method, Params: []any{params}})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countError(method)
		return fmt.Errorf("%w: %s: %v", domain.ErrLedgerUnavailable, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.countError(method)
		return fmt.Errorf("%w: %s: unexpected status %d", domain.ErrLedgerUnavailable, method, resp.StatusCode)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.countError(method)
		return fmt.Errorf("%w: %s: decode response: %v", domain.ErrLedgerUnavailable, method, err)
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		c.countError(method)
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	var status rpcStatus
	if err := json.Unmarshal(envelope.Result, &status); err == nil && status.Status == "error" {
		c.countError(method)
		return fmt.Errorf("%s failed: %s (%s)", method, status.Error, status.ErrorMessage)
	}

	return nil
}

func (c *Client) countError(method string) {
	if c.metrics != nil {
		c.metrics.LedgerErrors.WithLabelValues(method).Inc()
	}
}
