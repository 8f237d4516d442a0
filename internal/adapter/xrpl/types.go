package xrpl

import (
	"encoding/json"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// rpcRequest is the JSON-RPC envelope rippled expects: a method name and a
// single params object.
type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
}

// rpcStatus carries the status fields every rippled result includes.
type rpcStatus struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

type accountTxParams struct {
	Account        string `json:"account"`
	LedgerIndexMin int    `json:"ledger_index_min"`
	LedgerIndexMax int    `json:"ledger_index_max"`
	Limit          int    `json:"limit"`
	Binary         bool   `json:"binary"`
}

type accountTxResult struct {
	rpcStatus

	Account      string            `json:"account"`
	Transactions []json.RawMessage `json:"transactions"`
}

// txEntry is one account_tx entry. Depending on the rippled API version the
// transaction body arrives as "tx" or "tx_json", and close_time_iso may be
// absent entirely.
type txEntry struct {
	Meta         txMeta     `json:"meta"`
	Tx           *txPayload `json:"tx"`
	TxJSON       *txPayload `json:"tx_json"`
	Hash         string     `json:"hash"`
	CloseTimeISO string     `json:"close_time_iso"`
	Validated    bool       `json:"validated"`
}

type txMeta struct {
	TransactionResult string                 `json:"TransactionResult"`
	DeliveredAmount   domain.DeliveredAmount `json:"delivered_amount"`
}

type txPayload struct {
	Hash            string  `json:"hash"`
	Account         string  `json:"Account"`
	Destination     string  `json:"Destination"`
	TransactionType string  `json:"TransactionType"`
	Date            int64   `json:"date"`
	DestinationTag  *uint32 `json:"DestinationTag"`
}

func (e *txEntry) toDomain(raw json.RawMessage) *domain.PaymentTx {
	payload := e.TxJSON
	if payload == nil {
		payload = e.Tx
	}
	if payload == nil {
		return nil
	}

	hash := payload.Hash
	if hash == "" {
		hash = e.Hash
	}

	return &domain.PaymentTx{
		Hash:            hash,
		Account:         payload.Account,
		Destination:     payload.Destination,
		TransactionType: payload.TransactionType,
		ResultCode:      e.Meta.TransactionResult,
		Validated:       e.Validated,
		Delivered:       e.Meta.DeliveredAmount,
		CloseTimeISO:    e.CloseTimeISO,
		Date:            payload.Date,
		DestinationTag:  payload.DestinationTag,
		Raw:             raw,
	}
}

type accountInfoParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index"`
}

type accountInfoResult struct {
	rpcStatus

	AccountData struct {
		Balance string `json:"Balance"`
	} `json:"account_data"`
}

type accountLinesParams struct {
	Account string `json:"account"`
	Peer    string `json:"peer,omitempty"`
}

type accountLinesResult struct {
	rpcStatus

	Lines []struct {
		Account  string `json:"account"`
		Currency string `json:"currency"`
		Balance  string `json:"balance"`
		Limit    string `json:"limit"`
	} `json:"lines"`
}

type signParams struct {
	Secret string         `json:"secret"`
	TxJSON map[string]any `json:"tx_json"`
}

type signResult struct {
	rpcStatus

	TxBlob string `json:"tx_blob"`
	TxJSON struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

type submitParams struct {
	TxBlob string `json:"tx_blob"`
}

type submitResult struct {
	rpcStatus

	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
	TxJSON              struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

type txParams struct {
	Transaction string `json:"transaction"`
}

type txResult struct {
	rpcStatus

	Hash      string `json:"hash"`
	Validated bool   `json:"validated"`
	Meta      *struct {
		TransactionResult string `json:"TransactionResult"`
	} `json:"meta"`
}
