package domain

import "testing"

const treasury = "rTREASURYxxxxxxxxxxxxxxxxxxxxxxxxx"

func validPayment() PaymentTx {
	return PaymentTx{
		Hash:            "ABC123",
		Account:         "rSENDERxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		Destination:     treasury,
		TransactionType: TxTypePayment,
		ResultCode:      TxResultSuccess,
		Validated:       true,
	}
}

func TestClassifyPayment(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PaymentTx)
		dir    Direction
		want   bool
	}{
		{
			name:   "incoming accepted",
			mutate: func(tx *PaymentTx) {},
			dir:    Incoming,
			want:   true,
		},
		{
			name:   "unvalidated rejected",
			mutate: func(tx *PaymentTx) { tx.Validated = false },
			dir:    Incoming,
			want:   false,
		},
		{
			name:   "non-payment rejected",
			mutate: func(tx *PaymentTx) { tx.TransactionType = "TrustSet" },
			dir:    Incoming,
			want:   false,
		},
		{
			name:   "non-success sentinel rejected",
			mutate: func(tx *PaymentTx) { tx.ResultCode = "tecPATH_DRY" },
			dir:    Incoming,
			want:   false,
		},
		{
			name:   "incoming requires treasury destination",
			mutate: func(tx *PaymentTx) { tx.Destination = "rOTHERxxxxxxxxxxxxxxxxxxxxxxxxxxxx" },
			dir:    Incoming,
			want:   false,
		},
		{
			name: "outgoing accepted",
			mutate: func(tx *PaymentTx) {
				tx.Account = treasury
				tx.Destination = "rSCHOOLxxxxxxxxxxxxxxxxxxxxxxxxxxx"
			},
			dir:  Outgoing,
			want: true,
		},
		{
			name:   "outgoing requires treasury source",
			mutate: func(tx *PaymentTx) { tx.Destination = "rSCHOOLxxxxxxxxxxxxxxxxxxxxxxxxxxx" },
			dir:    Outgoing,
			want:   false,
		},
		{
			name: "self-payment accepted as incoming",
			mutate: func(tx *PaymentTx) {
				tx.Account = treasury
				tx.Destination = treasury
			},
			dir:  Incoming,
			want: true,
		},
		{
			name: "self-payment rejected as outgoing",
			mutate: func(tx *PaymentTx) {
				tx.Account = treasury
				tx.Destination = treasury
			},
			dir:  Outgoing,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validPayment()
			tt.mutate(&tx)
			if got := ClassifyPayment(&tx, tt.dir, treasury); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaymentTxTimestamp(t *testing.T) {
	tests := []struct {
		name string
		tx   PaymentTx
		want string
	}{
		{
			name: "close time iso preferred",
			tx:   PaymentTx{CloseTimeISO: "2024-01-02T00:00:00Z", Date: 1},
			want: "2024-01-02T00:00:00Z",
		},
		{
			name: "ripple epoch fallback",
			tx:   PaymentTx{Date: 86400},
			want: "2000-01-02T00:00:00Z",
		},
		{
			name: "unresolvable",
			tx:   PaymentTx{},
			want: TimestampUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.Timestamp(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRippleTimeToISO(t *testing.T) {
	// Ledger epoch zero is 2000-01-01T00:00:00Z.
	if got := RippleTimeToISO(0); got != "2000-01-01T00:00:00Z" {
		t.Errorf("got %q", got)
	}
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"rweachc46DLM9S5avhfubKT2p9Xt3S6cEd", true},
		{"rLbmFWAe6JDCaZ2Zffe1Wjn9weSwhJiXsb", true},
		{"", false},
		{"xweachc46DLM9S5avhfubKT2p9Xt3S6cEd", false},
		{"rshort", false},
		{"rweachc46DLM9S5avhfubKT2p9Xt3S60Ed", false}, // '0' not in alphabet
	}

	for _, tt := range tests {
		if got := ValidAddress(tt.addr); got != tt.want {
			t.Errorf("ValidAddress(%q) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}
