package domain

// TrustLine is one issued-currency line reported by the ledger for an
// account, already filtered by peer at the RPC level.
type TrustLine struct {
	Account  string
	Currency string
	Balance  string
	Limit    string
}
