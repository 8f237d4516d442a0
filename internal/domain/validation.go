package domain

import "strings"

// base58 alphabet used by classic ledger addresses.
const addressAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// ValidAddress performs a shape check on a classic ledger address: 'r' prefix,
// plausible length, and alphabet membership. It does not verify the checksum.
func ValidAddress(addr string) bool {
	if len(addr) < 25 || len(addr) > 35 {
		return false
	}
	if addr[0] != 'r' {
		return false
	}

	for i := 0; i < len(addr); i++ {
		if strings.IndexByte(addressAlphabet, addr[i]) < 0 {
			return false
		}
	}

	return true
}
