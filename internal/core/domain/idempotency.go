package domain

import "strings"

// RelayIdempotencyKey is the cache key for a client-supplied relay request id.
func RelayIdempotencyKey(requestID string) string {
	return "relay:req:" + requestID
}

// RelayHandleKey is the guard key claimed before a handle is submitted.
func RelayHandleKey(handleHex string) string {
	return "relay:handle:" + strings.ToLower(handleHex)
}

// TipBusyKey is the guard key held while a sender's tip to a KOL is in flight.
func TipBusyKey(fromAddress, kolID string) string {
	return "tip:busy:" + strings.ToLower(fromAddress) + ":" + kolID
}

// TipSettleKey is claimed once when a tip's confirmation is applied, so the
// balance is credited at most once per tip.
func TipSettleKey(encryptionID string) string {
	return "tip:settled:" + encryptionID
}
