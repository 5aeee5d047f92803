package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainRule is the domain prefix for compiled rule identity.
// Version suffix enables future algorithm migration.
const DomainRule = "pavsca/rule/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RuleHash computes a content-addressed ID for a compiled rule.
//
// Only the aligned pairs contribute: two rules written differently that
// compile to the same pairs (e.g. via different category aliases) share a
// hash. Line and Source are deliberately excluded.
func RuleHash(r *Rule) string {
	return hashWithDomain(DomainRule, []byte(Normalize(r.String())))
}
