// Package summary contains the derived-summary use cases.
package summary

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/finflow/backend/internal/domain/entity"
)

// Fingerprint hashes a batch so that any change to a record changes the cache key.
// Record order is part of the fingerprint: it decides category tie order.
func Fingerprint(batch []entity.RawTransaction) string {
	h := sha256.New()
	for _, tx := range batch {
		for _, field := range [...]string{tx.Amount, tx.Date, tx.Category, tx.Description} {
			h.Write([]byte(field))
			h.Write([]byte{0})
		}
		h.Write([]byte{0x1e})
	}
	return hex.EncodeToString(h.Sum(nil))
}
