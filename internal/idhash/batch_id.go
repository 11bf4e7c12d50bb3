package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// shortIDBytes is the hash prefix length encoded by ShortBatchID.
const shortIDBytes = 12

// batchHash hashes a batch configuration.
// Formula: SHA256(strategy_id|trial_count|candidate_count)
func batchHash(strategyID string, trialCount, candidateCount int) [sha256.Size]byte {
	data := fmt.Sprintf("%s|%d|%d",
		strategyID,
		trialCount,
		candidateCount,
	)
	return sha256.Sum256([]byte(data))
}

// computeBatchID computes the full deterministic batch hash using SHA256.
// Returns hex-encoded hash (64 characters). ShortBatchID is a prefix of it.
func computeBatchID(strategyID string, trialCount, candidateCount int) string {
	hash := batchHash(strategyID, trialCount, candidateCount)
	return hex.EncodeToString(hash[:])
}

// ShortBatchID returns the base58 encoding of the first 12 bytes of the batch hash.
// Used to correlate log lines for one batch.
func ShortBatchID(strategyID string, trialCount, candidateCount int) string {
	hash := batchHash(strategyID, trialCount, candidateCount)
	return base58.Encode(hash[:shortIDBytes])
}
