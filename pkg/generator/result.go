package generator

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
)

// Result is the single record a successful search produces. The secret key
// material it carries must only ever reach the final report and, on
// request, the wallet file.
type Result struct {
	Address   string             // Base58-encoded public key
	PublicKey ed25519.PublicKey  // 32-byte public key
	SecretKey ed25519.PrivateKey // 64-byte secret key (seed followed by public key)
	Outcome   MatchOutcome       // Which pattern matched and where
	Attempts  uint64             // Total attempts across all workers
	Elapsed   time.Duration      // Wall time from start to match
}

// SecretBase58 returns the Base58 encoding of the full 64-byte secret key,
// the form Solana wallets import.
func (r Result) SecretBase58() string {
	return base58.Encode(r.SecretKey)
}

// Mnemonic derives the BIP39 phrase for the 32-byte seed of the winning
// keypair (24 words for 256 bits of entropy).
func (r Result) Mnemonic() (string, error) {
	phrase, err := bip39.NewMnemonic(r.SecretKey.Seed())
	if err != nil {
		return "", fmt.Errorf("derive mnemonic: %w", err)
	}
	return phrase, nil
}

// Rate returns the achieved search rate in addresses per second.
func (r Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Attempts) / r.Elapsed.Seconds()
}
