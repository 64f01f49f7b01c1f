// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"

	"github.com/btcsuite/btcspv/secp256k1"
	"github.com/decred/dcrd/lru"
)

// sigInfo represents an entry in the SigCache. Entries in the sigcache are a
// 3-tuple: (z, sig, pubKey).
type sigInfo struct {
	z      string
	sig    string
	pubKey string
}

func newSigInfo(z *big.Int, sig *Signature, pubKey *secp256k1.PublicKey) sigInfo {
	return sigInfo{
		z:      z.Text(16),
		sig:    string(sig.Serialize()),
		pubKey: string(pubKey.SerializeCompressed()),
	}
}

// SigCache implements an ECDSA signature verification cache with a least
// recently used eviction policy.  Only valid signatures are added to the
// cache, so a hit lets a caller skip the two scalar multiplications of a
// repeated verification.
//
// NOTE: This type is safe for concurrent access.
type SigCache struct {
	validSigs lru.Cache
}

// NewSigCache creates and initializes a new instance of SigCache.  Its sole
// parameter 'maxEntries' represents the maximum number of entries allowed to
// exist in the SigCache at any particular moment.  The least recently used
// entry is evicted to make room for new entries that would cause the number
// of entries in the cache to exceed the max.
func NewSigCache(maxEntries uint) *SigCache {
	return &SigCache{validSigs: lru.NewCache(maxEntries)}
}

// Exists returns true if an existing entry of 'sig' over 'z' for public key
// 'pubKey' is found within the SigCache.  Otherwise, false is returned.
func (s *SigCache) Exists(z *big.Int, sig *Signature, pubKey *secp256k1.PublicKey) bool {
	return s.validSigs.Contains(newSigInfo(z, sig, pubKey))
}

// Add adds an entry for a signature over 'z' under public key 'pubKey' to
// the signature cache.
func (s *SigCache) Add(z *big.Int, sig *Signature, pubKey *secp256k1.PublicKey) {
	s.validSigs.Add(newSigInfo(z, sig, pubKey))
}

// VerifyCached verifies the signature like Signature.Verify, consulting the
// cache first and remembering the triple when it verifies.  A nil cache
// always verifies.
func VerifyCached(z *big.Int, sig *Signature, pubKey *secp256k1.PublicKey,
	cache *SigCache) bool {

	if cache == nil {
		return sig.Verify(z, pubKey)
	}

	// Out of range hashes never verify and must not alias a cached entry.
	if checkHash(z) != nil {
		return false
	}
	if cache.Exists(z, sig, pubKey) {
		log.Debugf("Signature cache hit for pubkey %v", pubKey)
		return true
	}
	if !sig.Verify(z, pubKey) {
		log.Debugf("Rejected signature %v for pubkey %v", sig, pubKey)
		return false
	}
	cache.Add(z, sig, pubKey)
	return true
}
