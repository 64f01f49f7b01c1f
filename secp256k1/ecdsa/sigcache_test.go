// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcspv/secp256k1"
)

// genRandomSig returns a random message hash, a signature of the hash under
// a freshly generated key, and the public key.
func genRandomSig() (*big.Int, *Signature, *secp256k1.PublicKey, error) {
	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, nil, err
	}

	z := MessageHash(privKey.Serialize())
	sig, err := Sign(privKey, z)
	if err != nil {
		return nil, nil, nil, err
	}

	return z, sig, privKey.PubKey(), nil
}

// TestSigCacheAddExists tests the ability to add, and later check the
// existence of a signature triplet in the signature cache.
func TestSigCacheAddExists(t *testing.T) {
	sigCache := NewSigCache(200)

	// Generate a random sigCache entry triplet.
	z1, sig1, key1, err := genRandomSig()
	if err != nil {
		t.Fatalf("unable to generate random signature test data")
	}

	// Add the triplet to the signature cache.
	sigCache.Add(z1, sig1, key1)

	// The previously added triplet should now be found within the sigcache.
	if !sigCache.Exists(z1, sig1, key1) {
		t.Errorf("previously added item not found in signature cache")
	}

	// A different hash under the same key and signature is a different
	// entry.
	z2 := new(big.Int).Add(z1, big.NewInt(1))
	if sigCache.Exists(z2, sig1, key1) {
		t.Errorf("entry for a different hash found in signature cache")
	}
}

// TestSigCacheAddEvictEntry tests the eviction case where a new signature
// triplet is added to a full signature cache which should trigger the
// least recently used entry to be evicted.
func TestSigCacheAddEvictEntry(t *testing.T) {
	// Create a sigcache that can hold up to 100 entries.
	sigCacheSize := uint(100)
	sigCache := NewSigCache(sigCacheSize)

	// Fill the sigcache up with some random sig triplets.
	type entry struct {
		z   *big.Int
		sig *Signature
		key *secp256k1.PublicKey
	}
	entries := make([]entry, 0, sigCacheSize)
	for i := uint(0); i < sigCacheSize; i++ {
		z, sig, key, err := genRandomSig()
		if err != nil {
			t.Fatalf("unable to generate random signature test data")
		}

		sigCache.Add(z, sig, key)
		entries = append(entries, entry{z, sig, key})

		if !sigCache.Exists(z, sig, key) {
			t.Errorf("previously added item not found in signature " +
				"cache")
		}
	}

	// Add a new entry, this should cause the least recently used entry to
	// be evicted.
	z, sig, key, err := genRandomSig()
	if err != nil {
		t.Fatalf("unable to generate random signature test data")
	}
	sigCache.Add(z, sig, key)

	// The entry added above should be found within the sigcache.
	if !sigCache.Exists(z, sig, key) {
		t.Fatalf("previously added item not found in signature cache")
	}

	// The first entry added should have been evicted while the last one
	// remains.
	first, last := entries[0], entries[len(entries)-1]
	if sigCache.Exists(first.z, first.sig, first.key) {
		t.Errorf("least recently used entry was not evicted")
	}
	if !sigCache.Exists(last.z, last.sig, last.key) {
		t.Errorf("recently added entry was evicted")
	}
}

// TestSigCacheAddMaxEntriesZero tests that if a sigCache is created with a
// max size <= 0, then no entries are added to the sigcache at all.
func TestSigCacheAddMaxEntriesZero(t *testing.T) {
	// Create a sigcache that can hold up to 0 entries.
	sigCache := NewSigCache(0)

	// Generate a random sigCache entry triplet.
	z1, sig1, key1, err := genRandomSig()
	if err != nil {
		t.Fatalf("unable to generate random signature test data")
	}

	// Add the triplet to the signature cache.
	sigCache.Add(z1, sig1, key1)

	// The generated triplet should not be found.
	if sigCache.Exists(z1, sig1, key1) {
		t.Errorf("previously added signature found in sigcache, but " +
			"shouldn't have been")
	}
}

// TestVerifyCached ensures cached verification remembers only valid
// signatures and behaves like Verify without a cache.
func TestVerifyCached(t *testing.T) {
	z, sig, key, err := genRandomSig()
	if err != nil {
		t.Fatalf("unable to generate random signature test data")
	}

	if !VerifyCached(z, sig, key, nil) {
		t.Fatalf("valid signature rejected without a cache")
	}

	sigCache := NewSigCache(10)
	if !VerifyCached(z, sig, key, sigCache) {
		t.Fatalf("valid signature rejected")
	}
	if !sigCache.Exists(z, sig, key) {
		t.Fatalf("verified signature not added to the cache")
	}
	if !VerifyCached(z, sig, key, sigCache) {
		t.Fatalf("cached signature rejected")
	}

	// A signature over another hash must not verify or be cached.
	badZ := new(big.Int).Add(z, big.NewInt(1))
	if VerifyCached(badZ, sig, key, sigCache) {
		t.Fatalf("invalid signature accepted")
	}
	if sigCache.Exists(badZ, sig, key) {
		t.Fatalf("invalid signature added to the cache")
	}

	// The negated hash and the hash pushed past 256 bits share the cached
	// hash's magnitude or low bytes but must still be rejected.
	outOfRange := []*big.Int{
		new(big.Int).Neg(z),
		new(big.Int).Add(z, new(big.Int).Lsh(big.NewInt(1), 256)),
	}
	for _, oz := range outOfRange {
		if sig.Verify(oz, key) {
			t.Fatalf("signature verified for out of range hash %x", oz)
		}
		if VerifyCached(oz, sig, key, sigCache) {
			t.Fatalf("cached signature accepted for out of range hash %x", oz)
		}
		if sigCache.Exists(oz, sig, key) {
			t.Fatalf("out of range hash %x found in the cache", oz)
		}
	}
}
