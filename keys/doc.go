// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keys derives public keys from private scalars and encodes them as SEC
bytes and Base58Check pay-to-pubkey-hash addresses.

A PrivateKey is a scalar in [1, n) where n is the order of the generator it
was checked against.  Multiplying the generator by the scalar yields a
PublicKey, a finite curve point that knows how to encode itself:

	uncompressed SEC: 0x04 || x || y         (65 bytes)
	compressed SEC:   0x02/0x03 || x         (33 bytes, prefix by y parity)
	hash160:          RIPEMD160(SHA256(sec)) (20 bytes)

An address is the Base58 encoding of version || hash160 || checksum where the
version byte selects the network (0x00 for "main", 0x6f for "test") and the
checksum is the first four bytes of the double SHA-256 of version || hash160.

Decoding addresses back into keys is not supported.
*/
package keys
