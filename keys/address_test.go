// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcaddr/ecc"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

type addressTest struct {
	name       string
	secret     string
	net        string
	compressed bool
	want       string
}

var addressTests = []addressTest{
	{"generator test compressed", "01", "test", true, "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8r"},
	{"generator test uncompressed", "01", "test", false, "mtoKs9V381UAhUia3d7Vb9GNak8Qvmcsme"},
	{"generator main compressed", "01", "main", true, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"},
	{"generator main uncompressed", "01", "main", false, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm"},
	{"2G main compressed", "02", "main", true, "1cMh228HTCiwS8ZsaakH8A8wze1JR5ZsP"},
	{"2G test uncompressed", "02", "test", false, "n16daMq14zdjocUU5rUDVxts8449SL2VrL"},
	{"3G main compressed", "03", "main", true, "1CUNEBjYrCn2y1SdiUMohaKUi4wpP326Lb"},
	{"passphrase test compressed", "416e6472656a20697320636f6f6c203a50", "test", true, "mnNcaVkC35ezZSgvn8fhXEa9QTHSUtPfzQ"},
	{"passphrase main uncompressed", "416e6472656a20697320636f6f6c203a50", "main", false, "1QD4YxckQDXgy96LhvrqUSPowgJ9ehxMWe"},
}

// TestAddress ensures public keys encode to the expected addresses.
func TestAddress(t *testing.T) {
	for _, test := range addressTests {
		pub := mustPubKey(t, test.secret)

		got, err := pub.Address(test.net, test.compressed)
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, got, test.name)
		require.NoError(t, CheckAddress(got), test.name)
	}
}

// TestAddressMatchesBtcutil ensures addresses match the ones produced by the
// btcutil package for the same hash160 and network.
func TestAddressMatchesBtcutil(t *testing.T) {
	nets := map[string]*btcchaincfg.Params{
		"main": &btcchaincfg.MainNetParams,
		"test": &btcchaincfg.TestNet3Params,
	}

	for _, test := range addressTests {
		pub := mustPubKey(t, test.secret)

		sec, err := pub.Encode(test.compressed, false)
		require.NoError(t, err)
		hash := btcutil.Hash160(sec)

		payload, err := pub.Encode(test.compressed, true)
		require.NoError(t, err)
		require.Equal(t, hash, payload, test.name)

		want, err := btcutil.NewAddressPubKeyHash(hash, nets[test.net])
		require.NoError(t, err)

		got, err := pub.Address(test.net, test.compressed)
		require.NoError(t, err)
		require.Equal(t, want.EncodeAddress(), got, test.name)
	}
}

// TestAddressCurveMismatch ensures a key on a curve other than the network's
// is rejected, even when the curve has the same parameters.
func TestAddressCurveMismatch(t *testing.T) {
	s256 := ecc.S256()
	curve, err := ecc.NewCurve(s256.Curve().P(), s256.Curve().A(),
		s256.Curve().B())
	require.NoError(t, err)
	g, err := ecc.NewPoint(curve, s256.G().X(), s256.G().Y())
	require.NoError(t, err)

	pub, err := NewPublicKey(g)
	require.NoError(t, err)
	for _, net := range []string{"main", "test"} {
		_, err = pub.Address(net, true)
		require.ErrorIs(t, err, ErrCurveMismatch, net)
	}

	// The encoding itself does not depend on the network.
	sec, err := pub.Encode(true, false)
	require.NoError(t, err)
	want, err := mustPubKey(t, "01").Encode(true, false)
	require.NoError(t, err)
	require.Equal(t, want, sec)
}

// TestAddressUnknownNetwork ensures unrecognized network identifiers are
// rejected.
func TestAddressUnknownNetwork(t *testing.T) {
	pub := mustPubKey(t, "01")

	for _, net := range []string{"", "mainnet", "testnet3", "regtest", "MAIN"} {
		_, err := pub.Address(net, true)
		require.ErrorIs(t, err, ErrUnknownNetwork, "net %q", net)
	}
}

// TestCheckEncode ensures CheckEncode lays out version, payload and checksum
// as expected and agrees with the base58 package.
func TestCheckEncode(t *testing.T) {
	tests := []struct {
		version byte
		payload []byte
	}{
		{0x00, make([]byte, 20)},
		{0x00, hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")},
		{0x6f, hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6")},
		{20, []byte("")},
		{20, []byte("abc")},
	}

	for i, test := range tests {
		got := CheckEncode(test.version, test.payload)
		require.Equal(t, base58.CheckEncode(test.payload, test.version), got,
			"#%d", i)

		decoded := base58.Decode(got)
		require.Len(t, decoded, 1+len(test.payload)+checksumLen, "#%d", i)
		require.Equal(t, test.version, decoded[0], "#%d", i)
		require.True(t, bytes.Equal(test.payload,
			decoded[1:len(decoded)-checksumLen]), "#%d", i)

		body := decoded[:len(decoded)-checksumLen]
		want := chainhash.DoubleHashB(body)[:checksumLen]
		require.Equal(t, want, decoded[len(decoded)-checksumLen:], "#%d", i)
	}
}

// TestCheckEncodeLeadingZeros ensures each leading zero byte maps to a leading
// '1' character.
func TestCheckEncodeLeadingZeros(t *testing.T) {
	addr := CheckEncode(0x00, make([]byte, 20))
	require.Equal(t, "1111111111111111111114oLvT2", addr)

	// Only the version byte is zero for a typical mainnet address.
	addr = CheckEncode(0x00, hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6"))
	require.Equal(t, byte('1'), addr[0])
	require.NotEqual(t, byte('1'), addr[1])
}

// TestCheckAddress ensures address integrity checking detects corrupted and
// malformed addresses.
func TestCheckAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		err  error
	}{
		{"valid test", "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8r", nil},
		{"valid main", "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", nil},
		{"corrupted character", "mrCDrCybB6J1vRfbwM5hemdJz73FwDBC8s", ErrChecksumMismatch},
		{"swapped characters", "rmCDrCybB6J1vRfbwM5hemdJz73FwDBC8r", ErrChecksumMismatch},
		{"empty", "", ErrAddressLength},
		{"invalid base58", "0OIl", ErrAddressLength},
		{"too short", "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SA", ErrAddressLength},
		{"unknown version", CheckEncode(0x05, make([]byte, hash160Len)), ErrUnknownNetwork},
	}

	for _, test := range tests {
		err := CheckAddress(test.addr)
		require.ErrorIs(t, err, test.err, test.name)
		if test.err == nil {
			require.NoError(t, err, test.name)
		}
	}
}
