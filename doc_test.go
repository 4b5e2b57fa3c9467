// doc_test.go - Package godoc examples.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

import (
	"bytes"
	"crypto/rand"
)

func Example_keyEncapsulationMechanism() {
	// Alice, step 1: Generate a key pair.
	alicePublicKey, alicePrivateKey, err := AKCN768.GenerateKeyPair(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Alice, step 2: Send the public key to Bob (not shown).

	// Bob, step 1: Deserialize Alice's public key from the binary encoding.
	peerPublicKey, err := AKCN768.PublicKeyFromBytes(alicePublicKey.Bytes())
	if err != nil {
		panic(err)
	}

	// Bob, step 2: Generate the ciphertext and shared secret.
	cipherText, bobSharedSecret, err := peerPublicKey.Encapsulate(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Bob, step 3: Send the ciphertext to Alice (not shown).

	// Alice, step 3: Decapsulate the ciphertext.
	aliceSharedSecret, ok, err := alicePrivateKey.Decapsulate(cipherText)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("ciphertext rejected")
	}

	// Alice and Bob have identical values for the shared secrets.
	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("shared secrets mismatch")
	}
}
