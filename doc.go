// doc.go - Package godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package akcn implements the AKCN-MLWE IND-CCA2-secure key encapsulation
// mechanism (KEM), based on the hardness of the learning-with-errors (LWE)
// problem over module lattices.
//
// A CPA-secure public-key encryption primitive (matrix-vector products
// over the ring Z_q[X]/(X^256+1) with q=7681, keyed by a module rank
// k in {2,3,4}) is lifted to a CCA-secure KEM via the Fujisaki-Okamoto
// transform with implicit rejection: a rejected ciphertext of the correct
// length does not return an error; Decapsulate reports ok == false and
// still returns a pseudorandom shared secret derived from a per-key
// rejection seed.
//
// Three operations are exposed: ParameterSet.GenerateKeyPair,
// PublicKey.Encapsulate, and PrivateKey.Decapsulate.
package akcn
