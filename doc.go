// Package mpi implements the multi-precision integer arithmetic core of a
// small TLS/crypto library: arbitrary-precision signed integers, modular
// exponentiation via Montgomery reduction with sliding-window exponent
// scanning, extended-GCD modular inverse, and Miller-Rabin based prime
// generation. It descends from the XySSL/PolarSSL/tropicssl bignum.c
// lineage, reworked into idiomatic Go.
//
// The package is not constant-time. Callers embedding these operations in
// an adversarial setting (e.g. RSA private-key operations on a networked
// server) should not assume timing-independence.
package mpi
