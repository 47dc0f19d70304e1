// Package crypto defines the core interfaces and structures for performing operations on cryptographic materials,
// such as symmetric and asymmetric keys, including key generation, key derivation, encryption, decryption,
// signing, verification and the hybrid RSA + AES-GCM message flow.
package crypto
