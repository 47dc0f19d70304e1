package crypto

import "errors"

// Sentinel errors for errors.Is() checks. Every cryptographic failure in this
// repository wraps exactly one of these so that callers can distinguish the
// failure class without parsing messages. None of them is retriable: the same
// inputs fail identically on every attempt.
var (
	// ErrKeyGen is returned when key material cannot be generated
	// (entropy source failure or an unsupported key size).
	ErrKeyGen = errors.New("key generation failed")

	// ErrEncrypt is returned when encryption is attempted with a malformed
	// key or nonce length.
	ErrEncrypt = errors.New("encryption failed")

	// ErrAuthentication is returned when the AES-GCM authentication tag does
	// not verify (wrong key, tampered ciphertext or wrong nonce). This is a
	// security-relevant hard failure; no plaintext is ever returned with it.
	ErrAuthentication = errors.New("authentication failed")

	// ErrDecrypt is returned when RSA decryption fails due to a padding or
	// key mismatch.
	ErrDecrypt = errors.New("decryption failed")

	// ErrPayloadTooLarge is returned when an RSA plaintext exceeds the
	// modulus-minus-padding bound.
	ErrPayloadTooLarge = errors.New("payload exceeds RSA encryption bound")

	// ErrSignatureMismatch is returned by the hybrid flow when a signature
	// is present but does not verify against the sender's public key.
	ErrSignatureMismatch = errors.New("signature verification failed")
)
