// Package messages defines the SecureMessage wire envelope exchanged between
// platforms and the contracts for the hybrid RSA + AES-GCM encryption flow
// that produces and consumes it. A SecureMessage is transient: it is
// constructed per message and never persisted.
package messages
