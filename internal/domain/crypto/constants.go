package crypto

// AlgorithmAES represents the AES encryption algorithm
const AlgorithmAES = "AES"

// AlgorithmRSA represents the RSA encryption/signature algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// GCMNonceSize is the standard AES-GCM nonce size in bytes
const GCMNonceSize = 12

// ScryptN is the scrypt CPU/memory cost parameter used for key derivation.
// Kept at 16384 to stay interoperable with the platforms consuming derived keys.
const ScryptN = 16384

// ScryptR is the scrypt block size parameter
const ScryptR = 8

// ScryptP is the scrypt parallelization parameter
const ScryptP = 1
