// Package psa declares the host-facing surface of the PSA Crypto
// secure-element HAL: the fixed status code space, key attribute types
// and the driver method tables. The struct layouts and callback
// parameter orders mirror the host contract and are not free to change.
package psa

// DrvSEHALVersion is the secure-element HAL version this driver table
// declares to the host.
const DrvSEHALVersion uint32 = 5

// DriverContext is the per-driver context the host passes into every
// callback. This driver declares a persistent data size of zero, so
// PersistentData is always empty.
type DriverContext struct {
	PersistentData []byte
}

// InitFunc is the one-time driver initialization entry point. The host
// calls it exactly once before any other callback.
type InitFunc func(drvContext *DriverContext, persistentData []byte, location KeyLifetime) Status

// AllocateKeyFunc chooses a free key slot for a new key and writes it to
// keySlot. Nothing may be written on error.
type AllocateKeyFunc func(drvContext *DriverContext, persistentData []byte, attributes *KeyAttributes, method KeyCreationMethod, keySlot *KeySlotNumber) Status

// ValidateSlotNumberFunc checks that a host-chosen slot is acceptable for
// the given creation method.
type ValidateSlotNumberFunc func(drvContext *DriverContext, persistentData []byte, attributes *KeyAttributes, method KeyCreationMethod, keySlot KeySlotNumber) Status

// ImportKeyFunc imports key material into the slot. On success the actual
// key size in bits is written to bits.
type ImportKeyFunc func(drvContext *DriverContext, keySlot KeySlotNumber, attributes *KeyAttributes, data []byte, bits *uint) Status

// GenerateKeyFunc generates a key in the slot. If the host supplied a
// public-key output buffer, the public part is written there and its
// length stored in pubkeyLength; on error neither location is touched.
type GenerateKeyFunc func(drvContext *DriverContext, keySlot KeySlotNumber, attributes *KeyAttributes, pubkey []byte, pubkeyLength *uint) Status

// DestroyKeyFunc destroys the key in the slot.
type DestroyKeyFunc func(drvContext *DriverContext, persistentData []byte, keySlot KeySlotNumber) Status

// ExportKeyFunc copies key material into the host-owned data buffer and
// writes the copied length to dataLength. If the buffer is too small the
// callback returns ErrorBufferTooSmall and writes nothing.
type ExportKeyFunc func(drvContext *DriverContext, keySlot KeySlotNumber, data []byte, dataLength *uint) Status

// SignHashFunc signs an already-computed hash. The signature buffer is
// host-owned; the buffer-too-small discipline matches ExportKeyFunc.
type SignHashFunc func(drvContext *DriverContext, keySlot KeySlotNumber, alg Algorithm, hash []byte, signature []byte, signatureLength *uint) Status

// VerifyHashFunc verifies a signature over an already-computed hash. A
// failed cryptographic check is reported as ErrorInvalidSignature, never
// as a generic error.
type VerifyHashFunc func(drvContext *DriverContext, keySlot KeySlotNumber, alg Algorithm, hash []byte, signature []byte) Status

// AsymmetricEncryptFunc performs asymmetric encryption with an optional
// salt.
type AsymmetricEncryptFunc func(drvContext *DriverContext, keySlot KeySlotNumber, alg Algorithm, input []byte, salt []byte, output []byte, outputLength *uint) Status

// AsymmetricDecryptFunc performs asymmetric decryption with an optional
// salt.
type AsymmetricDecryptFunc func(drvContext *DriverContext, keySlot KeySlotNumber, alg Algorithm, input []byte, salt []byte, output []byte, outputLength *uint) Status

// KeyManagementMethods is the key lifecycle callback group. Field order
// mirrors the host's key management table.
type KeyManagementMethods struct {
	Allocate           AllocateKeyFunc
	ValidateSlotNumber ValidateSlotNumberFunc
	Import             ImportKeyFunc
	Generate           GenerateKeyFunc
	Destroy            DestroyKeyFunc
	Export             ExportKeyFunc
	ExportPublic       ExportKeyFunc
}

// AsymmetricMethods is the asymmetric operation callback group.
type AsymmetricMethods struct {
	Sign    SignHashFunc
	Verify  VerifyHashFunc
	Encrypt AsymmetricEncryptFunc
	Decrypt AsymmetricDecryptFunc
}

// The remaining capability groups exist only so a driver table can carry
// explicit nil entries for them.
type (
	MACMethods           struct{}
	CipherMethods        struct{}
	AEADMethods          struct{}
	KeyDerivationMethods struct{}
)

// SecureElementDriver mirrors the host's driver table. Field order
// matches the host contract: version, persistent data size, init, key
// management, MAC, cipher, AEAD, asymmetric, derivation.
type SecureElementDriver struct {
	HALVersion         uint32
	PersistentDataSize uint
	Init               InitFunc
	KeyManagement      *KeyManagementMethods
	MAC                *MACMethods
	Cipher             *CipherMethods
	AEAD               *AEADMethods
	Asymmetric         *AsymmetricMethods
	Derivation         *KeyDerivationMethods
}
