package psa

// KeySlotNumber identifies a key within the secure element. The host
// assigns and owns slot numbers; the driver only ever converts them to
// durable remote key names.
type KeySlotNumber uint64

// KeyLifetime encodes the host's persistence/location selector for a key.
type KeyLifetime uint32

// Algorithm is a PSA algorithm selector forwarded opaquely to the remote
// service.
type Algorithm uint32

// KeyType is a PSA key type selector.
type KeyType uint16

// Well-known asymmetric key types.
const (
	KeyTypeRSAKeyPair     KeyType = 0x7001
	KeyTypeECCKeyPairBase KeyType = 0x7100
)

// KeyUsageFlags is the PSA usage flag bitmask attached to a key.
type KeyUsageFlags uint32

const (
	KeyUsageExport        KeyUsageFlags = 0x00000001
	KeyUsageCopy          KeyUsageFlags = 0x00000002
	KeyUsageEncrypt       KeyUsageFlags = 0x00000100
	KeyUsageDecrypt       KeyUsageFlags = 0x00000200
	KeyUsageSignMessage   KeyUsageFlags = 0x00000400
	KeyUsageVerifyMessage KeyUsageFlags = 0x00000800
	KeyUsageSignHash      KeyUsageFlags = 0x00001000
	KeyUsageVerifyHash    KeyUsageFlags = 0x00002000
	KeyUsageDerive        KeyUsageFlags = 0x00004000
)

// KeyAttributes carries the host-provided attributes for a key creation
// or import operation.
type KeyAttributes struct {
	Type      KeyType
	Bits      uint
	Lifetime  KeyLifetime
	Usage     KeyUsageFlags
	Algorithm Algorithm
}

// KeyCreationMethod tells the driver why the host is choosing or
// validating a key slot.
type KeyCreationMethod int

const (
	KeyCreationImport KeyCreationMethod = iota
	KeyCreationGenerate
	KeyCreationDerive
	KeyCreationCopy
	// KeyCreationRegister records a key that already exists in the
	// secure element, so validation requires presence instead of absence.
	KeyCreationRegister
)
