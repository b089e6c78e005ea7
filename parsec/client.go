// Package parsec declares the operation-level interface to the remote
// cryptographic service and the status space of its responses. The
// transport and wire encoding behind a concrete Client live with the
// embedding application.
package parsec

import (
	"time"

	"github.com/google/uuid"

	"github.com/ionut-arm/parsec-se-driver/psa"
)

// ProviderID identifies one provider within a running service instance.
// It is only stable for the lifetime of that instance; the durable
// identity of a provider is its UUID.
type ProviderID uint8

// ProviderInfo describes one cryptographic provider advertised by the
// service.
type ProviderInfo struct {
	ID          ProviderID
	UUID        uuid.UUID
	Description string
	Vendor      string
	VersionMaj  uint8
	VersionMin  uint8
	VersionRev  uint8
}

// KeyInfo describes a key known to the service.
type KeyInfo struct {
	ProviderID ProviderID
	Name       string
	Attributes psa.KeyAttributes
}

// Client is the remote client consumed by the driver. Operations return
// nil on success, a *ServiceError for a service-level failure, or any
// other error for transport/protocol failures. Implementations must
// serialize or multiplex concurrent calls internally; the driver only
// guards the handle holding the client, not individual calls.
type Client interface {
	// SetTimeout bounds every subsequent remote round-trip.
	SetTimeout(timeout time.Duration)

	// SetDefaultAuth fixes the authentication identity sent with every
	// request.
	SetDefaultAuth(authName string) error

	// ListProviders returns the providers the service currently offers.
	ListProviders() ([]ProviderInfo, error)

	// SetImplicitProvider routes all subsequent operations to the given
	// provider.
	SetImplicitProvider(id ProviderID)

	// ListKeys returns the keys owned by the calling identity.
	ListKeys() ([]KeyInfo, error)

	PsaImportKey(name string, attributes psa.KeyAttributes, material []byte) error
	PsaGenerateKey(name string, attributes psa.KeyAttributes) error
	PsaExportPublicKey(name string) ([]byte, error)
	PsaDestroyKey(name string) error
	PsaSignHash(name string, hash []byte, alg psa.Algorithm) ([]byte, error)
	PsaVerifyHash(name string, hash []byte, signature []byte, alg psa.Algorithm) error
}
