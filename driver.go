// Package sedriver implements a PSA secure-element driver that forwards
// every HAL callback to a remote cryptographic service.
//
// The host obtains the driver table from Driver and runs its init
// callback exactly once before any other entry point. No key material
// ever exists locally: each host key slot maps deterministically to a
// named key owned by the remote service, and every operation is a single
// synchronous round-trip translated back into the host's status space.
package sedriver

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ionut-arm/parsec-se-driver/internal/config"
	"github.com/ionut-arm/parsec-se-driver/internal/logging"
	"github.com/ionut-arm/parsec-se-driver/parsec"
	"github.com/ionut-arm/parsec-se-driver/psa"
)

// Provider UUIDs advertised by the remote service. The selection policy
// matches against these during initialization; they are stable across
// service releases.
var (
	tpmProviderUUID    = uuid.MustParse("1e4954a4-ff21-46d3-ab0c-661eeb667e1d")
	pkcs11ProviderUUID = uuid.MustParse("30e39502-eba6-4d60-a4af-c518b7f5e38f")
	coreProviderUUID   = uuid.MustParse("47049873-2a43-4845-9d72-831eab668784")
)

// ErrAlreadyBound is returned by SetClient after a successful
// initialization: the bound client cannot be swapped under live keys.
var ErrAlreadyBound = errors.New("driver already bound to a provider")

// Driver is the secure-element driver table handed to the host. The MAC,
// cipher, AEAD and key-derivation groups stay nil, declaring those
// capabilities unsupported.
var Driver = psa.SecureElementDriver{
	HALVersion:         psa.DrvSEHALVersion,
	PersistentDataSize: 0,
	Init:               initDriver,
	KeyManagement:      &keyManagementMethods,
	Asymmetric:         &asymmetricMethods,
}

// clientHandle is the single process-wide handle to the remote client.
// Initialization is the only writer and holds the lock for its whole
// duration, round-trips included; every operation reads under RLock and
// relies on the client to serialize or multiplex its own calls.
type clientHandle struct {
	mu      sync.RWMutex
	client  parsec.Client
	bound   bool
	limiter *rate.Limiter
}

var handle clientHandle

// SetClient installs the remote client the driver forwards to. It must be
// called before the host runs the init callback; until then the handle is
// "naked" and initialization fails. Swapping the client after a
// successful init is rejected with ErrAlreadyBound.
func SetClient(c parsec.Client) error {
	handle.mu.Lock()
	defer handle.mu.Unlock()

	if handle.bound {
		return ErrAlreadyBound
	}
	handle.client = c
	return nil
}

// initDriver is the init callback. It binds the process-wide client to
// exactly one remote provider and one authentication identity. A second
// invocation on a bound handle is rejected with the bad-state status:
// silently re-binding could switch providers under live key handles.
func initDriver(_ *psa.DriverContext, _ []byte, _ psa.KeyLifetime) psa.Status {
	handle.mu.Lock()
	defer handle.mu.Unlock()

	status := bindProvider()
	RecordInit(status)
	return status
}

// bindProvider runs the initialization sequence. Caller holds the writer
// lock. Every failure is fatal and collapses to the generic error: the
// host's init contract has no richer signal.
func bindProvider() psa.Status {
	if handle.bound {
		slog.Error("driver initialization called on a bound handle")
		return psa.ErrorBadState
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("loading driver configuration", "error", err)
		return psa.ErrorGenericError
	}

	if err := logging.Init(&cfg.Logging); err != nil {
		return psa.ErrorGenericError
	}

	slog.Info("SE driver initialization", "policy", cfg.Provider.Policy)

	if handle.client == nil {
		slog.Error("no remote client installed, call SetClient before init")
		return psa.ErrorGenericError
	}
	client := handle.client

	client.SetTimeout(cfg.Client.Timeout())

	if err := client.SetDefaultAuth(cfg.Client.AuthName); err != nil {
		slog.Error("setting the default authentication method", "error", err)
		return psa.ErrorGenericError
	}

	providers, err := client.ListProviders()
	if err != nil {
		slog.Error("listing available providers", "error", err)
		return psa.ErrorGenericError
	}

	id, ok := selectProvider(providers, cfg.Provider.Policy)
	if !ok {
		slog.Error("no suitable provider found",
			"policy", cfg.Provider.Policy,
			"available", len(providers))
		return psa.ErrorGenericError
	}

	client.SetImplicitProvider(id)

	if cfg.RateLimit.RequestsPerSecond > 0 {
		handle.limiter = rate.NewLimiter(
			rate.Limit(cfg.RateLimit.RequestsPerSecond),
			cfg.RateLimit.Burst,
		)
	}

	handle.bound = true
	slog.Info("SE driver bound to provider", "provider_id", uint8(id))

	return psa.Success
}

// selectProvider applies the configured policy over the advertised
// providers and returns the first match.
func selectProvider(providers []parsec.ProviderInfo, policy config.ProviderPolicy) (parsec.ProviderID, bool) {
	for _, p := range providers {
		switch policy {
		case config.PolicyTPM:
			if p.UUID == tpmProviderUUID {
				return p.ID, true
			}
		case config.PolicyPKCS11:
			if p.UUID == pkcs11ProviderUUID {
				return p.ID, true
			}
		default:
			// Anything but the core/software fallback qualifies.
			if p.UUID != coreProviderUUID {
				return p.ID, true
			}
		}
	}
	return 0, false
}

// withClient runs fn against the shared client under the reader lock and
// records the outcome. Operations reaching an unbound handle fail with
// the bad-state status instead of proceeding silently.
func withClient(operation string, fn func(parsec.Client) psa.Status) psa.Status {
	handle.mu.RLock()
	defer handle.mu.RUnlock()

	if !handle.bound {
		slog.Error("operation on unbound driver", "operation", operation)
		RecordOperation(operation, psa.ErrorBadState)
		return psa.ErrorBadState
	}

	if handle.limiter != nil {
		// Blocking keeps the synchronous HAL contract; the client
		// timeout still bounds the round-trip itself.
		_ = handle.limiter.Wait(context.Background())
	}

	start := time.Now()
	status := fn(handle.client)
	ObserveRemoteCall(operation, time.Since(start))
	RecordOperation(operation, status)

	return status
}
