package sedriver

import (
	"sync/atomic"

	"github.com/ionut-arm/parsec-se-driver/parsec"
	"github.com/ionut-arm/parsec-se-driver/psa"
)

// keyManagementMethods is the key lifecycle callback group registered in
// the driver table. Export stays nil: the remote service never releases
// private key material.
var keyManagementMethods = psa.KeyManagementMethods{
	Allocate:           allocateKey,
	ValidateSlotNumber: validateSlotNumber,
	Import:             importKey,
	Generate:           generateKey,
	Destroy:            destroyKey,
	ExportPublic:       exportPublicKey,
}

// nextSlot hands out candidate slot numbers for allocation. The counter
// starts above zero; slot 0 is treated as invalid by some hosts.
var nextSlot atomic.Uint64

// allocateKey picks a free slot by probing the remote service for
// existing key names. It mutates nothing remotely; the slot only becomes
// bound once the host imports or generates into it.
func allocateKey(_ *psa.DriverContext, _ []byte, _ *psa.KeyAttributes, _ psa.KeyCreationMethod, keySlot *psa.KeySlotNumber) psa.Status {
	return withClient("allocate", func(c parsec.Client) psa.Status {
		keys, err := c.ListKeys()
		if err != nil {
			return statusFromError(err)
		}

		taken := make(map[string]struct{}, len(keys))
		for _, k := range keys {
			taken[k.Name] = struct{}{}
		}

		slot := psa.KeySlotNumber(nextSlot.Add(1))
		for {
			if _, exists := taken[keySlotToKeyName(slot)]; !exists {
				break
			}
			slot = psa.KeySlotNumber(nextSlot.Add(1))
		}

		*keySlot = slot
		return psa.Success
	})
}

// validateSlotNumber checks a host-chosen slot against the remote state.
// Creation methods require the derived name to be free; registering an
// existing key requires it to be present.
func validateSlotNumber(_ *psa.DriverContext, _ []byte, _ *psa.KeyAttributes, method psa.KeyCreationMethod, keySlot psa.KeySlotNumber) psa.Status {
	return withClient("validate_slot", func(c parsec.Client) psa.Status {
		keys, err := c.ListKeys()
		if err != nil {
			return statusFromError(err)
		}

		name := keySlotToKeyName(keySlot)
		exists := false
		for _, k := range keys {
			if k.Name == name {
				exists = true
				break
			}
		}

		if method == psa.KeyCreationRegister {
			if !exists {
				return psa.ErrorDoesNotExist
			}
			return psa.Success
		}
		if exists {
			return psa.ErrorAlreadyExists
		}
		return psa.Success
	})
}

// importKey submits host-provided key material under the derived name. No
// local state is kept: a failed import leaves nothing to roll back.
func importKey(_ *psa.DriverContext, keySlot psa.KeySlotNumber, attributes *psa.KeyAttributes, data []byte, bits *uint) psa.Status {
	return withClient("import", func(c parsec.Client) psa.Status {
		if err := c.PsaImportKey(keySlotToKeyName(keySlot), *attributes, data); err != nil {
			return statusFromError(err)
		}
		if bits != nil {
			*bits = attributes.Bits
		}
		return psa.Success
	})
}

// generateKey requests generation under the derived name and, when the
// host asked for it, copies the public part into the host buffer. On any
// failure the host's output locations are left untouched.
func generateKey(_ *psa.DriverContext, keySlot psa.KeySlotNumber, attributes *psa.KeyAttributes, pubkey []byte, pubkeyLength *uint) psa.Status {
	return withClient("generate", func(c parsec.Client) psa.Status {
		name := keySlotToKeyName(keySlot)

		if err := c.PsaGenerateKey(name, *attributes); err != nil {
			return statusFromError(err)
		}

		if pubkeyLength == nil {
			return psa.Success
		}

		public, err := c.PsaExportPublicKey(name)
		if err != nil {
			return statusFromError(err)
		}
		if len(public) > len(pubkey) {
			return psa.ErrorBufferTooSmall
		}
		*pubkeyLength = uint(copy(pubkey, public))
		return psa.Success
	})
}

// destroyKey forwards destruction. Absence of the key reports
// does-not-exist rather than success; the remote outcome flows through
// the translator untouched.
func destroyKey(_ *psa.DriverContext, _ []byte, keySlot psa.KeySlotNumber) psa.Status {
	return withClient("destroy", func(c parsec.Client) psa.Status {
		return statusFromError(c.PsaDestroyKey(keySlotToKeyName(keySlot)))
	})
}

// exportPublicKey copies the public part into the host buffer. An
// undersized buffer fails with buffer-too-small and no bytes written;
// truncated key material must never reach the host.
func exportPublicKey(_ *psa.DriverContext, keySlot psa.KeySlotNumber, data []byte, dataLength *uint) psa.Status {
	return withClient("export_public", func(c parsec.Client) psa.Status {
		public, err := c.PsaExportPublicKey(keySlotToKeyName(keySlot))
		if err != nil {
			return statusFromError(err)
		}
		if len(public) > len(data) {
			return psa.ErrorBufferTooSmall
		}
		*dataLength = uint(copy(data, public))
		return psa.Success
	})
}
