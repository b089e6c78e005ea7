package sedriver

import (
	"github.com/ionut-arm/parsec-se-driver/parsec"
	"github.com/ionut-arm/parsec-se-driver/psa"
)

// asymmetricMethods is the asymmetric operation callback group registered
// in the driver table. Encrypt and Decrypt stay nil: the driver offers
// sign/verify only.
var asymmetricMethods = psa.AsymmetricMethods{
	Sign:   signHash,
	Verify: verifyHash,
}

// signHash forwards a hash to be signed by the remote key and copies the
// signature into the host buffer. An undersized buffer fails with
// buffer-too-small and no bytes written.
func signHash(_ *psa.DriverContext, keySlot psa.KeySlotNumber, alg psa.Algorithm, hash []byte, signature []byte, signatureLength *uint) psa.Status {
	return withClient("sign", func(c parsec.Client) psa.Status {
		sig, err := c.PsaSignHash(keySlotToKeyName(keySlot), hash, alg)
		if err != nil {
			return statusFromError(err)
		}
		if len(sig) > len(signature) {
			return psa.ErrorBufferTooSmall
		}
		*signatureLength = uint(copy(signature, sig))
		return psa.Success
	})
}

// verifyHash forwards a verification request. A failed cryptographic
// check surfaces as the invalid-signature status through the translation
// table; callers branch on that distinction.
func verifyHash(_ *psa.DriverContext, keySlot psa.KeySlotNumber, alg psa.Algorithm, hash []byte, signature []byte) psa.Status {
	return withClient("verify", func(c parsec.Client) psa.Status {
		return statusFromError(c.PsaVerifyHash(keySlotToKeyName(keySlot), hash, signature, alg))
	})
}
