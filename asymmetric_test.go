package sedriver

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ionut-arm/parsec-se-driver/parsec"
	"github.com/ionut-arm/parsec-se-driver/psa"
)

func TestSignHash(t *testing.T) {
	fc := newFakeClient()
	fc.keys["parsec-se-driver-key5"] = nil
	fc.signatures["parsec-se-driver-key5"] = []byte("deterministic-signature")
	bindFake(t, fc)

	buf := make([]byte, 64)
	var n uint

	status := Driver.Asymmetric.Sign(nil, 5, 0x06000609, []byte("hash"), buf, &n)
	if status != psa.Success {
		t.Fatalf("Sign() = %v, want PSA_SUCCESS", status)
	}
	if !bytes.Equal(buf[:n], []byte("deterministic-signature")) {
		t.Errorf("signature = %q", buf[:n])
	}
}

func TestSignHashBufferTooSmall(t *testing.T) {
	fc := newFakeClient()
	fc.keys["parsec-se-driver-key5"] = nil
	fc.signatures["parsec-se-driver-key5"] = bytes.Repeat([]byte{0x01}, 64)
	bindFake(t, fc)

	buf := bytes.Repeat([]byte{0xAA}, 16)
	n := uint(55)

	status := Driver.Asymmetric.Sign(nil, 5, 0, []byte("hash"), buf, &n)
	if status != psa.ErrorBufferTooSmall {
		t.Fatalf("Sign() = %v, want PSA_ERROR_BUFFER_TOO_SMALL", status)
	}
	if !bytes.Equal(buf, bytes.Repeat([]byte{0xAA}, 16)) {
		t.Error("undersized signature buffer was written to")
	}
	if n != 55 {
		t.Errorf("length out-param written on error: %d", n)
	}
}

func TestSignHashMissingKey(t *testing.T) {
	fc := newFakeClient()
	bindFake(t, fc)

	buf := make([]byte, 64)
	var n uint
	if status := Driver.Asymmetric.Sign(nil, 5, 0, []byte("hash"), buf, &n); status != psa.ErrorDoesNotExist {
		t.Errorf("Sign() = %v, want PSA_ERROR_DOES_NOT_EXIST", status)
	}
}

func TestVerifyHash(t *testing.T) {
	fc := newFakeClient()
	fc.keys["parsec-se-driver-key5"] = nil
	bindFake(t, fc)

	if status := Driver.Asymmetric.Verify(nil, 5, 0, []byte("hash"), []byte("sig")); status != psa.Success {
		t.Errorf("Verify() = %v, want PSA_SUCCESS", status)
	}
}

func TestVerifyHashInvalidSignature(t *testing.T) {
	fc := newFakeClient()
	fc.keys["parsec-se-driver-key5"] = nil
	fc.verifyErr = parsec.NewServiceError(parsec.PsaErrorInvalidSignature)
	bindFake(t, fc)

	status := Driver.Asymmetric.Verify(nil, 5, 0, []byte("hash"), []byte("tampered"))
	if status != psa.ErrorInvalidSignature {
		t.Fatalf("Verify() = %v, want PSA_ERROR_INVALID_SIGNATURE", status)
	}
	// Callers branch on this distinction; a collapse to the generic
	// error would be a contract violation.
	if status == psa.ErrorGenericError {
		t.Error("invalid signature collapsed to generic error")
	}
}

func TestVerifyHashTransportError(t *testing.T) {
	fc := newFakeClient()
	fc.keys["parsec-se-driver-key5"] = nil
	fc.verifyErr = errors.New("broken pipe")
	bindFake(t, fc)

	if status := Driver.Asymmetric.Verify(nil, 5, 0, []byte("hash"), []byte("sig")); status != psa.ErrorGenericError {
		t.Errorf("Verify() = %v, want PSA_ERROR_GENERIC_ERROR", status)
	}
}
