package sedriver

import (
	"fmt"

	"github.com/ionut-arm/parsec-se-driver/psa"
)

// keyNamePrefix must never change: the remote service persists key
// material under derived names, so renaming orphans every previously
// provisioned key.
const keyNamePrefix = "parsec-se-driver-key"

// keySlotToKeyName derives the durable remote key name for a host slot.
// Distinct slots always yield distinct names; the remote service is the
// sole owner of the name-to-material binding.
func keySlotToKeyName(slot psa.KeySlotNumber) string {
	return fmt.Sprintf("%s%d", keyNamePrefix, slot)
}
