package decoder

import (
	"fmt"

	"github.com/nexar-aero/asterix/errs"
)

// maxFspecBytes bounds an FX-chained field specification bitmap.
const maxFspecBytes = 8

// scanFspec returns the number of bytes forming the FX-chained
// bitmap at the start of data: it scans bytes until one whose low
// (FX) bit is 0, inclusive.
func scanFspec(data []byte) (int, error) {
	for i := 0; i < maxFspecBytes; i++ {
		if i >= len(data) {
			return 0, fmt.Errorf("decoder: fspec truncated at byte %d: %w", i, errs.ErrTooShort)
		}

		if data[i]&0x01 == 0 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("decoder: fspec exceeds %d bytes: %w", maxFspecBytes, errs.ErrBadFspec)
}
