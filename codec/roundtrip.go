package codec

import (
	"fmt"

	"github.com/brimdata/bon"
)

// RoundTrip encodes v, decodes the result and returns an error if the
// decoded value is not equal to v.
func RoundTrip(v bon.Value) error {
	b, err := Encode(v)
	if err != nil {
		return err
	}
	out, err := Decode(b)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", b, err)
	}
	if !bon.Equal(v, out) {
		return fmt.Errorf("round trip mismatch: %s encoded as %q decoded as %s", bon.Format(v), b, bon.Format(out))
	}
	return nil
}
