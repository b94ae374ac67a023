package commitment

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// CBORCodec pairs the deterministic encode and decode modes used for every
// CBOR artifact. Deterministic encoding matters here: a checkpoint
// signature covers the encoded bytes, so two encoders disagreeing on map
// ordering would produce unverifiable signatures.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBORCodec() (CBORCodec, error) {
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{enc: enc, dec: dec}, nil
}

func (c CBORCodec) MarshalCBOR(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBORCodec) UnmarshalCBOR(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

// WriteCBORFile writes the full export, CBOR encoded, to path. This is the
// compact archival form of the JSON export with identical content.
func WriteCBORFile(path string, codec CBORCodec, c *Commitment) error {
	data, err := codec.MarshalCBOR(c.Export())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	return nil
}

// ReadCBORFile reads a CBOR encoded export written by WriteCBORFile.
func ReadCBORFile(path string, codec CBORCodec) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	var e Export
	if err := codec.UnmarshalCBOR(data, &e); err != nil {
		return Export{}, fmt.Errorf("%w: %v", ErrExport, err)
	}
	return e, nil
}
