package commitment

import "errors"

var (
	ErrNoRecords       = errors.New("commitment: record set is empty")
	ErrDuplicateIndex  = errors.New("commitment: duplicate record index")
	ErrIndexOutOfRange = errors.New("commitment: record index out of range")
	ErrSelfCheckFailed = errors.New("commitment: proof self-check failed against the computed root")
	ErrUnknownIndex    = errors.New("commitment: index not present in the commitment")
	ErrBadHashHex      = errors.New("commitment: malformed 0x-prefixed hash")
	ErrExport          = errors.New("commitment: export failed")
	ErrProofInvalid    = errors.New("commitment: proof does not verify against the committed root")
	ErrManifestRecord  = errors.New("commitment: malformed manifest record")
	ErrCheckpointVerify = errors.New("commitment: checkpoint signature verification failed")
)
