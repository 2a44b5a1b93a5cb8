package locsync

import "errors"

// Construction errors. A missing backend is fatal at startup: there is no
// degraded mode where the sync layer runs with only one side of the pair.
var (
	ErrNilStore = errors.New("locsync: store is required")
	ErrNilCache = errors.New("locsync: cache backend is required")
)
