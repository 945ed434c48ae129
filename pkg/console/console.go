// Package console allocates and frees a Windows console for processes that
// start without one, such as GUI applications that want to surface log
// output. On other operating systems every call reports ErrUnsupported.
package console

import "errors"

// ErrUnsupported is returned on platforms without console allocation APIs.
var ErrUnsupported = errors.New("console: not supported on this platform")
