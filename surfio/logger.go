package surfio

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used for read/write diagnostics. The
// default is a no-op logger.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
