package rt

import "github.com/tliron/commonlog"

// logger is resolved on every call so that a backend registered after
// package initialization is still picked up.
func logger() commonlog.Logger {
	return commonlog.GetLogger("jrt.rt")
}
