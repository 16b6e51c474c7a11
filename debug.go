package matches

import "os"

// DebugEnv enables DebugAssert when set to "1" at startup.
const DebugEnv = "MATCHES_DEBUG"

var debugEnabled = debugBuild || os.Getenv(DebugEnv) == "1"

// DebugEnabled reports whether DebugAssert checks anything.
func DebugEnabled() bool {
	return debugEnabled
}
