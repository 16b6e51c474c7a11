//go:build !matchesdebug

package matches

const debugBuild = false
