//go:build matchesdebug

package matches

const debugBuild = true
