//go:build !linux

package render

// resetTerminalMode is a no-op where termios ioctls differ; the escape sequences still apply
func resetTerminalMode() {}
