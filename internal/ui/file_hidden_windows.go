//go:build windows

package ui

import "syscall"

// hideFile sets the hidden attribute on the wallet file. The 0600 mode
// carries no meaning on Windows, so this keeps the key file out of casual
// directory listings instead.
func hideFile(path string) {
	p, err := syscall.UTF16PtrFromString(path)
	if err == nil {
		syscall.SetFileAttributes(p, syscall.FILE_ATTRIBUTE_HIDDEN)
	}
}
