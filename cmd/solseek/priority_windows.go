//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

const (
	highPriorityClass        = 0x00000080
	aboveNormalPriorityClass = 0x00008000
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentProcess     = kernel32.NewProc("GetCurrentProcess")
	procSetPriorityClass      = kernel32.NewProc("SetPriorityClass")
	procSetProcessInformation = kernel32.NewProc("SetProcessInformation")
)

// setPriorityClass moves the current process into the given scheduling class.
func setPriorityClass(class uintptr) error {
	handle, _, _ := procGetCurrentProcess.Call()
	ret, _, err := procSetPriorityClass.Call(handle, class)
	if ret == 0 {
		return err
	}
	return nil
}

// disablePowerThrottling opts the process out of Efficiency Mode, which
// otherwise caps the clock speed of a long-running background process.
// Available on Windows 10 1709+ and Windows 11.
func disablePowerThrottling() error {
	type powerThrottlingState struct {
		Version     uint32
		ControlMask uint32
		StateMask   uint32
	}
	const (
		processPowerThrottling        = 4
		powerThrottlingExecutionSpeed = 0x1
	)

	state := powerThrottlingState{
		Version:     1,
		ControlMask: powerThrottlingExecutionSpeed,
		StateMask:   0, // 0 = disable throttling
	}
	handle, _, _ := procGetCurrentProcess.Call()
	ret, _, err := procSetProcessInformation.Call(
		handle,
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	)
	if ret == 0 {
		return err
	}
	return nil
}

// The search saturates every core; raise the scheduling class so the
// workers keep their time slices. High priority can fail under some
// policies, so fall back to above normal.
func init() {
	if err := setPriorityClass(highPriorityClass); err != nil {
		_ = setPriorityClass(aboveNormalPriorityClass)
	}
	_ = disablePowerThrottling()
}
