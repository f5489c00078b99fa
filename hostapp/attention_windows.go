//go:build windows

package hostapp

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	flashwAll   = 0x00000003
	flashwTimer = 0x00000004
)

type flashwInfo struct {
	cbSize    uint32
	hwnd      uintptr
	dwFlags   uint32
	uCount    uint32
	dwTimeout uint32
}

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetForegroundWindow = user32.NewProc("SetForegroundWindow")
	procFlashWindowEx       = user32.NewProc("FlashWindowEx")
	procGetConsoleWindow    = kernel32.NewProc("GetConsoleWindow")
)

func focusWindow(logger *slog.Logger) {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		logger.Debug("no console window to focus")
		return
	}
	procSetForegroundWindow.Call(hwnd)
}

func flashIcon(logger *slog.Logger) {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		logger.Debug("no console window to flash")
		return
	}
	info := flashwInfo{
		cbSize:  uint32(unsafe.Sizeof(flashwInfo{})),
		hwnd:    hwnd,
		dwFlags: flashwAll | flashwTimer,
		uCount:  3,
	}
	procFlashWindowEx.Call(uintptr(unsafe.Pointer(&info)))
}
