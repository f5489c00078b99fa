//go:build windows

package nativedialog

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"desktop-dialogs/dialogs"
)

const (
	mbOK                = 0x00000000
	mbYesNo             = 0x00000004
	mbCancelTryContinue = 0x00000006
	mbIconError         = 0x00000010
	mbIconQuestion      = 0x00000020
	mbIconWarning       = 0x00000030
	mbIconInformation   = 0x00000040

	idOK       = 1
	idCancel   = 2
	idYes      = 6
	idNo       = 7
	idTryAgain = 10
	idContinue = 11
)

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procMessageBoxW = user32.NewProc("MessageBoxW")
)

// showMessage maps the request onto a Windows message box: one button is
// MB_OK, two is MB_YESNO (No first, matching index 0 = safe action), three
// is MB_CANCELTRYCONTINUE. The first button is the default either way.
func showMessage(req dialogs.MessageRequest) (dialogs.MessageResult, error) {
	style := uintptr(iconStyle(req.Kind))
	switch len(req.Buttons) {
	case 1:
		style |= mbOK
	case 2:
		style |= mbYesNo
	case 3:
		style |= mbCancelTryContinue
	default:
		return dialogs.MessageResult{}, fmt.Errorf("native message box supports at most 3 buttons, got %d", len(req.Buttons))
	}

	titlePtr, _ := syscall.UTF16PtrFromString(req.Title)
	messagePtr, _ := syscall.UTF16PtrFromString(req.Message)

	ret, _, callErr := procMessageBoxW.Call(
		0, // hwnd (no parent window)
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		style,
	)
	if ret == 0 {
		return dialogs.MessageResult{}, fmt.Errorf("MessageBoxW failed: %v", callErr)
	}
	return dialogs.MessageResult{ButtonIndex: buttonIndex(int(ret))}, nil
}

func iconStyle(k dialogs.Kind) uint32 {
	switch k {
	case dialogs.KindWarning:
		return mbIconWarning
	case dialogs.KindQuestion:
		return mbIconQuestion
	case dialogs.KindError:
		return mbIconError
	default:
		return mbIconInformation
	}
}

func buttonIndex(id int) int {
	switch id {
	case idYes, idTryAgain:
		return 1
	case idContinue:
		return 2
	default:
		// idOK, idNo, idCancel and keyboard cancellation all land on the
		// safe first button.
		return 0
	}
}
