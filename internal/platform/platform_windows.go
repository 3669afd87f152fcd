//go:build windows

package platform

import "golang.org/x/sys/windows"

// Init enters a single-threaded COM apartment so the shell folder picker can
// run. The returned release function undoes the initialization; call it once
// no more dialogs will be shown.
func Init() (func(), error) {
	if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err != nil {
		return func() {}, err
	}
	return windows.CoUninitialize, nil
}
