// Package platform holds per-OS process setup required before showing
// native dialogs.
package platform
