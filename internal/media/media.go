// Package media classifies files as images or videos by extension.
package media

import (
	"path/filepath"
	"strings"
)

// Known media file extensions (lowercase, with leading dot). Covers standard
// image formats, RAW formats from the major camera manufacturers, and
// consumer plus professional video containers.
var mediaExtensions = map[string]bool{
	// Standard image formats
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
	".tiff": true, ".tif": true, ".webp": true, ".svg": true, ".ico": true,
	".heic": true, ".heif": true,

	// Generic RAW and Adobe DNG
	".raw": true, ".dng": true,

	// Canon
	".cr2": true, ".cr3": true, ".crw": true, ".1dx": true, ".1dc": true,

	// Nikon
	".nef": true, ".nrw": true,

	// Sony
	".arw": true, ".srf": true, ".sr2": true,

	// Olympus
	".orf": true,

	// Panasonic
	".rw2": true,

	// Fujifilm
	".raf": true,

	// Pentax
	".ptx": true, ".pef": true,

	// Leica
	".rwl": true, ".dcs": true,

	// Sigma
	".x3f": true,

	// Mamiya
	".mef": true,

	// Phase One
	".iiq": true, ".cap": true,

	// Hasselblad
	".3fr": true, ".fff": true,

	// Kodak
	".dcr": true, ".k25": true, ".kdc": true,

	// Minolta
	".mrw": true,

	// Samsung
	".srw": true,

	// Epson
	".erf": true,

	// Other proprietary RAW
	".bay": true, ".bmq": true, ".cs1": true, ".dc2": true, ".drf": true,
	".dsc": true, ".dxo": true, ".ia": true, ".kc2": true, ".mdc": true,
	".mos": true, ".mqv": true, ".ndd": true, ".obm": true, ".oti": true,
	".pcd": true, ".pxn": true, ".qtk": true, ".ras": true, ".rdc": true,
	".rwz": true, ".st4": true, ".st5": true, ".st6": true, ".st7": true,
	".st8": true, ".stx": true, ".wdp": true,

	// Video formats
	".mp4": true, ".avi": true, ".mkv": true, ".mov": true, ".wmv": true,
	".flv": true, ".webm": true, ".m4v": true, ".3gp": true, ".3g2": true,
	".f4v": true, ".asf": true, ".rm": true, ".rmvb": true, ".vob": true,
	".ogv": true, ".drc": true, ".mng": true, ".qt": true, ".yuv": true,
	".m2v": true, ".m4p": true, ".mpg": true, ".mp2": true, ".mpeg": true,
	".mpe": true, ".mpv": true, ".m2ts": true, ".mts": true, ".ts": true,

	// Professional video formats
	".mxf": true, ".r3d": true, ".braw": true, ".prores": true,
	".dnxhd": true, ".cine": true,
}

// IsMediaFile reports whether path names a media file, judged by its final
// extension, case-insensitively. Files without an extension are never media;
// a leading dot alone (".jpg" as a whole file name) does not count as one.
func IsMediaFile(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return false
	}
	return IsMediaExt(ext)
}

// IsMediaExt reports whether ext (with leading dot, any case) is a known
// image or video extension.
func IsMediaExt(ext string) bool {
	return mediaExtensions[strings.ToLower(ext)]
}

// ExtensionCount returns the number of recognized extensions.
func ExtensionCount() int {
	return len(mediaExtensions)
}
