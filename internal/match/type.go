// Package match decides whether a directory entry passes the user's
// -name and -type criteria. It mirrors the historical find(1) behavior:
// shell-glob name matching where a leading dot must be matched literally,
// and exact file-type comparison against the entry's own (non-followed)
// mode bits.
package match

import "io/fs"

// FileType identifies the file type selected by a -type tag.
// TypeNone means no type filter is in effect.
type FileType int

const (
	TypeNone FileType = iota
	TypeBlockDevice
	TypeCharDevice
	TypeDir
	TypeRegular
	TypeSymlink
	TypeFIFO
	TypeSocket
)

// ParseType maps a -type tag to its FileType. The accepted tags are the
// single characters b, c, d, f, l, p and s; anything else reports false.
func ParseType(tag string) (FileType, bool) {
	if len(tag) != 1 {
		return TypeNone, false
	}
	switch tag[0] {
	case 'b':
		return TypeBlockDevice, true
	case 'c':
		return TypeCharDevice, true
	case 'd':
		return TypeDir, true
	case 'f':
		return TypeRegular, true
	case 'l':
		return TypeSymlink, true
	case 'p':
		return TypeFIFO, true
	case 's':
		return TypeSocket, true
	default:
		return TypeNone, false
	}
}

// TypeOf classifies mode bits from a non-following stat into a FileType.
// Irregular files (fs.ModeIrregular) map to TypeNone so an exact type
// filter never matches them.
func TypeOf(mode fs.FileMode) FileType {
	t := mode.Type()
	switch {
	case t&fs.ModeSymlink != 0:
		return TypeSymlink
	case t&fs.ModeDir != 0:
		return TypeDir
	case t&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case t&fs.ModeSocket != 0:
		return TypeSocket
	case t&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case t&fs.ModeDevice != 0:
		return TypeBlockDevice
	case t == 0:
		return TypeRegular
	default:
		return TypeNone
	}
}

// String returns the human-readable name of the file type.
func (t FileType) String() string {
	switch t {
	case TypeBlockDevice:
		return "block device"
	case TypeCharDevice:
		return "character device"
	case TypeDir:
		return "directory"
	case TypeRegular:
		return "regular file"
	case TypeSymlink:
		return "symbolic link"
	case TypeFIFO:
		return "fifo"
	case TypeSocket:
		return "socket"
	default:
		return "none"
	}
}
