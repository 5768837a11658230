//go:build !linux

package internal

import "errors"

var errEvdevUnsupported = errors.New("evdev input is only available on linux")

// OpenEvdevKeySource is unavailable outside Linux.
func OpenEvdevKeySource(paths []string) (AuxKeySource, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	return nil, errEvdevUnsupported
}
