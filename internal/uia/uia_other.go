//go:build !windows

package uia

import "errors"

// NewLocator is only implemented on Windows.
func NewLocator() (Locator, error) {
	return nil, errors.New("ui automation requires windows")
}
