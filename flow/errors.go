// Copyright 2017 The Goflame Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/io"
)

// ConfigurationError indicates an invalid model combination or option value;
// e.g. Soret without multicomponent transport, or an out-of-range emissivity
type ConfigurationError struct {
	Domain string // id of the offending domain
	Msg    string // description including the offending value
}

// InvalidGridError indicates a non-monotonic or mismatched-length grid
type InvalidGridError struct {
	Domain string
	Msg    string
}

// UnsupportedOperationError indicates an operation not implemented by the
// concrete domain type; e.g. electric-field solving controls on a flow domain
type UnsupportedOperationError struct {
	Domain string
	Op     string
}

// Error returns the message
func (e *ConfigurationError) Error() string {
	return io.Sf("configuration error in domain %q: %s", e.Domain, e.Msg)
}

// Error returns the message
func (e *InvalidGridError) Error() string {
	return io.Sf("invalid grid in domain %q: %s", e.Domain, e.Msg)
}

// Error returns the message
func (e *UnsupportedOperationError) Error() string {
	return io.Sf("domain %q does not support operation %q", e.Domain, e.Op)
}

// errConf formats a ConfigurationError
func errConf(domain, msg string, prm ...interface{}) error {
	return &ConfigurationError{domain, io.Sf(msg, prm...)}
}

// errGrid formats an InvalidGridError
func errGrid(domain, msg string, prm ...interface{}) error {
	return &InvalidGridError{domain, io.Sf(msg, prm...)}
}

// Warn reports non-fatal events such as missing components in a saved
// snapshot. It may be replaced to redirect warnings to another collector.
var Warn = func(msg string, prm ...interface{}) {
	io.Pfred(msg+"\n", prm...)
}
