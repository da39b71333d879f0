// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blinky

import "fmt"

// A ConfigError reports an invalid configuration at construction time.
// Components cannot enter an invalid state once built, so this is the
// only error kind in the package; callers can unwrap it from wrapped
// errors with errors.Cause.
//
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

func configErrf(format string, args ...interface{}) ConfigError {
	return ConfigError(fmt.Sprintf(format, args...))
}
