// This file is part of Gopher80.
//
// Gopher80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher80.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

const partSeparator = ": "

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The first argument is called pattern
// rather than format because it is used by Is() and Has() to identify the
// error.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent parts of the message that are
// the same are printed once.
func (c curated) Error() string {
	parts := strings.Split(fmt.Errorf(c.pattern, c.values...).Error(), partSeparator)

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			if p == parts[i-1] {
				continue
			}
			b.WriteString(partSeparator)
		}
		b.WriteString(p)
	}

	return b.String()
}

// Unwrap returns the errors that the curated error was created with.
func (c curated) Unwrap() []error {
	var errs []error
	for _, v := range c.values {
		if err, ok := v.(error); ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// IsAny returns true if err is a curated error or wraps one.
func IsAny(err error) bool {
	var c curated
	return errors.As(err, &c)
}

// Is returns true if the first curated error found in the err chain was
// created with pattern. Curated errors wrapped by fmt.Errorf() with the %w
// verb are found.
func Is(err error, pattern string) bool {
	var c curated
	if !errors.As(err, &c) {
		return false
	}
	return c.pattern == pattern
}

// Has returns true if any curated error in the err tree was created with
// pattern.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if c, ok := err.(curated); ok && c.pattern == pattern {
		return true
	}

	switch w := err.(type) {
	case interface{ Unwrap() error }:
		return Has(w.Unwrap(), pattern)
	case interface{ Unwrap() []error }:
		for _, e := range w.Unwrap() {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
