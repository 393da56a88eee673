// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// Nil2Zero makes the nil (*t) pointer point to a new zero T value.
// If (*t) was not nil, it is left unchanged.
func Nil2Zero[T any](t **T) {
	if (*t) != nil {
		return
	}
	var zero T
	(*t) = &zero
}

// Default makes the nil (*dst) pointer point to a new T value which is
// initialized by v. A non-nil (*dst) means that the setting was given
// explicitly, so it is left unchanged.
func Default[T any](dst **T, v T) {
	if (*dst) != nil {
		return
	}
	(*dst) = &v
}

// Override replaces (*dst) with a pointer to a copy of (*src) when src
// is not nil. It is used for the settings which may be overridden by
// environment variables after the configuration file is decoded.
func Override[T any](dst **T, src *T) {
	if src == nil {
		return
	}
	t := *src
	(*dst) = &t
}
