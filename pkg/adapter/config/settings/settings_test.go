// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/parkshare/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMarshal(t *testing.T) {
	for _, tc := range []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{5 * time.Minute, "5m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30m"},
		{0, "0s"},
	} {
		d := settings.Duration(tc.d)
		assert.Equal(t, tc.want, *d.Marshal())
	}
	var nilDuration *settings.Duration
	assert.Nil(t, nilDuration.Marshal())
	assert.Zero(t, nilDuration.Std())
	_, err := nilDuration.MarshalText()
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	d, err := settings.ParseDuration(" 1m30s ")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d.Std())
	_, err = settings.ParseDuration("later")
	assert.Error(t, err)
}

func TestDefaultAndOverride(t *testing.T) {
	var b *bool
	settings.Default(&b, true)
	require.NotNil(t, b)
	assert.True(t, *b)
	settings.Default(&b, false)
	assert.True(t, *b, "explicit settings are kept")

	no := false
	settings.Override(&b, &no)
	assert.False(t, *b)
	settings.Override(&b, nil)
	assert.False(t, *b)

	var i *int
	settings.Nil2Zero(&i)
	require.NotNil(t, i)
	assert.Zero(t, *i)
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 2, 4
	v := new(int)
	*v = 5
	err := settings.VerifyRange(&v, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 5, *err.Value)
	assert.Equal(t, 4, *v)

	*v = 1
	err = settings.VerifyRange(&v, &minb, &maxb)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 2, *v)

	*v = 3
	assert.Nil(t, settings.VerifyRange(&v, &minb, &maxb))
	var missing *int
	assert.Nil(t, settings.VerifyRange(&missing, &minb, &maxb))
	err = settings.VerifyRange(&v, &maxb, &minb)
	require.NotNil(t, err)
	assert.True(t, err.InvalidRange)
}
