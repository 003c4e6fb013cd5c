// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-10-18", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-10-18", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppBuildInfo_BlankValues(t *testing.T) {
	t.Run("constructor", func(t *testing.T) {
		info := NewAppBuildInfo("", "  ", "")
		assert.Equal(t, "N/A", info.BuildVersion())
		assert.Equal(t, "N/A", info.BuildDate())
		assert.Equal(t, "N/A", info.BuildCommit())
	})

	t.Run("zero value", func(t *testing.T) {
		var info AppBuildInfo
		assert.Equal(t, "N/A", info.BuildVersion())
		assert.Equal(t, "N/A", info.BuildDate())
		assert.Equal(t, "N/A", info.BuildCommit())
	})
}

func TestDefaultBrand(t *testing.T) {
	brand := DefaultBrand()

	assert.NotEmpty(t, brand.Name)
	assert.NotEmpty(t, brand.Tagline)
	assert.NotEmpty(t, brand.Services)
	for _, s := range brand.Services {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Turnaround)
	}
}
