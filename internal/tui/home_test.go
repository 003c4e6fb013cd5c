// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-laundry/internal/mock"
	"github.com/MKhiriev/go-laundry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHomeModel_ViewShowsBranding(t *testing.T) {
	m := newTestHome(nil)

	view := m.View()

	brand := models.DefaultBrand()
	assert.Contains(t, view, "FRESHFOLD LAUNDRY")
	assert.Contains(t, view, brand.Tagline)
	assert.Contains(t, view, brand.About)
	for _, label := range []string{"Schedule pickup", "Our services", "Contact us", "Sign up"} {
		assert.Contains(t, view, label)
	}
	assert.False(t, m.alert.visible())
}

func TestHomeModel_ConfigNameOverridesBrand(t *testing.T) {
	app := testApp()
	app.Name = "Sparkle Wash"

	m := NewHomeModel(models.DefaultBrand(), app, testUI(), nil, nil)

	assert.Contains(t, m.View(), "SPARKLE WASH")
}

func TestHomeModel_Navigation(t *testing.T) {
	m := newTestHome(nil)

	m.Update(keyUp)
	assert.Equal(t, 0, m.idx, "selection must not go above the first button")

	pressDown(m, 10)
	assert.Equal(t, len(m.buttons)-1, m.idx, "selection must stop at the last button")

	m.Update(keyUp)
	assert.Equal(t, len(m.buttons)-2, m.idx)
}

func TestHomeModel_ButtonsOpenAlerts(t *testing.T) {
	tests := []struct {
		name      string
		downs     int
		wantKind  alertKind
		wantTitle string
		wantText  string
	}{
		{name: "schedule pickup", downs: 0, wantKind: alertPickup, wantTitle: "Pickup requested", wantText: "0712345678"},
		{name: "our services", downs: 1, wantKind: alertServices, wantTitle: "Our services", wantText: "Dry Cleaning"},
		{name: "contact us", downs: 2, wantKind: alertContact, wantTitle: "Contact us", wantText: "hello@freshfold.co.ke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestHome(nil)
			pressDown(m, tt.downs)

			_, cmd := m.Update(keyEnter)

			assert.Nil(t, cmd)
			require.True(t, m.alert.visible())
			assert.Equal(t, tt.wantKind, m.alert.kind)
			view := m.View()
			assert.Contains(t, view, tt.wantTitle)
			assert.Contains(t, view, tt.wantText)
			assert.Contains(t, view, "enter / esc close")
		})
	}
}

func TestHomeModel_AlertClosesOnEnterAndEsc(t *testing.T) {
	for _, closeKey := range []string{"enter", "esc"} {
		t.Run(closeKey, func(t *testing.T) {
			m := newTestHome(nil)
			m.Update(keyEnter)
			require.True(t, m.alert.visible())

			if closeKey == "enter" {
				m.Update(keyEnter)
			} else {
				m.Update(keyEsc)
			}

			assert.False(t, m.alert.visible())
			assert.Equal(t, alertNone, m.alert.kind)
			assert.NotContains(t, m.View(), "Pickup requested")
		})
	}
}

func TestHomeModel_AlertSwallowsNavigation(t *testing.T) {
	m := newTestHome(nil)
	m.Update(keyEnter)

	m.Update(keyDown)

	assert.Equal(t, 0, m.idx)
	assert.True(t, m.alert.visible())
}

func TestHomeModel_SignUpButtonNavigates(t *testing.T) {
	m := newTestHome(nil)
	pressDown(m, 3)

	_, cmd := m.Update(keyEnter)

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageSignUp}, cmd())
	assert.False(t, m.alert.visible())
}

func TestHomeModel_CopySupportPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)
	cb.EXPECT().WriteAll("0712345678").Return(nil)

	m := newTestHome(cb)
	pressDown(m, 2)
	m.Update(keyEnter)
	require.Equal(t, alertContact, m.alert.kind)

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copiedMsg{text: "0712345678"}, msg)

	_, clearCmd := m.Update(msg)
	assert.NotNil(t, clearCmd)
	assert.Contains(t, m.View(), "Copied 0712345678 to clipboard")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, m.View(), "Copied")
}

func TestHomeModel_CopyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)
	cb.EXPECT().WriteAll(gomock.Any()).Return(errors.New("no clipboard utility"))

	m := newTestHome(cb)
	pressDown(m, 2)
	m.Update(keyEnter)

	_, cmd := m.Update(runes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	failed, ok := msg.(copyFailedMsg)
	require.True(t, ok)
	assert.ErrorContains(t, failed.err, "no clipboard utility")

	m.Update(msg)
	assert.Contains(t, m.View(), "Could not copy to clipboard")
}

func TestHomeModel_CopyOnlyFromContactAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)

	m := newTestHome(cb)
	m.Update(keyEnter) // pickup alert

	_, cmd := m.Update(runes("c"))

	assert.Nil(t, cmd)
}

func TestHomeModel_SignUpNoticeOpensWelcomeAlert(t *testing.T) {
	m := newTestHome(nil)

	m.Update(SignUpSuccessNotice{Customer: models.Customer{ID: "ref-42", Name: "Achieng", Phone: "0712345678"}})

	require.True(t, m.alert.visible())
	assert.Equal(t, alertSignedUp, m.alert.kind)
	view := m.View()
	assert.Contains(t, view, "Welcome, Achieng!")
	assert.Contains(t, view, "ref-42")
}
