// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-laundry/internal/logger"
	"github.com/MKhiriev/go-laundry/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewApp_NilUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrNilUI)
}

func TestApp_ImplementsClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, err := NewApp(mock.NewMockUI(ctrl), nil)
	require.NoError(t, err)

	var _ Client = app
}

func TestApp_Run_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	ui := mock.NewMockUI(ctrl)
	ui.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		// the logger travels with the context
		assert.NotNil(t, logger.FromContext(ctx))
		return nil
	})

	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ui := mock.NewMockUI(ctrl)
	ui.EXPECT().Run(gomock.Any()).Return(assert.AnError)

	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_Run_CancelledContextIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ui := mock.NewMockUI(ctrl)
	ui.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		return fmt.Errorf("run tui: program was killed: %w", ctx.Err())
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(ctx))
}
