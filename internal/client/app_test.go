package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err   error
	calls int
	ctx   context.Context
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.calls++
	f.ctx = ctx
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())

	require.ErrorIs(t, err, ErrNoUI)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "clean exit"},
		{name: "ui failure is wrapped", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())

			assert.Equal(t, 1, ui.calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApp_Run_PropagatesCancellation(t *testing.T) {
	ui := &fakeUI{}
	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.Run(ctx))
	require.NotNil(t, ui.ctx)
	assert.ErrorIs(t, ui.ctx.Err(), context.Canceled)
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
