package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/registration-service/internal/events"
)

func TestDispatcherRoutesByType(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var registered, statusChanged int
	dispatcher.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		registered++
		return nil
	})
	dispatcher.Subscribe(events.EventUserStatusChanged, func(context.Context, events.Event) error {
		statusChanged++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserRegistered}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserRegistered}))

	require.Equal(t, 2, registered)
	require.Equal(t, 0, statusChanged)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var reached bool
	dispatcher.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(events.EventUserRegistered, func(context.Context, events.Event) error {
		reached = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventUserRegistered}))
	require.True(t, reached)
}
