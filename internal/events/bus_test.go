package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	events []Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, ev Event) error {
	n.events = append(n.events, ev)
	return n.err
}

func TestEmitDispatchesToNotifiers(t *testing.T) {
	notifier := &recordingNotifier{}
	fixed := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	bus := &Bus{
		Notifiers: []Notifier{notifier},
		Now:       func() time.Time { return fixed },
	}

	aggregate := uuid.New()
	ev, err := bus.Emit(context.Background(), TopicCartCheckedOut, aggregate, map[string]any{"total": 100})
	require.NoError(t, err)
	require.Equal(t, TopicCartCheckedOut, ev.Topic)
	require.Equal(t, aggregate, ev.AggregateID)
	require.Equal(t, fixed, ev.OccurredAt)
	require.JSONEq(t, `{"total":100}`, string(ev.Payload))

	require.Len(t, notifier.events, 1)
	require.Equal(t, ev.ID, notifier.events[0].ID)
}

func TestEmitRequiresTopicAndAggregate(t *testing.T) {
	bus := &Bus{}
	_, err := bus.Emit(context.Background(), "  ", uuid.New(), nil)
	require.Error(t, err)

	_, err = bus.Emit(context.Background(), TopicCartCreated, uuid.Nil, nil)
	require.Error(t, err)
}

func TestEmitNilPayloadDefaultsToEmptyObject(t *testing.T) {
	bus := &Bus{}
	ev, err := bus.Emit(context.Background(), TopicCartCreated, uuid.New(), nil)
	require.NoError(t, err)
	require.Equal(t, "{}", string(ev.Payload))
}

func TestEmitRejectsInvalidJSONString(t *testing.T) {
	bus := &Bus{}
	_, err := bus.Emit(context.Background(), TopicCartCreated, uuid.New(), "{not json")
	require.Error(t, err)
}

func TestEmitJoinsNotifierErrors(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("boom")}
	ok := &recordingNotifier{}
	bus := &Bus{Notifiers: []Notifier{failing, ok}}

	ev, err := bus.Emit(context.Background(), TopicCartCreated, uuid.New(), nil)
	require.Error(t, err)
	// The event is still delivered to every notifier and returned.
	require.NotEqual(t, uuid.Nil, ev.ID)
	require.Len(t, ok.events, 1)
}
