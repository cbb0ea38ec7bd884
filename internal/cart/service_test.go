package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kasir-id/backend-kasir/internal/events"
)

type captureNotifier struct {
	mu     sync.Mutex
	events []events.Event
}

func (n *captureNotifier) Notify(_ context.Context, ev events.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return nil
}

func (n *captureNotifier) topics() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	topics := make([]string, 0, len(n.events))
	for _, ev := range n.events {
		topics = append(topics, ev.Topic)
	}
	return topics
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	notifier := &captureNotifier{}
	svc := NewService()
	svc.Events = &events.Bus{Notifiers: []events.Notifier{notifier}}

	id, err := svc.Create(ctx)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.NoError(t, svc.AddItem(ctx, id, LineItem{Product: shoesMen, Quantity: 2}))

	total, err := svc.Total(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(70776), total.Amount())

	summary, err := svc.Summary(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "$707.76", summary.Formatted)
	require.Len(t, summary.Items, 1)

	snap, err := svc.Checkout(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(70776), snap.Total.Amount())

	total, err = svc.Total(ctx, id)
	require.NoError(t, err)
	require.Zero(t, total.Amount())

	require.Equal(t, []string{events.TopicCartCreated, events.TopicCartCheckedOut}, notifier.topics())
}

func TestServiceUnknownCart(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	_, err := svc.Total(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.AddItem(ctx, uuid.New(), LineItem{Product: shoesMen, Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCartExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService()
	svc.TTL = time.Hour
	svc.Now = func() time.Time { return now }

	id, err := svc.Create(ctx)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	require.NoError(t, svc.AddItem(ctx, id, LineItem{Product: shoesMen, Quantity: 1}))

	// Activity refreshed the deadline; another 30 minutes is still fine.
	now = now.Add(30 * time.Minute)
	_, err = svc.Total(ctx, id)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = svc.Total(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc := NewService()
	id, err := svc.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.AddItem(ctx, id, LineItem{Product: shoesMen, Quantity: 2})
		}()
	}
	wg.Wait()

	// Every add targets the same product, so exactly one line survives.
	total, err := svc.Total(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(70776), total.Amount())
}
