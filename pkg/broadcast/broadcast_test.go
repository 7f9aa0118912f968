package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEverySubscriberSeesSameSequence(t *testing.T) {
	b := New[int](16)

	const subscribers = 3
	subs := make([]*Subscription[int], subscribers)
	for i := range subs {
		subs[i] = b.Subscribe()
	}

	results := make([][]int, subscribers)
	wg := sync.WaitGroup{}
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub *Subscription[int]) {
			defer wg.Done()
			for n := 0; n < 5; n++ {
				v, err := sub.Recv(context.Background())
				require.NoError(t, err)
				results[i] = append(results[i], v)
			}
		}(i, sub)
	}

	for n := 0; n < 5; n++ {
		b.Publish(n)
		// give receivers a chance to drain so nobody lags in this test
		time.Sleep(time.Millisecond)
	}
	wg.Wait()

	for i := 0; i < subscribers; i++ {
		require.Equal(t, []int{0, 1, 2, 3, 4}, results[i])
	}
}

func TestSubscribeStartsAtCurrentPosition(t *testing.T) {
	b := New[int](4)
	b.Publish(1)
	b.Publish(2)

	sub := b.Subscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := sub.Recv(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	b.Publish(3)
	v, err := sub.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestSlowSubscriberLagsAndRecovers(t *testing.T) {
	b := New[int](4)
	sub := b.Subscribe()

	// overflow the ring by two
	for i := 0; i < 6; i++ {
		b.Publish(i)
	}

	_, err := sub.Recv(context.Background())
	var lagged ErrLagged
	require.ErrorAs(t, err, &lagged)
	require.Equal(t, uint64(2), lagged.Count)

	// cursor resumes at the oldest retained event
	v, err := sub.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestPublishNeverBlocksWithoutSubscribers(t *testing.T) {
	b := New[int](2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			b.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}

func TestRecvHonorsContextCancellation(t *testing.T) {
	b := New[int](2)
	sub := b.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := sub.Recv(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
