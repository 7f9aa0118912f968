package queue

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func newGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_queue_depth"})
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	m := &dto.Metric{}
	require.NoError(t, g.Write(m))
	return m.Gauge.GetValue()
}

func TestPushPopPreservesFIFOOrder(t *testing.T) {
	q := New[int](10, newGauge())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Push(ctx, i))
	}

	for i := 0; i < 5; i++ {
		got, err := q.Pop(ctx)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}
}

func TestDepthGaugePairsWithPushAndPop(t *testing.T) {
	g := newGauge()
	q := New[int](10, g)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, 1))
	require.NoError(t, q.Push(ctx, 2))
	require.Equal(t, 2.0, gaugeValue(t, g))
	require.Equal(t, 2, q.Len())

	_, err := q.Pop(ctx)
	require.NoError(t, err)
	require.Equal(t, 1.0, gaugeValue(t, g))

	_, err = q.Pop(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.0, gaugeValue(t, g))
}

func TestPushBlocksWhenFull(t *testing.T) {
	q := New[int](1, newGauge())
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, 1))

	blockedCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := q.Push(blockedCtx, 2)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// draining one slot unblocks the producer
	unblocked := make(chan error, 1)
	go func() {
		unblocked <- q.Push(ctx, 3)
	}()

	_, err = q.Pop(ctx)
	require.NoError(t, err)

	select {
	case err := <-unblocked:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("push did not unblock after pop")
	}
}

func TestPushAndPopFailAfterClose(t *testing.T) {
	q := New[int](1, newGauge())
	ctx := context.Background()

	q.Close()
	require.ErrorIs(t, q.Push(ctx, 1), ErrClosed)

	_, err := q.Pop(ctx)
	require.ErrorIs(t, err, ErrClosed)
}

func TestCloseUnblocksWaitingConsumer(t *testing.T) {
	q := New[int](1, newGauge())

	popped := make(chan error, 1)
	go func() {
		_, err := q.Pop(context.Background())
		popped <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case err := <-popped:
		require.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("pop did not unblock after close")
	}
}
