package queue_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjjh89017/trafficlight-go/internal/queue"
)

const blockedWindow = 50 * time.Millisecond

func Test_Queue_FIFO(t *testing.T) {
	t.Parallel()

	q := queue.New[int]()
	for i := 0; i < 100; i++ {
		q.Send(i)
	}

	require.Equal(t, 100, q.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, q.Receive())
	}
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_ReceiveBlocksUntilSend(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	q := queue.New[string](queue.WithLogger(&logger))
	q.Send("A")
	q.Send("B")

	assert.Equal(t, "A", q.Receive())
	assert.Equal(t, "B", q.Receive())

	got := make(chan string, 1)
	go func() {
		got <- q.Receive()
	}()

	select {
	case v := <-got:
		t.Fatalf("Receive returned %q before any send", v)
	case <-time.After(blockedWindow):
	}

	q.Send("C")

	select {
	case v := <-got:
		assert.Equal(t, "C", v)
	case <-time.After(time.Second):
		t.Fatal("Receive did not return after send")
	}
}

func Test_Queue_CompetingConsumers(t *testing.T) {
	t.Parallel()

	q := queue.New[string]()

	var received atomic.Int32
	results := make(chan string, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := q.Receive()
			if v != "" {
				received.Add(1)
			}
			results <- v
		}()
	}

	// let both consumers park
	time.Sleep(blockedWindow)
	q.Send("green")

	select {
	case v := <-results:
		assert.Equal(t, "green", v)
	case <-time.After(time.Second):
		t.Fatal("no consumer received the value")
	}

	select {
	case v := <-results:
		t.Fatalf("second consumer unexpectedly received %q", v)
	case <-time.After(blockedWindow):
	}

	q.Close()
	wg.Wait()

	assert.Equal(t, "", <-results)
	assert.EqualValues(t, 1, received.Load())
}

func Test_Queue_ManyProducersEveryItemOnce(t *testing.T) {
	t.Parallel()

	const producers, perProducer = 4, 250
	q := queue.New[int]()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Send(p*perProducer + i)
			}
		}(p)
	}

	seen := make(chan int, producers*perProducer)
	var consumers sync.WaitGroup
	for c := 0; c < 3; c++ {
		consumers.Add(1)
		go func() {
			defer consumers.Done()
			for {
				v, err := q.ReceiveContext(context.Background())
				if err != nil {
					return
				}
				seen <- v
			}
		}()
	}

	wg.Wait()
	require.Eventually(t, func() bool { return len(seen) == producers*perProducer }, 5*time.Second, time.Millisecond)
	q.Close()
	consumers.Wait()
	close(seen)

	counts := make(map[int]int)
	for v := range seen {
		counts[v]++
	}
	assert.Len(t, counts, producers*perProducer)
	for v, n := range counts {
		assert.Equal(t, 1, n, "value %d delivered %d times", v, n)
	}
}

func Test_Queue_ReceiveContextCancelled(t *testing.T) {
	t.Parallel()

	q := queue.New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := q.ReceiveContext(ctx)
		errCh <- err
	}()

	time.Sleep(blockedWindow)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("ReceiveContext did not observe cancellation")
	}

	// nothing was consumed by the cancelled receiver
	q.Send(1)
	v, ok := q.TryReceive()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func Test_Queue_ReceiveContextDeadline(t *testing.T) {
	t.Parallel()

	q := queue.New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := q.ReceiveContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func Test_Queue_Close(t *testing.T) {
	t.Parallel()

	q := queue.New[int]()
	q.Send(1)
	q.Close()
	q.Close()

	// queued items survive close
	v, err := q.ReceiveContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = q.ReceiveContext(context.Background())
	assert.ErrorIs(t, err, queue.ErrClosed)
	assert.Equal(t, 0, q.Receive())

	q.Send(2)
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_CloseWakesWaiters(t *testing.T) {
	t.Parallel()

	q := queue.New[int]()

	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() {
			_, err := q.ReceiveContext(context.Background())
			errs <- err
		}()
	}

	time.Sleep(blockedWindow)
	q.Close()

	for i := 0; i < 3; i++ {
		select {
		case err := <-errs:
			assert.ErrorIs(t, err, queue.ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("Close did not wake all waiters")
		}
	}
}

func Test_Queue_TryReceiveEmpty(t *testing.T) {
	t.Parallel()

	q := queue.New[int]()
	_, ok := q.TryReceive()
	assert.False(t, ok)
}
