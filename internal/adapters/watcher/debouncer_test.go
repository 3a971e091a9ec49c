package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/slategen/slate/internal/adapters/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/site/pages/index.html")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 1)
		assert.Equal(t, "/site/pages/index.html", receivedPaths[0])
	})
}

func TestDebouncer_Add_MultiplePathsCoalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/site/pages/a.html")
		d.Add("/site/pages/b.html")
		d.Add("/site/layouts/base.html")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		// A single callback carries the whole batch; order is not
		// guaranteed since paths are stored in a map.
		require.Equal(t, 1, callCount)
		require.Len(t, receivedPaths, 3)
		assert.Contains(t, receivedPaths, "/site/pages/a.html")
		assert.Contains(t, receivedPaths, "/site/pages/b.html")
		assert.Contains(t, receivedPaths, "/site/layouts/base.html")
	})
}

func TestDebouncer_Add_DuplicatePathsDeduplicated(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			receivedPaths = paths
		})

		d.Add("/site/pages/index.html")
		d.Add("/site/pages/index.html")
		d.Add("/site/pages/index.html")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, receivedPaths, 1)
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("/site/pages/a.html")
		time.Sleep(50 * time.Millisecond)

		// The second add restarts the window, so nothing fires at the
		// 100ms mark.
		d.Add("/site/pages/b.html")
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_Flush_Immediate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/site/pages/a.html")
		d.Add("/site/pages/b.html")

		d.Flush()

		require.Equal(t, 1, callCount, "flush runs the callback synchronously")
		require.Len(t, receivedPaths, 2)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
		callCount++
	})

	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/site/pages/a.html")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)

		d.Flush()

		assert.Equal(t, 1, callCount, "flush after the timer fired must not re-deliver")
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/site/pages/a.html")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
