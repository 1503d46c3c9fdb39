//go:build e2e && unix

package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpFromNothingSelectsLastRow(t *testing.T) {
	t.Parallel()
	tf := NewSession(t)
	defer tf.Cleanup()

	require.NoError(t, startWithItems(tf, fruit), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("pineapple"), "All items should be listed")

	require.NoError(t, tf.Up())
	require.NoError(t, tf.SendEnter())

	code, err := tf.Wait(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "pineapple\n", tf.Stdout())
}

func TestDownWrapsAround(t *testing.T) {
	t.Parallel()
	tf := NewSession(t)
	defer tf.Cleanup()

	require.NoError(t, startWithItems(tf, fruit), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	// Six steps over five rows land on the first row again
	for i := 0; i < len(fruit)+1; i++ {
		require.NoError(t, tf.Down())
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, tf.SendEnter())

	code, err := tf.Wait(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "apple\n", tf.Stdout())
}

func TestScrollsLongLists(t *testing.T) {
	t.Parallel()
	tf := NewSession(t)
	defer tf.Cleanup()

	items := make([]string, 200)
	for i := range items {
		items[i] = fmt.Sprintf("entry-%03d", i)
	}
	require.NoError(t, startWithItems(tf, items, "-max-height", "10"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.False(t, tf.OutputContainsPlain(items[15], 300*time.Millisecond), "Rows past the window are not drawn")

	for i := 0; i < 16; i++ {
		require.NoError(t, tf.Down())
		time.Sleep(20 * time.Millisecond)
	}
	require.True(t, tf.SeePlain(items[15]), "Selection scrolls into view")

	require.NoError(t, tf.SendEnter())
	code, err := tf.Wait(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, items[15]+"\n", tf.Stdout())
}
