// Package input collects commands from an interactive source without blocking the tick loop.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ErrDisconnected is returned by Poll once the producer has gone away and the queue is drained.
var ErrDisconnected = errors.New("input source disconnected")

// Collector is an unbounded single-producer, single-consumer command queue.
// Push never blocks the producer and Poll never blocks the consumer.
type Collector struct {
	mu     sync.Mutex
	queue  []string
	closed bool
	err    error
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Push queues a command. Pushes after Close are dropped.
func (c *Collector) Push(cmd string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.queue = append(c.queue, cmd)
}

// Close marks the producer as gone. cause may be nil for a plain end of input.
// Only the first call has an effect.
func (c *Collector) Close(cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if cause != nil {
		c.err = fmt.Errorf("%w: %w", ErrDisconnected, cause)
	} else {
		c.err = ErrDisconnected
	}
}

// Poll returns the oldest queued command. ok is false when nothing is queued.
// After Close, queued commands are still delivered before ErrDisconnected.
func (c *Collector) Poll() (cmd string, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) > 0 {
		cmd = c.queue[0]
		c.queue[0] = ""
		c.queue = c.queue[1:]
		return cmd, true, nil
	}
	if c.closed {
		return "", false, c.err
	}
	return "", false, nil
}

// pending returns the number of queued commands.
func (c *Collector) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// ReadLines pushes each line read from r until r is exhausted, then closes the collector.
// Line terminators are stripped and lines may be of any length.
// It blocks, so run it in its own goroutine.
func (c *Collector) ReadLines(r io.Reader) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			slog.Debug("input: line received", "bytes", len(line))
			c.Push(line)
		}
		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			c.Close(nil)
			return
		}
		slog.Error("input: read failed", "err", err)
		c.Close(err)
		return
	}
}
