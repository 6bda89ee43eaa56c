// Package cart is the local shopping cart: a best-effort mirror of what the
// user intends to order, persisted under its own durable-storage key. It
// never talks to the backend; checkout hands its lines to the food-order
// endpoint and clears it.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/broqhotels/broq-go/tokenstore"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Line is one cart entry, shaped like the mirrored storage format.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart holds the lines in memory and mirrors every mutation into the store.
// Mirror failures are logged and swallowed: losing the mirror must never
// break ordering.
type Cart struct {
	store tokenstore.Store
	log   zerolog.Logger

	lock  sync.RWMutex
	lines []Line
}

// Option configures optional Cart behaviour.
type Option func(*Cart)

// WithLogger sets the logger used for swallowed mirror failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Cart) {
		c.log = log
	}
}

// New creates a cart, restoring any previously mirrored lines. A corrupt or
// unreadable mirror yields an empty cart.
func New(store tokenstore.Store, options ...Option) *Cart {
	c := &Cart{store: store, log: zerolog.Nop()}
	for _, opt := range options {
		opt(c)
	}
	raw, err := store.Load()
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to load cart mirror")
		return c
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &c.lines); err != nil {
			c.log.Warn().Err(err).Msg("discarding corrupt cart mirror")
			c.lines = nil
		}
	}
	return c
}

// Add merges an item into the cart: an existing line's quantity grows, a new
// line is appended. A line arriving without an ID gets one assigned.
func (c *Cart) Add(line Line) {
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	c.lock.Lock()
	merged := false
	for i := range c.lines {
		if c.lines[i].ID == line.ID {
			c.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, line)
	}
	c.lock.Unlock()
	c.mirror()
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.lock.Lock()
	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		break
	}
	c.lock.Unlock()
	c.mirror()
}

// Remove deletes a line by ID.
func (c *Cart) Remove(id string) {
	c.SetQuantity(id, 0)
}

// Clear empties the cart and its mirror.
func (c *Cart) Clear() {
	c.lock.Lock()
	c.lines = nil
	c.lock.Unlock()
	if err := c.store.Clear(); err != nil {
		c.log.Warn().Err(err).Msg("failed to clear cart mirror")
	}
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []Line {
	c.lock.RLock()
	defer c.lock.RUnlock()
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total is the sum of price times quantity across all lines.
func (c *Cart) Total() float64 {
	c.lock.RLock()
	defer c.lock.RUnlock()
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) mirror() {
	c.lock.RLock()
	data, err := json.Marshal(c.lines)
	c.lock.RUnlock()
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to encode cart mirror")
		return
	}
	if err := c.store.Save(string(data)); err != nil {
		c.log.Warn().Err(err).Msg("failed to save cart mirror")
	}
}
