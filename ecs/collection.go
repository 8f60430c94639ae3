package ecs

import "github.com/milk9111/arcade/ecs/component"

// Collection holds one category's live entities in insertion order. Members
// may be appended during a pass; removal only happens in compact.
type Collection[T component.Body] struct {
	items []T
}

// Len returns the number of members, including ones marked for deletion.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns the members in insertion order. The slice is only valid until
// the next compaction.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}
	return c.items
}

// Each visits the members present when the pass started. Members appended by
// fn are not visited in the same pass.
func (c *Collection[T]) Each(fn func(T)) {
	if c == nil || fn == nil {
		return
	}
	n := len(c.items)
	for i := 0; i < n; i++ {
		fn(c.items[i])
	}
}

func (c *Collection[T]) add(v T) {
	c.items = append(c.items, v)
}

// compact drops marked members in place, keeping survivors in order.
func (c *Collection[T]) compact(release func(T)) int {
	kept := c.items[:0]
	for _, v := range c.items {
		if v.Body().MarkedForDeletion {
			if release != nil {
				release(v)
			}
			continue
		}
		kept = append(kept, v)
	}
	removed := len(c.items) - len(kept)
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

func (c *Collection[T]) clear(release func(T)) {
	for i, v := range c.items {
		if release != nil {
			release(v)
		}
		var zero T
		c.items[i] = zero
	}
	c.items = c.items[:0]
}
