package board

// maxCacheEntries bounds the legal-move cache. When exceeded, the oldest
// half of the entries is evicted.
const maxCacheEntries = 10000

// moveKey identifies a legal-move computation. The last-move target is part
// of the key because the opponent's last move changes what is legal.
type moveKey struct {
	kind    Kind
	color   Color
	sq      Sq
	moved   bool
	lastTo  Sq
	hasLast bool
}

func (b *Board) cacheKey(p *Piece, sq Sq) moveKey {
	key := moveKey{kind: p.Kind, color: p.Color, sq: sq, moved: p.Moved, hasLast: b.hasLast}
	if b.hasLast {
		key.lastTo = b.last.To
	}
	return key
}

// moveCache is a bounded cache of filtered legal-move lists. It is a pure
// accelerator: semantically redundant with regeneration and invalidated on
// every applied move.
type moveCache struct {
	entries map[moveKey][]Move
	order   []moveKey
}

func newMoveCache() *moveCache {
	return &moveCache{entries: map[moveKey][]Move{}}
}

func (c *moveCache) get(key moveKey) ([]Move, bool) {
	moves, ok := c.entries[key]
	return moves, ok
}

func (c *moveCache) put(key moveKey, moves []Move) {
	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.order) >= maxCacheEntries {
		half := len(c.order) / 2
		for _, old := range c.order[:half] {
			delete(c.entries, old)
		}
		c.order = append(c.order[:0], c.order[half:]...)
	}

	c.entries[key] = moves
	c.order = append(c.order, key)
}

func (c *moveCache) invalidate() {
	if len(c.entries) == 0 {
		return
	}
	clear(c.entries)
	c.order = c.order[:0]
}
