package radix

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// Nodes are created during insertion and discarded during deletion, with
// splits and merges shuffling them around in between. To avoid repeated
// allocation of small objects we pool them, one pool per tree.
type nodePool[V any] struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

func newNodePool[V any]() *nodePool[V] {
	np := &nodePool[V]{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &node[V]{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	np.opool = pool.NewObjectPool(np.ctx, factory, config)
	return np
}

// get borrows a fresh node carrying segment.
//
// A node which cannot be allocated leaves the tree without a way to complete
// the structural change in progress, therefore get panics. Callers obtain all
// nodes they need before linking any of them into the tree.
func (np *nodePool[V]) get(segment string) *node[V] {
	o, err := np.opool.BorrowObject(np.ctx)
	if err != nil {
		CT().Errorf("radix: cannot allocate node: %v", err)
		panic(fmt.Sprintf("radix: cannot allocate node: %v", err))
	}
	n := o.(*node[V])
	n.segment = segment
	return n
}

// put clears n and hands it back to the pool. n must not be referenced by
// the tree any more.
func (np *nodePool[V]) put(n *node[V]) {
	n.reset()
	if err := np.opool.ReturnObject(np.ctx, n); err != nil {
		CT().Errorf("radix: cannot release node: %v", err)
	}
}

// active returns the number of nodes currently borrowed.
func (np *nodePool[V]) active() int {
	return np.opool.GetNumActive()
}
