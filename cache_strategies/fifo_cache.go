package cache_strategies

/*
FIFO（First In First Out）缓存替换算法

原理：
最先进入缓存的数据在缓存满时会被优先淘汰，不考虑数据的访问频率和时间。
与 LRUCache 相比，命中时不做"移到最前"，因此可以作为自调整策略的对照组。

实现方式：
- 哈希表：键 -> 值以及该键在链表中的迭代器
- self_adjusting.LinkedList：新键从尾部加入，淘汰时从头部移除
*/

import (
	"fmt"
	"log/slog"

	"github.com/strive/selfadjusting/self_adjusting"
)

type fifoItem[K comparable, V any] struct {
	value V
	pos   self_adjusting.ListIterator[K]
}

// FIFOCache FIFO缓存结构
type FIFOCache[K comparable, V any] struct {
	capacity int                           // 最大容量
	items    map[K]*fifoItem[K, V]         // 哈希表：键 -> 值和队列位置
	queue    *self_adjusting.LinkedList[K] // 队列：维护先进先出顺序
}

// NewFIFOCache 创建指定容量的FIFO缓存
func NewFIFOCache[K comparable, V any](capacity int) (*FIFOCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &FIFOCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*fifoItem[K, V]),
		queue:    self_adjusting.NewLinkedList[K](),
	}, nil
}

// Get 获取缓存中的值，不改变位置（与LRU不同）
func (c *FIFOCache[K, V]) Get(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return item.value, true
}

// Put 插入或更新缓存中的键值对，已存在的键只更新值
func (c *FIFOCache[K, V]) Put(key K, value V) {
	if item, ok := c.items[key]; ok {
		item.value = value
		return
	}

	// 达到容量上限，从队列头部删除最早的元素
	if c.queue.Size() >= c.capacity {
		oldest, err := c.queue.Front()
		if err == nil && c.queue.PopFront() == nil {
			delete(c.items, oldest)
			slog.Debug("fifo cache evict", "key", oldest, "capacity", c.capacity)
		}
	}

	c.items[key] = &fifoItem[K, V]{value: value, pos: c.queue.PushBack(key)}
}

// Remove 从缓存中删除指定键
func (c *FIFOCache[K, V]) Remove(key K) bool {
	item, ok := c.items[key]
	if !ok {
		return false
	}
	if _, err := c.queue.Erase(item.pos); err != nil {
		panic(err)
	}
	delete(c.items, key)
	return true
}

// Len 返回当前缓存中的元素数量
func (c *FIFOCache[K, V]) Len() int {
	return c.queue.Size()
}

// Keys 按进入顺序返回所有键
func (c *FIFOCache[K, V]) Keys() []K {
	return c.queue.Values()
}

// Clear 清空缓存
func (c *FIFOCache[K, V]) Clear() {
	c.queue.Clear()
	clear(c.items)
}
