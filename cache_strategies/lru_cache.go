package cache_strategies

/*
基于自调整链表的LRU（Least Recently Used）缓存

原理：
LRU 与自调整链表的"移到最前"是同一个思想：最近被访问的数据更可能再次被访问。
链表头部是最近使用的键，尾部是最久未使用的键。

实现方式：
- 哈希表：键 -> 值以及该键在链表中的迭代器
- self_adjusting.LinkedList：维护访问顺序，迭代器在移动节点后仍然有效
- 命中时 MoveToFront，O(1)
- 缓存满时删除链表尾部，O(1)
*/

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/strive/selfadjusting/self_adjusting"
)

// ErrInvalidCapacity 缓存容量必须大于 0
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

type lruItem[K comparable, V any] struct {
	value V
	pos   self_adjusting.ListIterator[K]
}

// LRUCache LRU缓存结构
type LRUCache[K comparable, V any] struct {
	capacity int                           // 最大容量
	items    map[K]*lruItem[K, V]          // 哈希表: 键 -> 值和链表位置
	order    *self_adjusting.LinkedList[K] // 访问顺序，头部最近使用
}

// NewLRUCache 创建指定容量的LRU缓存
func NewLRUCache[K comparable, V any](capacity int) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]*lruItem[K, V]),
		order:    self_adjusting.NewLinkedList[K](),
	}, nil
}

// Get 获取缓存中的值，命中时把键移到最前
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	item, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.promote(item)
	return item.value, true
}

// Put 插入或更新键值对，缓存已满时淘汰最久未使用的键
func (c *LRUCache[K, V]) Put(key K, value V) {
	if item, ok := c.items[key]; ok {
		item.value = value
		c.promote(item)
		return
	}

	if c.order.Size() >= c.capacity {
		c.evict()
	}

	c.items[key] = &lruItem[K, V]{value: value, pos: c.order.PushFront(key)}
}

// Remove 删除指定键
func (c *LRUCache[K, V]) Remove(key K) bool {
	item, ok := c.items[key]
	if !ok {
		return false
	}
	if _, err := c.order.Erase(item.pos); err != nil {
		panic(err)
	}
	delete(c.items, key)
	return true
}

// Len 返回缓存中的元素数量
func (c *LRUCache[K, V]) Len() int {
	return c.order.Size()
}

// Capacity 返回最大容量
func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

// Keys 从最近到最久返回所有键
func (c *LRUCache[K, V]) Keys() []K {
	return c.order.Values()
}

// Clear 清空缓存
func (c *LRUCache[K, V]) Clear() {
	c.order.Clear()
	clear(c.items)
}

func (c *LRUCache[K, V]) promote(item *lruItem[K, V]) {
	// 迭代器来自本链表且节点未被删除，不会出错
	if err := c.order.MoveToFront(item.pos); err != nil {
		panic(err)
	}
}

func (c *LRUCache[K, V]) evict() {
	key, err := c.order.Back()
	if err != nil {
		return
	}
	if err := c.order.PopBack(); err != nil {
		return
	}
	delete(c.items, key)
	slog.Debug("lru cache evict", "key", key, "capacity", c.capacity)
}
