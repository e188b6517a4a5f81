package self_adjusting

/*
自调整双向链表

该实现不依赖 container/list，而是自己维护节点和两个哨兵节点：
- head 哨兵：head.next 指向第一个元素
- tail 哨兵：tail.prev 指向最后一个元素，同时作为 End() 的位置
链表为空时 head.next == tail，tail.prev == head。
有了哨兵，在任意位置之前插入、删除任意节点都不需要判断边界。

Find 命中后把节点摘下来挂到 head 之后（移到最前），
查找 O(n)，移动 O(1)，节点本身不变，指向它的迭代器仍然有效。

节点记录所属的链（chain）。删除节点时清空这个引用，
因此已删除节点的迭代器、其他链表的迭代器都能被识别出来。
Move 只转移 chain 的所有权，指向原链表节点的迭代器转而属于新链表。
*/

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
)

var (
	_ containers.Container[int] = (*LinkedList[int])(nil)
	_ containers.JSONSerializer = (*LinkedList[int])(nil)
	_ containers.JSONDeserializer = (*LinkedList[int])(nil)
)

// listNode 链表节点，哨兵节点的 value 始终为零值
type listNode[T any] struct {
	value T
	prev  *listNode[T]
	next  *listNode[T]
	chain *chain[T] // 所属的链，节点被删除后为 nil
}

// chain 一条带首尾哨兵的节点链，拥有其中全部节点
type chain[T any] struct {
	head *listNode[T]
	tail *listNode[T]
	size int // 不包括哨兵
}

func newChain[T any]() *chain[T] {
	c := &chain[T]{}
	c.head = &listNode[T]{chain: c}
	c.tail = &listNode[T]{chain: c}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// 在节点 at 之前插入新节点
func (c *chain[T]) insertBefore(v T, at *listNode[T]) *listNode[T] {
	n := &listNode[T]{
		value: v,
		prev:  at.prev,
		next:  at,
		chain: c,
	}
	n.prev.next = n
	n.next.prev = n
	c.size++
	return n
}

// 把节点 n 从链上摘除
func (c *chain[T]) remove(n *listNode[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil // 避免内存泄漏
	n.prev = nil
	n.chain = nil
	c.size--
}

// 把节点 n 移动到 at 之后
func (c *chain[T]) moveAfter(n, at *listNode[T]) {
	if n == at || at.next == n {
		return
	}
	// 从当前位置删除
	n.prev.next = n.next
	n.next.prev = n.prev

	// 插入到 at 之后
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
}

func (c *chain[T]) isElement(n *listNode[T]) bool {
	return n != nil && n.chain == c && n != c.head && n != c.tail
}

// LinkedList 带移到最前查找的双向链表，零值是可以直接使用的空链表
type LinkedList[T comparable] struct {
	c *chain[T]
}

// NewLinkedList 创建空链表
func NewLinkedList[T comparable]() *LinkedList[T] {
	l := new(LinkedList[T])
	l.lazyInit()
	return l
}

func (l *LinkedList[T]) lazyInit() *chain[T] {
	if l.c == nil {
		l.c = newChain[T]()
	}
	return l.c
}

// Size 返回元素个数（不包括哨兵）
func (l *LinkedList[T]) Size() int {
	if l.c == nil {
		return 0
	}
	return l.c.size
}

// Empty 判断链表是否为空
func (l *LinkedList[T]) Empty() bool {
	return l.Size() == 0
}

// Begin 返回指向第一个元素的迭代器，空链表时等于 End()
func (l *LinkedList[T]) Begin() ListIterator[T] {
	return ListIterator[T]{node: l.lazyInit().head.next}
}

// End 返回指向尾哨兵的迭代器
func (l *LinkedList[T]) End() ListIterator[T] {
	return ListIterator[T]{node: l.lazyInit().tail}
}

// Front 返回第一个元素
func (l *LinkedList[T]) Front() (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return l.c.head.next.value, nil
}

// Back 返回最后一个元素
func (l *LinkedList[T]) Back() (T, error) {
	if l.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return l.c.tail.prev.value, nil
}

// SetFront 修改第一个元素
func (l *LinkedList[T]) SetFront(value T) error {
	if l.Empty() {
		return ErrEmpty
	}
	l.c.head.next.value = value
	return nil
}

// SetBack 修改最后一个元素
func (l *LinkedList[T]) SetBack(value T) error {
	if l.Empty() {
		return ErrEmpty
	}
	l.c.tail.prev.value = value
	return nil
}

// Insert 在 pos 之前插入 value，返回指向新元素的迭代器
func (l *LinkedList[T]) Insert(pos ListIterator[T], value T) (ListIterator[T], error) {
	c := l.lazyInit()
	if at := pos.node; at == nil || at.chain != c || at == c.head {
		return ListIterator[T]{}, fmt.Errorf("%w: insert position is not in this list", ErrInvalidIterator)
	}
	return ListIterator[T]{node: c.insertBefore(value, pos.node)}, nil
}

// InsertMove 同 Insert，但把 *value 移入链表并重置为零值
func (l *LinkedList[T]) InsertMove(pos ListIterator[T], value *T) (ListIterator[T], error) {
	it, err := l.Insert(pos, *value)
	if err != nil {
		return it, err
	}
	var zero T
	*value = zero
	return it, nil
}

// Erase 删除 pos 指向的元素，返回指向其后继的迭代器
// pos 失效，其他迭代器不受影响
func (l *LinkedList[T]) Erase(pos ListIterator[T]) (ListIterator[T], error) {
	c := l.lazyInit()
	if !c.isElement(pos.node) {
		return ListIterator[T]{}, fmt.Errorf("%w: erase position is not an element of this list", ErrInvalidIterator)
	}
	next := pos.node.next
	c.remove(pos.node)
	return ListIterator[T]{node: next}, nil
}

// EraseRange 删除 [from, to) 中的全部元素，返回 to
// to 必须能从 from 向后到达，否则不做任何修改
func (l *LinkedList[T]) EraseRange(from, to ListIterator[T]) (ListIterator[T], error) {
	c := l.lazyInit()
	if from.node == nil || from.node.chain != c || from.node == c.head {
		return ListIterator[T]{}, fmt.Errorf("%w: range start is not in this list", ErrInvalidIterator)
	}
	for n := from.node; n != to.node; n = n.next {
		if n == c.tail {
			return ListIterator[T]{}, fmt.Errorf("%w: range end is not reachable from range start", ErrInvalidIterator)
		}
	}
	for n := from.node; n != to.node; {
		next := n.next
		c.remove(n)
		n = next
	}
	return to, nil
}

// PushFront 在头部添加元素
func (l *LinkedList[T]) PushFront(value T) ListIterator[T] {
	c := l.lazyInit()
	return ListIterator[T]{node: c.insertBefore(value, c.head.next)}
}

// PushBack 在尾部添加元素
func (l *LinkedList[T]) PushBack(value T) ListIterator[T] {
	c := l.lazyInit()
	return ListIterator[T]{node: c.insertBefore(value, c.tail)}
}

// PopFront 删除第一个元素
func (l *LinkedList[T]) PopFront() error {
	if l.Empty() {
		return ErrEmpty
	}
	l.c.remove(l.c.head.next)
	return nil
}

// PopBack 删除最后一个元素
func (l *LinkedList[T]) PopBack() error {
	if l.Empty() {
		return ErrEmpty
	}
	l.c.remove(l.c.tail.prev)
	return nil
}

// Clear 删除全部元素，哨兵保留
func (l *LinkedList[T]) Clear() {
	for !l.Empty() {
		l.c.remove(l.c.head.next)
	}
}

// Find 查找第一个等于 key 的元素，找到后把它移到链表头部
func (l *LinkedList[T]) Find(key T) bool {
	if l.Empty() {
		return false
	}
	for n := l.c.head.next; n != l.c.tail; n = n.next {
		if n.value == key {
			l.c.moveAfter(n, l.c.head)
			return true
		}
	}
	return false
}

// MoveToFront 把 pos 指向的元素移到链表头部
func (l *LinkedList[T]) MoveToFront(pos ListIterator[T]) error {
	c := l.lazyInit()
	if !c.isElement(pos.node) {
		return fmt.Errorf("%w: position is not an element of this list", ErrInvalidIterator)
	}
	c.moveAfter(pos.node, c.head)
	return nil
}

// MoveToBack 把 pos 指向的元素移到链表尾部
func (l *LinkedList[T]) MoveToBack(pos ListIterator[T]) error {
	c := l.lazyInit()
	if !c.isElement(pos.node) {
		return fmt.Errorf("%w: position is not an element of this list", ErrInvalidIterator)
	}
	c.moveAfter(pos.node, c.tail.prev)
	return nil
}

// All 从头到尾遍历元素
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.lazyInit()
		for n := c.head.next; n != c.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward 从尾到头遍历元素
func (l *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.lazyInit()
		for n := c.tail.prev; n != c.head; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values 返回全部元素的副本
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.Size())
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Clone 深拷贝，新链表与原链表不共享任何节点
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	clone := NewLinkedList[T]()
	for v := range l.All() {
		clone.PushBack(v)
	}
	return clone
}

// Move 把全部节点（连同哨兵）转移给返回值，l 变为空链表，仍可继续使用
func (l *LinkedList[T]) Move() *LinkedList[T] {
	moved := &LinkedList[T]{c: l.lazyInit()}
	l.c = nil
	return moved
}

// Swap 交换两个链表的内容
func (l *LinkedList[T]) Swap(other *LinkedList[T]) {
	l.c, other.c = other.c, l.c
}

// Assign 用 src 的深拷贝替换 l 的内容，l 原有的迭代器全部失效
func (l *LinkedList[T]) Assign(src *LinkedList[T]) {
	if l == src {
		return
	}
	clone := src.Clone()
	l.Clear()
	l.Swap(clone)
}

// String 元素之间用空格分隔，空链表输出 "Empty list"
func (l *LinkedList[T]) String() string {
	if l.Empty() {
		return "Empty list"
	}
	values := make([]string, 0, l.Size())
	for v := range l.All() {
		values = append(values, fmt.Sprintf("%v", v))
	}
	return strings.Join(values, " ")
}

// ToJSON 把元素编码为 JSON 数组
func (l *LinkedList[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// FromJSON 用 JSON 数组替换当前内容，解码失败时链表保持不变
func (l *LinkedList[T]) FromJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	replacement := NewLinkedList[T]()
	for _, v := range values {
		replacement.PushBack(v)
	}
	l.Swap(replacement)
	return nil
}

func (l *LinkedList[T]) MarshalJSON() ([]byte, error) {
	return l.ToJSON()
}

func (l *LinkedList[T]) UnmarshalJSON(data []byte) error {
	return l.FromJSON(data)
}

// Cursor 返回 gods 风格的有状态迭代器，初始位置在第一个元素之前
func (l *LinkedList[T]) Cursor() *ListCursor[T] {
	c := l.lazyInit()
	return &ListCursor[T]{chain: c, node: c.head, index: -1}
}

// ListIterator 链表迭代器，持有节点引用
//
// 按节点身份判等，不同链表的迭代器永远不相等。
// 越过 End() 前进或越过 Begin() 后退不做检查。
type ListIterator[T comparable] struct {
	node *listNode[T]
}

var _ Iterator[int, ListIterator[int]] = ListIterator[int]{}

// Next 返回后继位置
func (it ListIterator[T]) Next() ListIterator[T] {
	return ListIterator[T]{node: it.node.next}
}

// Prev 返回前驱位置
func (it ListIterator[T]) Prev() ListIterator[T] {
	return ListIterator[T]{node: it.node.prev}
}

// Equal 指向同一个节点时相等
func (it ListIterator[T]) Equal(other ListIterator[T]) bool {
	return it.node == other.node
}

// Valid 迭代器指向某个链表中的元素（不是哨兵，也没有被删除）
func (it ListIterator[T]) Valid() bool {
	return it.node != nil && it.node.chain != nil && it.node.chain.isElement(it.node)
}

// Value 返回当前元素，指向哨兵或已删除节点时 panic
func (it ListIterator[T]) Value() T {
	it.check()
	return it.node.value
}

// Set 修改当前元素，指向哨兵或已删除节点时 panic
func (it ListIterator[T]) Set(value T) {
	it.check()
	it.node.value = value
}

func (it ListIterator[T]) check() {
	if !it.Valid() {
		panic(fmt.Errorf("%w: iterator does not point to an element", ErrInvalidIterator))
	}
}

// ListCursor 实现 gods 的 containers.ReverseIteratorWithIndex
type ListCursor[T comparable] struct {
	chain *chain[T]
	node  *listNode[T]
	index int
}

var _ containers.ReverseIteratorWithIndex[int] = (*ListCursor[int])(nil)

// Next 移动到下一个元素，越过末尾时返回 false
func (c *ListCursor[T]) Next() bool {
	if c.node != c.chain.tail {
		c.node = c.node.next
		c.index++
	}
	return c.chain.isElement(c.node)
}

// Prev 移动到上一个元素，越过开头时返回 false
func (c *ListCursor[T]) Prev() bool {
	if c.node != c.chain.head {
		c.node = c.node.prev
		c.index--
	}
	return c.chain.isElement(c.node)
}

func (c *ListCursor[T]) Value() T {
	return c.node.value
}

func (c *ListCursor[T]) Index() int {
	return c.index
}

func (c *ListCursor[T]) Begin() {
	c.node = c.chain.head
	c.index = -1
}

func (c *ListCursor[T]) End() {
	c.node = c.chain.tail
	c.index = c.chain.size
}

func (c *ListCursor[T]) First() bool {
	c.Begin()
	return c.Next()
}

func (c *ListCursor[T]) Last() bool {
	c.End()
	return c.Prev()
}

// NextTo 前进到第一个满足 f 的元素
func (c *ListCursor[T]) NextTo(f func(index int, value T) bool) bool {
	for c.Next() {
		if f(c.index, c.Value()) {
			return true
		}
	}
	return false
}

// PrevTo 后退到第一个满足 f 的元素
func (c *ListCursor[T]) PrevTo(f func(index int, value T) bool) bool {
	for c.Prev() {
		if f(c.index, c.Value()) {
			return true
		}
	}
	return false
}
