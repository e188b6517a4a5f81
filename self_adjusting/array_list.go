package self_adjusting

/*
自调整动态数组

原理：
在普通动态数组的基础上加入"移到最前"（move-to-front）启发式：
Find 命中后，把找到的元素移动到下标 0，原来位于它之前的元素整体后移一位。
访问分布越倾斜（少数键被反复查找），后续查找越快。

关键特点：
1. 连续存储，O(1) 随机访问，均摊 O(1) 尾部追加
2. 容量不足时按 1.5 倍扩容，容量只增不减
3. 构造时额外预留 SpareCapacity 个空位，避免零容量缓冲区
4. Find 是插入式旋转而不是交换，其余元素的相对顺序保持不变

实现方式：
- data 的长度就是容量，size 之后的槽位始终保持零值
- 扩容时先分配新缓冲区并复制，再整体替换，失败不会破坏原数组
- version 在扩容或元素个数变化时递增，用来判定迭代器是否失效

复杂度：
- At/Set/PushBack（均摊）：O(1)
- Find：O(n) 查找 + O(n) 旋转，总体 O(n)
*/

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/emirpasic/gods/v2/containers"

	"github.com/strive/selfadjusting/logutil"
)

// SpareCapacity 构造时在请求容量之上额外预留的槽位数
const SpareCapacity = 2

var (
	_ containers.Container[int] = (*ArrayList[int])(nil)
	_ containers.JSONSerializer = (*ArrayList[int])(nil)
	_ containers.JSONDeserializer = (*ArrayList[int])(nil)
)

// ArrayList 带移到最前查找的动态数组，零值是容量为 0 的空数组
type ArrayList[T comparable] struct {
	data    []T // len(data) 即容量
	size    int
	version uint64
}

// NewArrayList 创建容量为 initialCapacity+SpareCapacity 的空数组
func NewArrayList[T comparable](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{data: make([]T, initialCapacity+SpareCapacity)}
}

// Size 返回元素个数
func (a *ArrayList[T]) Size() int {
	return a.size
}

// Capacity 返回当前缓冲区能容纳的元素个数
func (a *ArrayList[T]) Capacity() int {
	return len(a.data)
}

// Empty 判断数组是否为空
func (a *ArrayList[T]) Empty() bool {
	return a.size == 0
}

// At 返回下标 index 处的元素
func (a *ArrayList[T]) At(index int) (T, error) {
	if !a.withinRange(index) {
		var zero T
		return zero, outOfRange(index, a.size)
	}
	return a.data[index], nil
}

// Set 修改下标 index 处的元素
func (a *ArrayList[T]) Set(index int, value T) error {
	if !a.withinRange(index) {
		return outOfRange(index, a.size)
	}
	a.data[index] = value
	return nil
}

// Front 返回第一个元素
func (a *ArrayList[T]) Front() (T, error) {
	if a.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return a.data[0], nil
}

// Back 返回最后一个元素
func (a *ArrayList[T]) Back() (T, error) {
	if a.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return a.data[a.size-1], nil
}

// Reserve 把容量调整为 newCapacity，newCapacity 小于元素个数时不做任何事
func (a *ArrayList[T]) Reserve(newCapacity int) {
	if newCapacity < a.size || newCapacity == len(a.data) {
		return
	}

	logutil.Trace("array reserve", "size", a.size, "from", len(a.data), "to", newCapacity)

	data := make([]T, newCapacity)
	copy(data, a.data[:a.size])
	a.data = data
	a.version++
}

// Resize 把元素个数设为 newSize，新增的位置为零值
func (a *ArrayList[T]) Resize(newSize int) error {
	if newSize < 0 {
		return outOfRange(newSize, a.size)
	}
	if newSize > len(a.data) {
		a.Reserve(newSize * 3 / 2)
	}
	if newSize < a.size {
		clear(a.data[newSize:a.size])
	}
	if newSize != a.size {
		a.size = newSize
		a.version++
	}
	return nil
}

// PushBack 在末尾追加 value 的副本
func (a *ArrayList[T]) PushBack(value T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = value
	a.size++
	a.version++
}

// EmplaceBack 把 *value 移入数组末尾，*value 被重置为零值
func (a *ArrayList[T]) EmplaceBack(value *T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = *value
	var zero T
	*value = zero
	a.size++
	a.version++
}

// PopBack 删除最后一个元素
func (a *ArrayList[T]) PopBack() error {
	if a.Empty() {
		return ErrEmpty
	}
	a.size--
	var zero T
	a.data[a.size] = zero
	a.version++
	return nil
}

// Clear 删除全部元素，容量不变
func (a *ArrayList[T]) Clear() {
	clear(a.data[:a.size])
	a.size = 0
	a.version++
}

// Find 查找第一个等于 key 的元素，找到后把它移到下标 0，
// 原本在它前面的元素依次后移一位
func (a *ArrayList[T]) Find(key T) bool {
	i := slices.Index(a.data[:a.size], key)
	if i < 0 {
		return false
	}
	found := a.data[i]
	copy(a.data[1:i+1], a.data[:i])
	a.data[0] = found
	return true
}

// Begin 返回指向第一个元素的迭代器
func (a *ArrayList[T]) Begin() ArrayIterator[T] {
	return ArrayIterator[T]{list: a, index: 0, version: a.version}
}

// End 返回指向最后一个元素之后位置的迭代器
func (a *ArrayList[T]) End() ArrayIterator[T] {
	return ArrayIterator[T]{list: a, index: a.size, version: a.version}
}

// All 按顺序遍历元素
func (a *ArrayList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Backward 逆序遍历元素
func (a *ArrayList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Values 返回全部元素的副本
func (a *ArrayList[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.data[:a.size])
	return values
}

// Clone 深拷贝，容量与原数组相同
func (a *ArrayList[T]) Clone() *ArrayList[T] {
	c := &ArrayList[T]{data: make([]T, len(a.data)), size: a.size}
	copy(c.data, a.data[:a.size])
	return c
}

// Move 把缓冲区的所有权转移给返回值，a 变为容量为 0 的空数组，仍可继续使用
func (a *ArrayList[T]) Move() *ArrayList[T] {
	moved := &ArrayList[T]{data: a.data, size: a.size}
	a.data = nil
	a.size = 0
	a.version++
	return moved
}

// Swap 交换两个数组的内容
func (a *ArrayList[T]) Swap(other *ArrayList[T]) {
	a.data, other.data = other.data, a.data
	a.size, other.size = other.size, a.size
	a.version++
	other.version++
}

// Assign 用 src 的深拷贝替换 a 的内容
func (a *ArrayList[T]) Assign(src *ArrayList[T]) {
	if a == src {
		return
	}
	a.Swap(src.Clone())
}

// String 元素之间用空格分隔，空数组输出 "Empty list"
func (a *ArrayList[T]) String() string {
	if a.Empty() {
		return "Empty list"
	}
	values := make([]string, 0, a.size)
	for v := range a.All() {
		values = append(values, fmt.Sprintf("%v", v))
	}
	return strings.Join(values, " ")
}

// ToJSON 把元素编码为 JSON 数组
func (a *ArrayList[T]) ToJSON() ([]byte, error) {
	return json.Marshal(a.Values())
}

// FromJSON 用 JSON 数组替换当前内容，解码失败时数组保持不变
func (a *ArrayList[T]) FromJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	replacement := NewArrayList[T](len(values))
	for _, v := range values {
		replacement.PushBack(v)
	}
	a.Swap(replacement)
	return nil
}

func (a *ArrayList[T]) MarshalJSON() ([]byte, error) {
	return a.ToJSON()
}

func (a *ArrayList[T]) UnmarshalJSON(data []byte) error {
	return a.FromJSON(data)
}

// Cursor 返回 gods 风格的有状态迭代器，初始位置在第一个元素之前
func (a *ArrayList[T]) Cursor() *ArrayCursor[T] {
	return &ArrayCursor[T]{list: a, index: -1}
}

// grow 按 1.5 倍扩容；容量太小无法增长时改为增加 SpareCapacity
func (a *ArrayList[T]) grow() {
	newCapacity := len(a.data) * 3 / 2
	if newCapacity <= len(a.data) {
		newCapacity = len(a.data) + SpareCapacity
	}
	a.Reserve(newCapacity)
}

func (a *ArrayList[T]) withinRange(index int) bool {
	return index >= 0 && index < a.size
}

// ArrayIterator 数组迭代器，相当于指向元素的指针
//
// 数组扩容或元素个数变化后，之前取得的迭代器失效，
// 对失效迭代器调用 Value/Set 会 panic。
type ArrayIterator[T comparable] struct {
	list    *ArrayList[T]
	index   int
	version uint64
}

var _ Iterator[int, ArrayIterator[int]] = ArrayIterator[int]{}

// Next 返回下一个位置
func (it ArrayIterator[T]) Next() ArrayIterator[T] {
	it.index++
	return it
}

// Prev 返回上一个位置
func (it ArrayIterator[T]) Prev() ArrayIterator[T] {
	it.index--
	return it
}

// Index 返回当前下标
func (it ArrayIterator[T]) Index() int {
	return it.index
}

// Equal 两个迭代器属于同一个数组且位置相同时相等
func (it ArrayIterator[T]) Equal(other ArrayIterator[T]) bool {
	return it.list == other.list && it.index == other.index
}

// Valid 迭代器未失效且指向一个元素
func (it ArrayIterator[T]) Valid() bool {
	return it.list != nil && it.version == it.list.version && it.list.withinRange(it.index)
}

// Value 返回当前位置的元素
func (it ArrayIterator[T]) Value() T {
	it.check()
	return it.list.data[it.index]
}

// Set 修改当前位置的元素
func (it ArrayIterator[T]) Set(value T) {
	it.check()
	it.list.data[it.index] = value
}

func (it ArrayIterator[T]) check() {
	if it.list == nil || it.version != it.list.version {
		panic(fmt.Errorf("%w: array modified after the iterator was taken", ErrInvalidIterator))
	}
	if !it.list.withinRange(it.index) {
		panic(outOfRange(it.index, it.list.size))
	}
}

// ArrayCursor 实现 gods 的 containers.ReverseIteratorWithIndex
type ArrayCursor[T comparable] struct {
	list  *ArrayList[T]
	index int
}

var _ containers.ReverseIteratorWithIndex[int] = (*ArrayCursor[int])(nil)

// Next 移动到下一个元素，越过末尾时返回 false
func (c *ArrayCursor[T]) Next() bool {
	if c.index < c.list.size {
		c.index++
	}
	return c.list.withinRange(c.index)
}

// Prev 移动到上一个元素，越过开头时返回 false
func (c *ArrayCursor[T]) Prev() bool {
	if c.index >= 0 {
		c.index--
	}
	return c.list.withinRange(c.index)
}

func (c *ArrayCursor[T]) Value() T {
	return c.list.data[c.index]
}

func (c *ArrayCursor[T]) Index() int {
	return c.index
}

func (c *ArrayCursor[T]) Begin() {
	c.index = -1
}

func (c *ArrayCursor[T]) End() {
	c.index = c.list.size
}

func (c *ArrayCursor[T]) First() bool {
	c.Begin()
	return c.Next()
}

func (c *ArrayCursor[T]) Last() bool {
	c.End()
	return c.Prev()
}

// NextTo 前进到第一个满足 f 的元素
func (c *ArrayCursor[T]) NextTo(f func(index int, value T) bool) bool {
	for c.Next() {
		if f(c.index, c.Value()) {
			return true
		}
	}
	return false
}

// PrevTo 后退到第一个满足 f 的元素
func (c *ArrayCursor[T]) PrevTo(f func(index int, value T) bool) bool {
	for c.Prev() {
		if f(c.index, c.Value()) {
			return true
		}
	}
	return false
}
