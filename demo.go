package main

/*
演示程序

依次演示：
- 自调整链表：头插四个名字，Find 之后被找到的名字移到最前，再在头部插入两个名字
- 自调整数组：尾插五个整数，Find 之后被找到的整数移到下标 0
- 基于自调整链表的LRU缓存：文件系统缓存场景，以及与 FIFO 的命中率对比
*/

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/strive/selfadjusting/cache_strategies"
	"github.com/strive/selfadjusting/self_adjusting"
)

// ListDemo 自调整链表演示
func ListDemo(w io.Writer) error {
	names := self_adjusting.NewLinkedList[string]()
	names.PushFront("Shane")
	names.PushFront("Daniel")
	names.PushFront("Lela")
	names.PushFront("Tamara")

	fmt.Fprintln(w, "Starting Names using for each loop:")
	printSeq(w, names.All())

	found := names.Find("Daniel")
	slog.Debug("list find", "key", "Daniel", "found", found)
	fmt.Fprintln(w, "Test for find function:")
	printSeq(w, names.All())

	for _, name := range []string{"New Name", "Another new one"} {
		if _, err := names.Insert(names.Begin(), name); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "Display for inserting in front as well as a normal for loop:")
	printRange[string](w, names.Begin(), names.End())
	return nil
}

// ArrayDemo 自调整数组演示，capacity 是数组的初始容量
func ArrayDemo(w io.Writer, capacity int) error {
	list := self_adjusting.NewArrayList[int](capacity)
	for _, v := range []int{45, 23, 12, 10, 13} {
		list.PushBack(v)
	}
	slog.Debug("array filled", "size", list.Size(), "capacity", list.Capacity())

	fmt.Fprintln(w, "Starting list values using for loop:")
	printRange[int](w, list.Begin(), list.End())

	found := list.Find(12)
	slog.Debug("array find", "key", 12, "found", found)
	fmt.Fprintln(w, "Display after find function using for each loop:")
	printSeq(w, list.All())
	return nil
}

// CacheDemo 场景示例：文件系统缓存
func CacheDemo(w io.Writer) error {
	cache, err := cache_strategies.NewLRUCache[string, string](4)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "File system cache (LRU capacity=4):")

	cache.Put("file1.txt", "content of file 1")
	cache.Put("file2.txt", "content of file 2")
	cache.Put("file3.txt", "content of file 3")
	cache.Put("file4.txt", "content of file 4")
	printCacheStatus(w, cache, "after reading four files")

	// 再次访问 file1，提升为最近使用
	if content, ok := cache.Get("file1.txt"); ok {
		fmt.Fprintf(w, "read file1.txt: %s\n", content)
	}
	printCacheStatus(w, cache, "after reading file1.txt")

	// 访问新文件 file5，最久未使用的 file2 被淘汰
	cache.Put("file5.txt", "content of file 5")
	printCacheStatus(w, cache, "after reading file5.txt")

	if _, ok := cache.Get("file2.txt"); !ok {
		fmt.Fprintln(w, "file2.txt is not cached (evicted)")
	}

	lruHits, fifoHits, err := skewedAccess(3, 60)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nskewed access (capacity=3, 60 reads): lru hits=%d, fifo hits=%d\n", lruHits, fifoHits)
	return nil
}

// skewedAccess 偶数次访问热点键 0，奇数次轮流访问 7 个冷键，统计两种策略的命中次数
func skewedAccess(capacity, reads int) (lruHits, fifoHits int, err error) {
	lru, err := cache_strategies.NewLRUCache[int, int](capacity)
	if err != nil {
		return 0, 0, err
	}
	fifo, err := cache_strategies.NewFIFOCache[int, int](capacity)
	if err != nil {
		return 0, 0, err
	}

	for i := range reads {
		key := 0
		if i%2 == 1 {
			key = 1 + i%7
		}
		if _, ok := lru.Get(key); ok {
			lruHits++
		} else {
			lru.Put(key, i)
		}
		if _, ok := fifo.Get(key); ok {
			fifoHits++
		} else {
			fifo.Put(key, i)
		}
	}
	return lruHits, fifoHits, nil
}

// printSeq 用 for range 输出元素
func printSeq[T any](w io.Writer, values iter.Seq[T]) {
	for v := range values {
		fmt.Fprintf(w, "%v | ", v)
	}
	fmt.Fprintln(w)
}

// printRange 用迭代器位置输出 [begin, end) 的元素，数组和链表共用
func printRange[T any, I self_adjusting.ReadIterator[T, I]](w io.Writer, begin, end I) {
	for it := begin; !it.Equal(end); it = it.Next() {
		fmt.Fprintf(w, "%v | ", it.Value())
	}
	fmt.Fprintln(w)
}

func printCacheStatus(w io.Writer, cache *cache_strategies.LRUCache[string, string], title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	// 从最近到最久遍历所有缓存项
	for _, key := range cache.Keys() {
		fmt.Fprintf(w, "key: %s\n", key)
	}
}
