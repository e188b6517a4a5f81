package self_adjusting

// ReadIterator 只读迭代器：前进、后退、取值、判等
//
// Next/Prev 返回新的位置而不修改接收者，因此前置和后置自增都可以表达：
//
//	old := it
//	it = it.Next()
type ReadIterator[T any, I any] interface {
	Next() I
	Prev() I
	Value() T
	Equal(I) bool
}

// Iterator 可写迭代器，在只读迭代器的基础上允许修改当前位置的值
type Iterator[T any, I any] interface {
	ReadIterator[T, I]
	Set(T)
}

// Walk 依次访问 [begin, end) 中的元素，fn 返回 false 时停止
func Walk[T any, I ReadIterator[T, I]](begin, end I, fn func(T) bool) {
	for it := begin; !it.Equal(end); it = it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// Collect 把 [begin, end) 中的元素收集到切片
func Collect[T any, I ReadIterator[T, I]](begin, end I) []T {
	values := make([]T, 0)
	Walk(begin, end, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Distance 返回从 begin 走到 end 需要的步数
func Distance[T any, I ReadIterator[T, I]](begin, end I) int {
	n := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		n++
	}
	return n
}
