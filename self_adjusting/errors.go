package self_adjusting

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange 下标越界
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty 对空容器执行 Front/Back/Pop 等操作
	ErrEmpty = errors.New("list is empty")
	// ErrInvalidIterator 迭代器已失效，或不属于当前容器，或指向哨兵节点
	ErrInvalidIterator = errors.New("invalid iterator")
)

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}
