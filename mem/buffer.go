package mem

import (
	"sync"
	"sync/atomic"
)

var (
	bufferPoolingThreshold = 1 << 10 // 1KB，多数命令帧都在此之下

	bufferObjectPool = sync.Pool{New: func() any { return new(buffer) }}
	refObjectPool    = sync.Pool{New: func() any { return new(atomic.Int32) }}
)

// Buffer 表示一段独占持有的字节区域。
// 宿主环境交还响应数据后，数据的所有权完全转移到 Buffer；
// 解码完成后必须调用 Free 释放，之后不得再读取。
type Buffer interface {
	// ReadOnlyData 返回底层字节切片。
	ReadOnlyData() []byte
	// Ref 增加此Buffer的引用计数。
	Ref()
	// Free 减少此Buffer的引用计数，计数降到0时释放底层字节切片。
	Free()
	// Len 返回Buffer的大小。
	Len() int
}

// NewBuffer 使用给定数据初始化Buffer，并将计数器初始化为1。
// 当Buffer持有的所有引用都被释放时，底层切片会归还到池中。
// 小于阈值的数据直接用切片包装，省去引用计数开销。
func NewBuffer(data *[]byte, pool BufferPool) Buffer {
	if pool == nil && IsLessBufferPoolThreshold(cap(*data)) {
		return (SliceBuffer)(*data)
	}

	b := bufferObjectPool.Get().(*buffer)
	b.originData = data
	b.data = *data
	b.pool = pool
	b.refs = refObjectPool.Get().(*atomic.Int32)
	b.refs.Add(1)
	return b
}

// Copy 将数据复制进池化缓冲区并返回其Buffer。
// 用于接管宿主写入的响应数据。
func Copy(data []byte, pool BufferPool) Buffer {
	buf := pool.Get(len(data))
	copy(*buf, data)
	return NewBuffer(buf, pool)
}

type buffer struct {
	originData *[]byte
	data       []byte
	refs       *atomic.Int32
	pool       BufferPool
}

func (b *buffer) ReadOnlyData() []byte {
	if b.refs == nil {
		panic("无法读取已释放的缓冲区")
	}
	return b.data
}

func (b *buffer) Ref() {
	if b.refs == nil {
		panic("无法引用已释放的缓冲区")
	}
	b.refs.Add(1)
}

func (b *buffer) Free() {
	if b.refs == nil {
		panic("无法释放已释放的缓冲区")
	}

	refs := b.refs.Add(-1)
	switch {
	case refs > 0:
		return
	case refs == 0:
		if b.pool != nil {
			b.pool.Put(b.originData)
		}

		refObjectPool.Put(b.refs)
		b.originData = nil
		b.data = nil
		b.refs = nil
		b.pool = nil
		bufferObjectPool.Put(b)
	default:
		panic("无法释放已释放的缓冲区")
	}
}

func (b *buffer) Len() int {
	return len(b.ReadOnlyData())
}

// IsLessBufferPoolThreshold 判断所需大小是否低于启用池化缓冲区的阈值。
func IsLessBufferPoolThreshold(size int) bool {
	return size <= bufferPoolingThreshold
}

// SliceBuffer 是包装字节切片的Buffer实现，
// 在所需大小未达到阈值时使用，Ref/Free 为空操作。
type SliceBuffer []byte

func (s SliceBuffer) ReadOnlyData() []byte { return s }

func (s SliceBuffer) Ref() {}

func (s SliceBuffer) Free() {}

func (s SliceBuffer) Len() int { return len(s) }
