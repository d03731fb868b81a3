package mem

import (
	"sync"
)

// BufferPool 是一个具有各种缓冲区大小的自管理池。
type BufferPool interface {
	// Get 返回指定大小的缓冲区。
	Get(size int) *[]byte
	// Put 将缓冲区返回到池中。
	Put(buffer *[]byte)
}

var defaultPool bufferPool

// 针对本协议消息帧优化的缓冲区大小：
// 命令帧在百字节量级，范围扫描响应最大。
var bufferPoolSizes = []int{
	1 << 6,  // 64B - 空确认和小命令
	1 << 7,  // 128B - 一般命令帧
	1 << 8,  // 256B - 状态快照
	1 << 9,  // 512B - 部件/模块状态
	1 << 10, // 1KB - 激光/雷达响应
	1 << 12, // 4KB - 小型范围扫描
	1 << 14, // 16KB - 大型范围扫描
	1 << 16, // 64KB - 极端对象密度的扫描
}

type bufferPool struct {
	pools   []*sync.Pool
	maxSize int
}

func init() {
	defaultPool.maxSize = bufferPoolSizes[len(bufferPoolSizes)-1]
	defaultPool.pools = make([]*sync.Pool, len(bufferPoolSizes))

	for i := range bufferPoolSizes {
		size := bufferPoolSizes[i]
		defaultPool.pools[i] = &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, 0, size)
				return &buf
			},
		}
	}
}

// DefaultBufferPool 返回内存池
func DefaultBufferPool() BufferPool {
	return &defaultPool
}

// Get 返回指定大小的缓冲区。
func (p *bufferPool) Get(size int) *[]byte {
	if size <= 0 {
		return &[]byte{}
	}

	index := p.findBestFitPool(size)
	if index >= 0 {
		buf := p.pools[index].Get().(*[]byte)
		*buf = (*buf)[0:size]
		return buf
	}

	buf := make([]byte, size)
	return &buf
}

// Put 将缓冲区返回到池中。
func (p *bufferPool) Put(buffer *[]byte) {
	if buffer == nil {
		return
	}

	size := cap(*buffer)
	if size <= 0 || size > p.maxSize {
		return
	}

	*buffer = (*buffer)[:0]

	index := p.findClosestPool(size)
	if index >= 0 {
		p.pools[index].Put(buffer)
	}
}

func (p *bufferPool) findBestFitPool(size int) int {
	for i, poolSize := range bufferPoolSizes {
		if size <= poolSize {
			return i
		}
	}
	return -1
}

func (p *bufferPool) findClosestPool(size int) int {
	for i := len(bufferPoolSizes) - 1; i >= 0; i-- {
		if size >= bufferPoolSizes[i] {
			return i
		}
	}
	return 0
}
