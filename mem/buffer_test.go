package mem

import (
	"bytes"
	"testing"
)

func TestPoolGetLength(t *testing.T) {
	pool := DefaultBufferPool()

	for _, size := range []int{1, 64, 100, 4096, 1 << 16, 1<<16 + 1} {
		buf := pool.Get(size)
		if len(*buf) != size {
			t.Errorf("缓冲区长度不匹配: 得到 %d, 期望 %d", len(*buf), size)
		}
		pool.Put(buf)
	}
}

func TestPoolGetZero(t *testing.T) {
	buf := DefaultBufferPool().Get(0)
	if len(*buf) != 0 {
		t.Errorf("零大小应当返回空缓冲区: 得到 %d", len(*buf))
	}
}

func TestBufferOwnership(t *testing.T) {
	pool := DefaultBufferPool()
	data := pool.Get(128)
	copy(*data, "hello")

	buf := NewBuffer(data, pool)
	if buf.Len() != 128 {
		t.Errorf("长度不匹配: 得到 %d, 期望 128", buf.Len())
	}
	if !bytes.Equal(buf.ReadOnlyData()[:5], []byte("hello")) {
		t.Errorf("数据不匹配: 得到 %q", buf.ReadOnlyData()[:5])
	}

	// 引用计数让缓冲区在最后一个引用释放前保持可读
	buf.Ref()
	buf.Free()
	if !bytes.Equal(buf.ReadOnlyData()[:5], []byte("hello")) {
		t.Errorf("仍持有引用时数据应当可读")
	}
	buf.Free()
}

func TestBufferUseAfterFreePanics(t *testing.T) {
	pool := DefaultBufferPool()
	buf := NewBuffer(pool.Get(2048), pool)
	buf.Free()

	defer func() {
		if recover() == nil {
			t.Errorf("释放后读取应当触发panic")
		}
	}()
	_ = buf.ReadOnlyData()
}

func TestSmallBufferBypassesPooling(t *testing.T) {
	data := []byte("small")
	buf := NewBuffer(&data, nil)

	if _, ok := buf.(SliceBuffer); !ok {
		t.Errorf("阈值之下应当使用SliceBuffer: 得到 %T", buf)
	}

	// SliceBuffer 的 Free 是空操作，释放后仍可读取
	buf.Free()
	if !bytes.Equal(buf.ReadOnlyData(), []byte("small")) {
		t.Errorf("数据不匹配: 得到 %q", buf.ReadOnlyData())
	}
}

func TestCopyTakesOwnership(t *testing.T) {
	original := []byte("host payload")
	buf := Copy(original, DefaultBufferPool())
	defer buf.Free()

	// 修改原始数据不影响已接管的副本
	original[0] = 'X'
	if !bytes.Equal(buf.ReadOnlyData(), []byte("host payload")) {
		t.Errorf("副本被原始数据污染: 得到 %q", buf.ReadOnlyData())
	}
}
