package rbot

import "time"

// Host 是宿主环境提供的能力边界。
// 核心只消费这些能力，不关心它们的具体实现：
// 部署环境由 hostquic/hostws 提供，测试环境用内存脚本替代。
type Host interface {
	// RoundTrip 执行一次阻塞的请求/响应交换：发送完整的请求帧，
	// 返回响应的类型标签和消息体。返回的字节所有权转移给调用方，
	// 宿主保证不再复用这块数据。
	// 结构非法的响应帧必须以 *HostFaultError 报告。
	RoundTrip(request []byte) (typ uint32, payload []byte, err error)

	// Log 输出一行诊断文本。部署环境下可能是空操作。
	Log(text string)

	// Sleep 让出控制权约指定时长，是唯一可用的调度原语。
	Sleep(d time.Duration)

	// Random 返回 [0,1] 区间内的均匀伪随机数。
	Random() float64
}
