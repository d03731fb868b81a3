// Package hostws 通过 WebSocket 二进制通道实现宿主传输通道，
// 作为无法使用 QUIC 的环境下的后备方案。
// 每次往返发送一帧二进制消息并等待一帧二进制响应。
package hostws

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	rbot "github.com/transairobot/rbot_go"
	"github.com/transairobot/rbot_go/messages"
)

// Config 描述 WebSocket 宿主通道的连接参数。
type Config struct {
	HandshakeTimeout time.Duration
	IOTimeout        time.Duration
}

// Host 是基于 WebSocket 的宿主通道实现。
type Host struct {
	conn      *websocket.Conn
	ioTimeout time.Duration
	logger    *zap.Logger

	// websocket.Conn 不允许并发读写，执行模型本身是单线程的，
	// 互斥锁只是守住这个不变式。
	mu sync.Mutex
}

// Dial 建立到游戏服务器的 WebSocket 连接。
func Dial(url string, conf *Config) (*Host, error) {
	if conf == nil {
		conf = &Config{}
	}

	handshakeTimeout := conf.HandshakeTimeout
	if handshakeTimeout <= 0 {
		handshakeTimeout = 10 * time.Second
	}

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	ioTimeout := conf.IOTimeout
	if ioTimeout <= 0 {
		ioTimeout = 10 * time.Second
	}

	h := &Host{
		conn:      conn,
		ioTimeout: ioTimeout,
		logger:    zap.L(),
	}

	h.logger.Info("已连接到游戏服务器", zap.String("url", url))
	return h, nil
}

// RoundTrip 执行一次阻塞的请求/响应交换。
// 响应必须是单帧二进制消息，帧内布局与 QUIC 通道一致。
func (h *Host) RoundTrip(request []byte) (uint32, []byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.conn.SetWriteDeadline(time.Now().Add(h.ioTimeout)); err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to set write deadline", Err: err}
	}
	if err := h.conn.WriteMessage(websocket.BinaryMessage, request); err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to send request", Err: err}
	}

	if err := h.conn.SetReadDeadline(time.Now().Add(h.ioTimeout)); err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to set read deadline", Err: err}
	}
	msgType, frame, err := h.conn.ReadMessage()
	if err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to read response", Err: err}
	}
	if msgType != websocket.BinaryMessage {
		return 0, nil, &rbot.HostFaultError{Reason: "unexpected websocket message type"}
	}

	typ, body, err := parseFrame(frame)
	if err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "malformed response frame", Err: err}
	}
	return typ, body, nil
}

// parseFrame 校验并拆开 [类型标签 u32][长度 u32][消息体] 布局的响应帧。
func parseFrame(frame []byte) (uint32, []byte, error) {
	if len(frame) < 8 {
		return 0, nil, fmt.Errorf("frame too short: %d bytes", len(frame))
	}

	typ := binary.LittleEndian.Uint32(frame[0:])
	bodyLen := binary.LittleEndian.Uint32(frame[4:])

	if bodyLen > messages.MaxBodyLength {
		return 0, nil, fmt.Errorf("body length too large: %d bytes", bodyLen)
	}
	if int(bodyLen) != len(frame)-8 {
		return 0, nil, fmt.Errorf("body length mismatch: declared %d, actual %d", bodyLen, len(frame)-8)
	}

	return typ, frame[8:], nil
}

// Log 把游戏控制台输出转到结构化日志。
func (h *Host) Log(text string) {
	h.logger.Info(text)
}

// Sleep 让出控制权约指定时长。
func (h *Host) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Random 返回 [0,1] 区间内的均匀伪随机数。
func (h *Host) Random() float64 {
	return rand.Float64()
}

// Close 关闭到服务器的连接。
func (h *Host) Close() error {
	return h.conn.Close()
}
