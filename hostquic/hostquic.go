// Package hostquic 通过 QUIC 连接游戏服务器，实现宿主传输通道。
// 每次往返占用一条新的双向流：写入完整请求帧，读取完整响应帧。
package hostquic

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/quic-go/quic-go"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	rbot "github.com/transairobot/rbot_go"
	"github.com/transairobot/rbot_go/messages"
)

const alpnProtocol = "rbot"

// Config 描述 QUIC 宿主通道的连接参数。
type Config struct {
	// TLS 为空时根据 InsecureSkipVerify 构建默认配置。
	TLS                *tls.Config
	InsecureSkipVerify bool
	HandshakeTimeout   time.Duration
	IOTimeout          time.Duration
}

// SessionInfo 是会话握手时服务器下发的元信息。
type SessionInfo struct {
	ServerVersion  uint32 `msgpack:"server_version"`
	RobotID        string `msgpack:"robot_id"`
	TickIntervalMS uint32 `msgpack:"tick_interval_ms"`
}

type hello struct {
	Client  string `msgpack:"client"`
	Version uint32 `msgpack:"version"`
}

// Host 是基于 QUIC 的宿主通道实现。
// 执行模型是单逻辑线程的，同一时刻至多一次在途往返。
type Host struct {
	conn      *quic.Conn
	session   *SessionInfo
	ioTimeout time.Duration
	logger    *zap.Logger
}

// Dial 建立到游戏服务器的 QUIC 连接并完成会话握手。
func Dial(ctx context.Context, addr string, conf *Config) (*Host, error) {
	if conf == nil {
		conf = &Config{}
	}

	tlsConf := conf.TLS
	if tlsConf == nil {
		tlsConf = &tls.Config{
			InsecureSkipVerify: conf.InsecureSkipVerify,
		}
	} else {
		tlsConf = tlsConf.Clone()
	}
	tlsConf.NextProtos = []string{alpnProtocol}

	handshakeTimeout := conf.HandshakeTimeout
	if handshakeTimeout <= 0 {
		handshakeTimeout = 10 * time.Second
	}

	dialCtx, cancel := context.WithTimeout(ctx, handshakeTimeout)
	defer cancel()

	conn, err := quic.DialAddr(dialCtx, addr, tlsConf, &quic.Config{
		MaxIdleTimeout:  3 * time.Minute,
		KeepAlivePeriod: 20 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
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

	session, err := h.handshake(dialCtx)
	if err != nil {
		_ = conn.CloseWithError(0, "握手失败")
		return nil, err
	}
	h.session = session

	h.logger.Info("已连接到游戏服务器",
		zap.String("addr", addr),
		zap.String("robot_id", session.RobotID))

	return h, nil
}

// handshake 在专用流上交换 msgpack 编码的会话信息。
func (h *Host) handshake(ctx context.Context) (*SessionInfo, error) {
	stream, err := h.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open handshake stream: %w", err)
	}
	defer stream.Close()

	helloData, err := msgpack.Marshal(&hello{Client: "rbot_go", Version: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hello: %w", err)
	}

	if err := writeBlock(stream, helloData); err != nil {
		return nil, fmt.Errorf("failed to send hello: %w", err)
	}

	sessionData, err := readBlock(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read session info: %w", err)
	}

	var session SessionInfo
	if err := msgpack.Unmarshal(sessionData, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session info: %w", err)
	}

	return &session, nil
}

// Session 返回握手时服务器下发的会话信息。
func (h *Host) Session() *SessionInfo {
	return h.session
}

// RoundTrip 执行一次阻塞的请求/响应交换。
// 结构非法的响应帧以 *rbot.HostFaultError 报告，与服务器错误响应区分。
func (h *Host) RoundTrip(request []byte) (uint32, []byte, error) {
	stream, err := h.conn.OpenStreamSync(context.Background())
	if err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to open stream", Err: err}
	}
	defer stream.Close()

	if err := stream.SetWriteDeadline(time.Now().Add(h.ioTimeout)); err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to set write deadline", Err: err}
	}
	if _, err := stream.Write(request); err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to send request", Err: err}
	}

	if err := stream.SetReadDeadline(time.Now().Add(h.ioTimeout)); err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "failed to set read deadline", Err: err}
	}

	typ, body, err := messages.ReadFrame(stream)
	if err != nil {
		return 0, nil, &rbot.HostFaultError{Reason: "malformed response frame", Err: err}
	}

	return uint32(typ), body, nil
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
	return h.conn.CloseWithError(0, "会话结束")
}

// writeBlock 写入 [长度 u32][数据] 格式的数据块。
func writeBlock(w io.Writer, data []byte) error {
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(data)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// readBlock 读取 [长度 u32][数据] 格式的数据块。
func readBlock(r io.Reader) ([]byte, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > messages.MaxBodyLength {
		return nil, fmt.Errorf("block too large: %d bytes", size)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}
