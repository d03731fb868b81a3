package rbot

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/transairobot/rbot_go/mem"
	"github.com/transairobot/rbot_go/messages"
)

// Client 是机器人控制协议的消息客户端，所有协议流量都经过这里。
// 执行模型是单逻辑线程的：每次调用恰好一次请求/响应往返，
// 没有流水线，也没有并发的在途请求。
type Client struct {
	host    Host
	logger  *zap.Logger
	metrics *Metrics
}

// Option 配置客户端的可选行为。
type Option func(*Client)

// WithLogger 替换默认的全局 zap 日志器。
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics 为客户端启用往返指标采集。
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New 基于宿主能力创建一个消息客户端。
func New(host Host, opts ...Option) *Client {
	c := &Client{
		host:   host,
		logger: zap.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send 执行一次完整的请求/响应交换：编码 → 宿主往返 → 解码。
// 每次调用产生恰好一次网络等价往返。部分命令（开火、传送、布雷）
// 在服务器上有真实副作用，本层绝不自动重试。
func (c *Client) Send(req messages.Request) (messages.Response, error) {
	buf, err := messages.Encode(req)
	if err != nil {
		return nil, err
	}
	defer buf.Free()

	start := time.Now()
	typ, payload, err := c.host.RoundTrip(buf.ReadOnlyData())
	if err != nil {
		c.metrics.observeError(req.WireType())
		return nil, fmt.Errorf("round trip failed for %s request: %w", req.WireType(), err)
	}

	// 接管宿主交还的响应数据；解码结束后立即释放，绝不跨调用保留
	owned := mem.NewBuffer(&payload, nil)
	defer owned.Free()

	resp, err := messages.Decode(messages.MessageType(typ), owned.ReadOnlyData())
	if err != nil {
		c.metrics.observeError(req.WireType())
		return nil, &HostFaultError{Reason: "undecodable response frame", Err: err}
	}

	c.metrics.observeRoundTrip(req.WireType(), time.Since(start))
	c.logger.Debug("交换完成",
		zap.Stringer("request", req.WireType()),
		zap.Stringer("response", resp.WireType()))

	return resp, nil
}

// exchange 发送请求并期待唯一匹配的响应变体 T。
// 错误变体映射为 BadCommandError；任何其他变体都是协议违例，
// 绝不静默强转。每种请求类型只有一种合法的响应形态。
func exchange[T messages.Response](c *Client, req messages.Request) (T, error) {
	var zero T

	resp, err := c.Send(req)
	if err != nil {
		return zero, err
	}

	if errResp, ok := resp.(*messages.ErrorResponse); ok {
		return zero, &BadCommandError{Code: errResp.ErrorCode}
	}

	if matched, ok := resp.(T); ok {
		return matched, nil
	}

	return zero, fmt.Errorf("%w: got %s for %s request",
		ErrUnexpectedResponse, resp.WireType(), req.WireType())
}
