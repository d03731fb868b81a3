package messages

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/transairobot/rbot_go/mem"
)

// 消息帧布局为 [类型标签 u32][消息体长度 u32][JSON 消息体]，小端序。
// 消息体采用 JSON 编码，保持协议可读、可扩展。
const (
	frameHeaderSize = 8
	// MaxBodyLength 是单条消息体允许的最大字节数。
	// 范围扫描是最大的响应，远小于该上限。
	MaxBodyLength = 1 << 20
)

// Encode 将请求序列化为完整的消息帧。
// 返回的缓冲区来自内存池，调用方在发送完成后必须调用 Free 归还。
// 同一请求总是产生相同的字节序列，便于离线测试。
func Encode(req Request) (mem.Buffer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	pool := mem.DefaultBufferPool()
	buf := pool.Get(frameHeaderSize + len(body))

	binary.LittleEndian.PutUint32((*buf)[0:], uint32(req.WireType()))
	binary.LittleEndian.PutUint32((*buf)[4:], uint32(len(body)))
	copy((*buf)[frameHeaderSize:], body)

	return mem.NewBuffer(buf, pool), nil
}

// Decode 按类型标签将消息体重建为对应的响应变体。
// 未知标签或与该变体形态不符的消息体都会解码失败，绝不部分填充结果。
func Decode(typ MessageType, body []byte) (Response, error) {
	var resp Response
	switch typ {
	case TypeEmpty:
		resp = &EmptyResponse{}
	case TypeError:
		resp = &ErrorResponse{}
	case TypeState:
		resp = &StateResponse{}
	case TypeComponentStatus:
		resp = &ComponentStatusResponse{}
	case TypeModuleStatus:
		resp = &ModuleStatusResponse{}
	case TypeRadar:
		resp = &RadarResponse{}
	case TypeLaser:
		resp = &LaserResponse{}
	case TypeScan:
		resp = &ScanResponse{}
	case TypePosition:
		resp = &PositionResponse{}
	case TypeTime:
		resp = &TimeResponse{}
	case TypeRepair:
		resp = &RepairResponse{}
	default:
		return nil, fmt.Errorf("unknown response type tag: %d", typ)
	}

	if err := decodeStrict(body, resp); err != nil {
		return nil, fmt.Errorf("failed to decode %s body: %w", typ, err)
	}
	return resp, nil
}

// decodeStrict 严格解码 JSON 消息体：未知字段和尾部多余数据都视为错误。
func decodeStrict(body []byte, v any) error {
	// 空确认允许空消息体
	if len(body) == 0 {
		if _, ok := v.(*EmptyResponse); ok {
			return nil
		}
		return errors.New("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after body")
	}
	return nil
}

// ReadFrame 从流中读取一个完整的消息帧，返回类型标签和消息体。
// 供传输适配器使用；结构不合法的帧在这里报错，与服务器错误响应区分开。
func ReadFrame(r io.Reader) (MessageType, []byte, error) {
	headerBuf := make([]byte, frameHeaderSize)
	n, err := io.ReadFull(r, headerBuf)
	if err != nil {
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil, fmt.Errorf("stream closed or insufficient data (%d/%d bytes): %w", n, frameHeaderSize, err)
		}
		return 0, nil, fmt.Errorf("failed to read frame header (%d/%d bytes): %w", n, frameHeaderSize, err)
	}

	typ := MessageType(binary.LittleEndian.Uint32(headerBuf[0:]))
	bodyLen := binary.LittleEndian.Uint32(headerBuf[4:])

	if bodyLen > MaxBodyLength {
		return 0, nil, fmt.Errorf("body length too large: %d bytes (max: %d)", bodyLen, MaxBodyLength)
	}

	var body []byte
	if bodyLen > 0 {
		body = make([]byte, bodyLen)
		n, err = io.ReadFull(r, body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to read frame body (%d/%d bytes): %w", n, bodyLen, err)
		}
	}

	return typ, body, nil
}
