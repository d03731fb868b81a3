package hostquic

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestBlockRoundTrip(t *testing.T) {
	data, err := msgpack.Marshal(&hello{Client: "rbot_go", Version: 1})
	if err != nil {
		t.Fatalf("序列化握手消息失败: %v", err)
	}

	var buf bytes.Buffer
	if err := writeBlock(&buf, data); err != nil {
		t.Fatalf("写入数据块失败: %v", err)
	}

	read, err := readBlock(&buf)
	if err != nil {
		t.Fatalf("读取数据块失败: %v", err)
	}

	var decoded hello
	if err := msgpack.Unmarshal(read, &decoded); err != nil {
		t.Fatalf("反序列化握手消息失败: %v", err)
	}
	if decoded.Client != "rbot_go" || decoded.Version != 1 {
		t.Errorf("握手消息不匹配: 得到 %+v", decoded)
	}
}

func TestReadBlockTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBlock(&buf, []byte("session info")); err != nil {
		t.Fatalf("写入数据块失败: %v", err)
	}

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	if _, err := readBlock(truncated); err == nil {
		t.Errorf("截断的数据块应当读取失败")
	}
}

func TestSessionInfoSerialization(t *testing.T) {
	session := &SessionInfo{ServerVersion: 3, RobotID: "bot-42", TickIntervalMS: 16}

	data, err := msgpack.Marshal(session)
	if err != nil {
		t.Fatalf("序列化会话信息失败: %v", err)
	}

	var decoded SessionInfo
	if err := msgpack.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("反序列化会话信息失败: %v", err)
	}
	if decoded != *session {
		t.Errorf("会话信息不匹配: 得到 %+v, 期望 %+v", decoded, *session)
	}
}
