package rbot

import (
	"errors"
	"testing"
	"time"

	"github.com/transairobot/rbot_go/messages"
)

func TestAwaitAimBlocksUntilWithinSlack(t *testing.T) {
	// 旋转命令之后，连续的状态查询依次报告 89.0°、89.5°、90.0°，
	// 前两次未达容差（0.5 恰好等于容差也不算到位），
	// 第三次角距离严格小于 0.5 后返回。
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeEmpty, nil),
		reply(t, messages.TypeState, &messages.StateResponse{Angle: 89.0}),
		reply(t, messages.TypeState, &messages.StateResponse{Angle: 89.5}),
		reply(t, messages.TypeState, &messages.StateResponse{Angle: 90.0}),
	}}
	client := New(host)

	if err := client.AwaitAim(0, 90, 0.5); err != nil {
		t.Fatalf("等待瞄准失败: %v", err)
	}

	if len(host.requests) != 4 {
		t.Errorf("请求数量不匹配: 得到 %d, 期望 4", len(host.requests))
	}
	if len(host.sleeps) != 2 {
		t.Errorf("睡眠次数不匹配: 得到 %d, 期望 2", len(host.sleeps))
	}
	for _, d := range host.sleeps {
		if d != DefaultPollInterval {
			t.Errorf("轮询间隔不匹配: 得到 %v, 期望 %v", d, DefaultPollInterval)
		}
	}
}

func TestAwaitAimStrictTolerance(t *testing.T) {
	// 角距离恰好等于容差不算到位，判定是严格小于
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeEmpty, nil),
		reply(t, messages.TypeState, &messages.StateResponse{Angle: 89.5}),
		reply(t, messages.TypeState, &messages.StateResponse{Angle: 89.75}),
	}}
	client := New(host)

	if err := client.AwaitAim(0, 90, 0.5); err != nil {
		t.Fatalf("等待瞄准失败: %v", err)
	}
	if len(host.sleeps) != 1 {
		t.Errorf("睡眠次数不匹配: 得到 %d, 期望 1", len(host.sleeps))
	}
}

func TestAwaitAimUsesComponentFrame(t *testing.T) {
	// 部件 2 的本地参考系偏转 -180°，全局 90° 对应本地 -90°
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeEmpty, nil),
		reply(t, messages.TypeState, &messages.StateResponse{Angle: -90}),
	}}
	client := New(host)

	if err := client.AwaitAim(2, 90, 0.5); err != nil {
		t.Fatalf("等待瞄准失败: %v", err)
	}
	if len(host.sleeps) != 0 {
		t.Errorf("已到位时不应睡眠: 睡眠了 %d 次", len(host.sleeps))
	}
}

func TestAwaitComponentCooldown(t *testing.T) {
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 0.3}),
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 0.1}),
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 0}),
	}}
	client := New(host)

	if err := client.AwaitComponent(1); err != nil {
		t.Fatalf("等待部件冷却失败: %v", err)
	}
	if len(host.requests) != 3 {
		t.Errorf("查询次数不匹配: 得到 %d, 期望 3", len(host.requests))
	}
	if len(host.sleeps) != 2 {
		t.Errorf("睡眠次数不匹配: 得到 %d, 期望 2", len(host.sleeps))
	}
}

func TestAwaitModuleCooldown(t *testing.T) {
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeModuleStatus, &messages.ModuleStatusResponse{Cooldown: 1.2}),
		reply(t, messages.TypeModuleStatus, &messages.ModuleStatusResponse{Cooldown: 0}),
	}}
	client := New(host)

	if err := client.AwaitModule(Radar); err != nil {
		t.Fatalf("等待模块冷却失败: %v", err)
	}

	_, body := host.requestFrame(t, 0)
	if string(body) != `{"module_id":1}` {
		t.Errorf("模块编号不匹配: 得到 %s", body)
	}
}

func TestAwaitAbortsOnFirstError(t *testing.T) {
	// 等待循环传播遇到的第一个失败并终止，不跨过错误继续轮询
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 0.5}),
		reply(t, messages.TypeError, &messages.ErrorResponse{ErrorCode: 3}),
	}}
	client := New(host)

	err := client.AwaitComponent(0)
	var badCmd *BadCommandError
	if !errors.As(err, &badCmd) || badCmd.Code != 3 {
		t.Fatalf("错误传播不匹配: 得到 %v", err)
	}
	if len(host.requests) != 2 {
		t.Errorf("出错后不应继续查询: 查询了 %d 次", len(host.requests))
	}
}

func TestAwaitTimeoutOption(t *testing.T) {
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 5}),
	}}
	client := New(host)

	err := client.AwaitComponent(0, WithWaitTimeout(time.Nanosecond))
	if !errors.Is(err, ErrWaitTimeout) {
		t.Fatalf("应当返回等待超时: 得到 %v", err)
	}

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) || !timeoutErr.IsTimeout() {
		t.Errorf("超时错误类型不匹配: 得到 %T", err)
	}
}

func TestPollIntervalOption(t *testing.T) {
	host := &scriptedHost{replies: []scriptedReply{
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 0.2}),
		reply(t, messages.TypeComponentStatus, &messages.ComponentStatusResponse{Cooldown: 0}),
	}}
	client := New(host)

	if err := client.AwaitComponent(0, WithPollInterval(50*time.Millisecond)); err != nil {
		t.Fatalf("等待部件冷却失败: %v", err)
	}
	if len(host.sleeps) != 1 || host.sleeps[0] != 50*time.Millisecond {
		t.Errorf("轮询间隔不匹配: 得到 %v", host.sleeps)
	}
}
