package rbot

import (
	"errors"
	"fmt"
)

// BadCommandError 表示服务器明确拒绝了命令，携带服务器返回的数字错误码。
type BadCommandError struct {
	Code int32
}

func (e *BadCommandError) Error() string {
	return fmt.Sprintf("bad command with error code %d", e.Code)
}

// ErrUnexpectedResponse 表示收到的响应变体与请求期望的形态不符。
// 这是本地判定的协议违例，说明版本偏差或客户端缺陷，区别于服务器错误。
var ErrUnexpectedResponse = errors.New("unexpected response type")

// HostFaultError 表示宿主环境返回了结构非法的帧。
// 这是环境故障，不是可恢复的应用层错误，不得与服务器错误响应混淆。
type HostFaultError struct {
	Reason string
	Err    error
}

func (e *HostFaultError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("host fault: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("host fault: %s", e.Reason)
}

func (e *HostFaultError) Unwrap() error {
	return e.Err
}

// TimeoutError 表示与超时相关的错误
type TimeoutError struct {
	message string
}

func NewTimeoutError(message string) *TimeoutError {
	return &TimeoutError{message: message}
}

func (e *TimeoutError) Error() string {
	return e.message
}

func (e *TimeoutError) IsTimeout() bool {
	return true
}

// ErrWaitTimeout 在可选的等待超时到期时返回。
var ErrWaitTimeout = NewTimeoutError("等待操作超时")
