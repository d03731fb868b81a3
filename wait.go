package rbot

import (
	"time"

	"go.uber.org/zap"

	"github.com/transairobot/rbot_go/rotations"
)

// DefaultPollInterval 是等待循环的默认轮询间隔。
// 宿主没有事件通知机制，等待只能靠短睡眠加重新查询实现，
// 因此等待延迟的下界由该间隔决定。
const DefaultPollInterval = 10 * time.Millisecond

type waitOptions struct {
	pollInterval time.Duration
	timeout      time.Duration
}

// WaitOption 调整等待循环的行为。
type WaitOption func(*waitOptions)

// WithPollInterval 覆盖默认的轮询间隔。
func WithPollInterval(d time.Duration) WaitOption {
	return func(o *waitOptions) {
		o.pollInterval = d
	}
}

// WithWaitTimeout 为等待设置上限，超过后返回 ErrWaitTimeout。
// 默认不设上限：等待只会因条件成立或查询失败而结束。
func WithWaitTimeout(d time.Duration) WaitOption {
	return func(o *waitOptions) {
		o.timeout = d
	}
}

// awaitCondition 反复查询直到条件成立。
// 查询失败立即传播并终止等待，不做任何局部重试。
func (c *Client) awaitCondition(cond func() (bool, error), opts ...WaitOption) error {
	o := waitOptions{pollInterval: DefaultPollInterval}
	for _, opt := range opts {
		opt(&o)
	}

	var deadline time.Time
	if o.timeout > 0 {
		deadline = time.Now().Add(o.timeout)
	}

	for {
		done, err := cond()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if !deadline.IsZero() && !time.Now().Before(deadline) {
			c.logger.Warn("等待超时", zap.Duration("timeout", o.timeout))
			return ErrWaitTimeout
		}

		c.host.Sleep(o.pollInterval)
	}
}

// AwaitAim 将指定部件瞄准全局角度 angle，并阻塞到瞄准完成。
// 先发出一次旋转命令，然后轮询机器人状态，
// 直到与目标的角距离严格小于 slack。
func (c *Client) AwaitAim(componentID int32, angle, slack float64, opts ...WaitOption) error {
	if err := c.Aim(componentID, angle); err != nil {
		return err
	}

	targetAngle := rotations.ToComponentFrame(componentID, angle)
	return c.awaitCondition(func() (bool, error) {
		state, err := c.State()
		if err != nil {
			return false, err
		}
		return rotations.AngleDistance(targetAngle, state.Angle) < slack, nil
	}, opts...)
}

// AwaitComponent 阻塞到指定部件的冷却结束。
// 返回后即可调用 UseComponent 触发该部件。
func (c *Client) AwaitComponent(componentID int32, opts ...WaitOption) error {
	return c.awaitCondition(func() (bool, error) {
		status, err := c.ComponentState(componentID)
		if err != nil {
			return false, err
		}
		return status.Cooldown <= 0, nil
	}, opts...)
}

// AwaitModule 阻塞到指定模块的冷却结束、模块可以再次使用。
func (c *Client) AwaitModule(module Module, opts ...WaitOption) error {
	return c.awaitCondition(func() (bool, error) {
		status, err := c.ModuleStatus(module)
		if err != nil {
			return false, err
		}
		return status.Cooldown <= 0, nil
	}, opts...)
}
