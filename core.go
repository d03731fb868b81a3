package rbot

import (
	"fmt"
	"time"

	"github.com/transairobot/rbot_go/messages"
	"github.com/transairobot/rbot_go/rotations"
)

// UseComponent 触发指定部件开火。
// sticky 为 true 时，部件会在每次冷却结束后自动再次触发；
// 否则只触发一次。
func (c *Client) UseComponent(componentID int32, sticky bool) error {
	var stickyFlag int32
	if sticky {
		stickyFlag = 1
	}

	_, err := exchange[*messages.EmptyResponse](c, messages.UseRequest{
		ComponentID: componentID,
		Sticky:      stickyFlag,
	})
	return err
}

// Velocity 设置机器人移动的方向和速度。
// (x, y) 是方向向量，由服务器归一化为单位向量；
// speed 是 [0,1] 之间的速度大小，钳制发生在游戏服务器上，客户端不做钳制。
func (c *Client) Velocity(x, y, speed float64) error {
	_, err := exchange[*messages.EmptyResponse](c, messages.VelocityRequest{
		X:     x,
		Y:     y,
		Speed: speed,
	})
	return err
}

// Rotate 将机器人旋转到指定角度（度，机器人自身参考系）。
// 不建议频繁发送小幅旋转更新，那会降低旋转效率。
func (c *Client) Rotate(angle float64) error {
	_, err := exchange[*messages.EmptyResponse](c, messages.RotateRequest{Angle: angle})
	return err
}

// Aim 将指定部件瞄准全局参考系中的角度。
// 全局坐标系以地图中心为原点，0 度指向右方（+X 轴），90 度指向上方。
// 角度会先变换到部件的本地参考系，再发出旋转命令。
func (c *Client) Aim(componentID int32, angle float64) error {
	return c.Rotate(rotations.ToComponentFrame(componentID, angle))
}

// AtRotation 判断指定部件当前是否处于目标角度的 slack 容差范围内。
// 推荐的 slack 值为 0.5 度。判定条件是角距离严格小于 slack。
func (c *Client) AtRotation(componentID int32, angle, slack float64) (bool, error) {
	targetAngle := rotations.ToComponentFrame(componentID, angle)

	state, err := c.State()
	if err != nil {
		return false, err
	}

	return rotations.AngleDistance(targetAngle, state.Angle) < slack, nil
}

// State 查询机器人的整体状态快照：角度、速度、主板健康度和激活的增益。
// 每次调用反映服务器在该时刻的状态，响应不做任何缓存。
func (c *Client) State() (*messages.StateResponse, error) {
	return exchange[*messages.StateResponse](c, messages.StateQuery{})
}

// ComponentState 查询单个部件的健康度、剩余冷却和激活状态。
func (c *Client) ComponentState(componentID int32) (*messages.ComponentStatusResponse, error) {
	return exchange[*messages.ComponentStatusResponse](c, messages.ComponentStatusQuery{
		ComponentID: componentID,
	})
}

// Time 查询服务器当前时间戳，单位为秒。
func (c *Client) Time() (float64, error) {
	resp, err := exchange[*messages.TimeResponse](c, messages.TimeQuery{})
	if err != nil {
		return 0, err
	}
	return resp.Timestamp, nil
}

// Sleep 阻塞当前逻辑线程约 seconds 秒后恢复执行。
func (c *Client) Sleep(seconds float64) {
	c.host.Sleep(time.Duration(seconds * float64(time.Second)))
}

// Random 返回 [0,1] 区间内的均匀伪随机数。
// 沙箱环境出于安全考虑不开放处理器级随机源，随机数由宿主提供。
func (c *Client) Random() float64 {
	return c.host.Random()
}

// Print 将文本写入游戏控制台。部署后该输出可能被宿主丢弃。
func (c *Client) Print(text string) {
	c.host.Log(text)
}

// Printf 按格式写入游戏控制台。
func (c *Client) Printf(format string, args ...any) {
	c.host.Log(fmt.Sprintf(format, args...))
}
