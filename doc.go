// Package rbot 是战斗机器人的客户端控制库。
//
// 库把高层意图（开火、移动、旋转、扫描敌人）转换成与权威游戏服务器
// 之间的紧凑类型化请求/响应协议，并提供同步等待原语，
// 让用户脚本可以阻塞到某个异步的服务器侧条件成立（冷却结束、旋转到位）。
//
// 执行模型是单逻辑线程的协作式模型：每次协议调用都阻塞到宿主通道
// 完成一次往返，等待循环靠固定间隔的短睡眠加重新查询实现。
//
// 一个典型的用户脚本：让机器人向上移动，用雷达定位敌人，
// 然后把部件瞄准过去开火。
//
//	client := rbot.New(host)
//
//	// 向上移动
//	client.Velocity(0, 1, 1)
//
//	// 等雷达模块可用后定位敌人
//	client.AwaitModule(rbot.Radar)
//	radar, err := client.RadarPulse()
//	if err != nil {
//		client.Print("雷达调用失败")
//		return
//	}
//
//	// 把敌人的相对坐标换算成角度，瞄准并开火
//	angle := conversions.XYToAngle(radar.X, radar.Y)
//	client.AwaitAim(2, angle, 0.5)
//	client.AwaitComponent(2)
//	client.UseComponent(2, false)
package rbot
