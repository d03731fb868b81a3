package rbot

import (
	"github.com/transairobot/rbot_go/messages"
)

// Module 标识机器人上的一个固定硬件子系统。
// 集合在机器人生命周期内固定不变，编号对应硬件布局。
type Module int32

const (
	Teleporter Module = iota
	Radar
	ForceField
	Laser
	Mine
	Repair
	Thruster
	Scanner
	GPS
)

var moduleNames = [...]string{
	Teleporter: "teleporter",
	Radar:      "radar",
	ForceField: "force_field",
	Laser:      "laser",
	Mine:       "mine",
	Repair:     "repair",
	Thruster:   "thruster",
	Scanner:    "scanner",
	GPS:        "gps",
}

func (m Module) String() string {
	if m >= 0 && int(m) < len(moduleNames) {
		return moduleNames[m]
	}
	return "unknown"
}

// ModuleStatus 查询指定模块的状态，包含再次可用前的剩余冷却时长。
func (c *Client) ModuleStatus(module Module) (*messages.ModuleStatusResponse, error) {
	return exchange[*messages.ModuleStatusResponse](c, messages.ModuleStatusQuery{
		ModuleID: int32(module),
	})
}

// Teleport 将机器人瞬移到相对当前位置的坐标 (x, y)。
//
// Deprecated: 传送模块已被标记为废弃，保留仅为兼容旧脚本。
func (c *Client) Teleport(x, y float64) error {
	_, err := exchange[*messages.EmptyResponse](c, messages.TeleportRequest{X: x, Y: y})
	return err
}

// RadarPulse 发出一次雷达脉冲，返回探测范围内最近敌方机器人
// 相对本机的位置和距离。
func (c *Client) RadarPulse() (*messages.RadarResponse, error) {
	return exchange[*messages.RadarResponse](c, messages.RadarPulseRequest{})
}

// LaserScan 沿指定角度（相对机器人朝向）发出激光，返回视线内命中的对象。
// 命中部件时响应带有部件种类和增益信息，命中墙体或哨戒塔时两者为空。
func (c *Client) LaserScan(angle float64) (*messages.LaserResponse, error) {
	return exchange[*messages.LaserResponse](c, messages.LaserScanRequest{Angle: angle})
}

// ActivateForceField 激活力场，让机器人在短时间内免疫伤害。
func (c *Client) ActivateForceField() error {
	_, err := exchange[*messages.EmptyResponse](c, messages.ForceFieldRequest{})
	return err
}

// DeployMine 在机器人脚下布设一颗延时激活的地雷。
// 地雷激活后对己方同样有效，驶过时会受到伤害。
func (c *Client) DeployMine() error {
	_, err := exchange[*messages.EmptyResponse](c, messages.MineRequest{})
	return err
}

// RepairComponent 修理指定部件，返回修理后的健康度。
func (c *Client) RepairComponent(componentID int32) (*messages.RepairResponse, error) {
	return exchange[*messages.RepairResponse](c, messages.RepairRequest{
		ComponentID: componentID,
	})
}

// Thrust 沿全局角度方向启动推进器，让机器人快速位移一小段距离。
func (c *Client) Thrust(angle float64) error {
	_, err := exchange[*messages.EmptyResponse](c, messages.ThrustRequest{Angle: angle})
	return err
}

// Scan 发起一次 360 度范围扫描，返回范围内全部对象的
// 分类、种类、相对坐标和增益信息。
func (c *Client) Scan() (*messages.ScanResponse, error) {
	return exchange[*messages.ScanResponse](c, messages.AreaScanRequest{})
}

// Position 通过 GPS 查询机器人相对地图中心的绝对坐标。
func (c *Client) Position() (*messages.PositionResponse, error) {
	return exchange[*messages.PositionResponse](c, messages.GPSQuery{})
}

// ScanForBot 扫描并定位敌方机器人。
// 优先寻找主板部件，找到时直接以主板位置作为整机位置；
// 否则取所有部件位置的平均值。范围内没有任何部件时返回 nil。
func (c *Client) ScanForBot() (*messages.ScanObject, error) {
	scan, err := c.Scan()
	if err != nil {
		return nil, err
	}

	var components []messages.ScanObject
	for _, obj := range scan.Objects {
		if obj.Tag == messages.ObjectTagComponent {
			components = append(components, obj)
		}
	}

	if len(components) == 0 {
		return nil, nil
	}

	for _, comp := range components {
		if comp.Kind == messages.ObjectKindMotherboard {
			return &messages.ScanObject{
				X:     comp.X,
				Y:     comp.Y,
				Tag:   messages.ObjectTagBot,
				Buffs: comp.Buffs,
			}, nil
		}
	}

	var sumX, sumY float64
	for _, comp := range components {
		sumX += comp.X
		sumY += comp.Y
	}

	return &messages.ScanObject{
		X:   sumX / float64(len(components)),
		Y:   sumY / float64(len(components)),
		Tag: messages.ObjectTagBot,
	}, nil
}
