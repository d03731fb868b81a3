package messages

// MessageType 是消息的线路类型标签，随消息帧一起传输，
// 用于标识请求或响应的具体类型。
type MessageType uint32

const (
	TypeEmpty MessageType = iota + 1 // 通用确认响应
	TypeError                        // 服务器报告的错误
	TypeUse
	TypeVelocity
	TypeRotate
	TypeStateQuery
	TypeState
	TypeComponentStatusQuery
	TypeComponentStatus
	TypeTimeQuery
	TypeTime
	TypeModuleStatusQuery
	TypeModuleStatus
	TypeTeleport
	TypeRadarPulse
	TypeRadar
	TypeLaserScan
	TypeLaser
	TypeForceField
	TypeMine
	TypeRepairRequest
	TypeRepair
	TypeThrust
	TypeAreaScan
	TypeScan
	TypeGPSQuery
	TypePosition
)

var typeNames = map[MessageType]string{
	TypeEmpty:                "empty",
	TypeError:                "error",
	TypeUse:                  "use",
	TypeVelocity:             "velocity",
	TypeRotate:               "rotate",
	TypeStateQuery:           "state_query",
	TypeState:                "state",
	TypeComponentStatusQuery: "component_status_query",
	TypeComponentStatus:      "component_status",
	TypeTimeQuery:            "time_query",
	TypeTime:                 "time",
	TypeModuleStatusQuery:    "module_status_query",
	TypeModuleStatus:         "module_status",
	TypeTeleport:             "teleport",
	TypeRadarPulse:           "radar_pulse",
	TypeRadar:                "radar",
	TypeLaserScan:            "laser_scan",
	TypeLaser:                "laser",
	TypeForceField:           "force_field",
	TypeMine:                 "mine",
	TypeRepairRequest:        "repair_request",
	TypeRepair:               "repair",
	TypeThrust:               "thrust",
	TypeAreaScan:             "area_scan",
	TypeScan:                 "scan",
	TypeGPSQuery:             "gps_query",
	TypePosition:             "position",
}

// String 返回类型标签的可读名称，用于日志和指标。
func (t MessageType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Request 表示一条发往游戏服务器的请求消息。
// 每种请求类型对应唯一的线路类型标签，并且只有一种合法的响应形态。
type Request interface {
	WireType() MessageType
}

// Response 表示从游戏服务器收到的一条响应消息。
// 每次交换只会收到其中一种变体；判别标签来自消息帧，不在消息体内重复。
type Response interface {
	WireType() MessageType
}

// ┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//            请求消息
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// UseRequest 触发指定部件。Sticky 为 1 时部件会在冷却结束后持续触发。
type UseRequest struct {
	ComponentID int32 `json:"component_id"`
	Sticky      int32 `json:"sticky"`
}

// VelocityRequest 设置机器人移动的方向向量和速度。
// 方向向量由服务器归一化，速度由服务器钳制到 [0,1]，客户端不做钳制。
type VelocityRequest struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

// RotateRequest 将机器人旋转到指定角度（机器人自身参考系，单位为度）。
type RotateRequest struct {
	Angle float64 `json:"angle"`
}

// StateQuery 查询机器人整体状态。
type StateQuery struct {
	Value int32 `json:"value"`
}

// ComponentStatusQuery 查询单个部件的状态。
type ComponentStatusQuery struct {
	ComponentID int32 `json:"component_id"`
}

// TimeQuery 查询服务器时间戳。
type TimeQuery struct {
	Value int32 `json:"value"`
}

// ModuleStatusQuery 查询指定模块的状态。
type ModuleStatusQuery struct {
	ModuleID int32 `json:"module_id"`
}

// TeleportRequest 将机器人传送到相对当前位置的坐标 (x, y)。
type TeleportRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RadarPulseRequest 发出一次雷达脉冲，探测最近的敌方机器人。
type RadarPulseRequest struct {
	Value int32 `json:"value"`
}

// LaserScanRequest 沿指定角度发出一次激光扫描。
type LaserScanRequest struct {
	Angle float64 `json:"angle"`
}

// ForceFieldRequest 激活力场。
type ForceFieldRequest struct {
	Value int32 `json:"value"`
}

// MineRequest 在机器人脚下布设一颗地雷。
type MineRequest struct {
	Value int32 `json:"value"`
}

// RepairRequest 修理指定部件。
type RepairRequest struct {
	ComponentID int32 `json:"component_id"`
}

// ThrustRequest 沿全局角度方向启动推进器。
type ThrustRequest struct {
	Angle float64 `json:"angle"`
}

// AreaScanRequest 发起一次 360 度范围扫描。
type AreaScanRequest struct {
	Value int32 `json:"value"`
}

// GPSQuery 查询机器人在地图上的绝对位置。
type GPSQuery struct {
	Value int32 `json:"value"`
}

func (UseRequest) WireType() MessageType           { return TypeUse }
func (VelocityRequest) WireType() MessageType      { return TypeVelocity }
func (RotateRequest) WireType() MessageType        { return TypeRotate }
func (StateQuery) WireType() MessageType           { return TypeStateQuery }
func (ComponentStatusQuery) WireType() MessageType { return TypeComponentStatusQuery }
func (TimeQuery) WireType() MessageType            { return TypeTimeQuery }
func (ModuleStatusQuery) WireType() MessageType    { return TypeModuleStatusQuery }
func (TeleportRequest) WireType() MessageType      { return TypeTeleport }
func (RadarPulseRequest) WireType() MessageType    { return TypeRadarPulse }
func (LaserScanRequest) WireType() MessageType     { return TypeLaserScan }
func (ForceFieldRequest) WireType() MessageType    { return TypeForceField }
func (MineRequest) WireType() MessageType          { return TypeMine }
func (RepairRequest) WireType() MessageType        { return TypeRepairRequest }
func (ThrustRequest) WireType() MessageType        { return TypeThrust }
func (AreaScanRequest) WireType() MessageType      { return TypeAreaScan }
func (GPSQuery) WireType() MessageType             { return TypeGPSQuery }

// ┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
//            响应消息
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

// EmptyResponse 表示命令已被服务器接受的空确认。
type EmptyResponse struct{}

// ErrorResponse 表示服务器拒绝了命令，携带数字错误码。
type ErrorResponse struct {
	ErrorCode int32 `json:"error_code"`
}

// StateResponse 表示机器人的整体状态快照。
type StateResponse struct {
	Angle     float64  `json:"angle"`
	VelocityX float64  `json:"vx"`
	VelocityY float64  `json:"vy"`
	Health    float64  `json:"health"`
	Buffs     []string `json:"buffs"`
}

// ComponentStatusResponse 表示单个部件的健康度、剩余冷却和激活状态。
type ComponentStatusResponse struct {
	Health   float64 `json:"health"`
	Cooldown float64 `json:"cooldown"`
	Active   bool    `json:"active"`
}

// ModuleStatusResponse 表示模块的剩余冷却时间。
type ModuleStatusResponse struct {
	Cooldown float64 `json:"cooldown"`
}

// RadarResponse 表示雷达探测到的最近敌方机器人的相对位置和距离。
type RadarResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Distance float64 `json:"distance"`
}

// LaserResponse 表示激光扫描命中的对象信息。
// 命中部件时 Kind 描述部件种类；命中墙体或哨戒塔时 Kind 和 Buffs 为空。
type LaserResponse struct {
	Tag      string   `json:"tag"`
	Kind     string   `json:"kind"`
	Distance float64  `json:"distance"`
	Angle    float64  `json:"angle"`
	Buffs    []string `json:"buffs"`
}

// ScanObject 表示范围扫描中发现的一个对象。
// 坐标相对于发起扫描的机器人。仅在一次扫描响应的生命周期内有效。
type ScanObject struct {
	Tag   string   `json:"tag"`
	Kind  string   `json:"kind"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Buffs []string `json:"buffs"`
}

// ScanResponse 表示一次范围扫描发现的全部对象。
type ScanResponse struct {
	Objects []ScanObject `json:"objects"`
}

// PositionResponse 表示机器人相对地图中心的绝对位置。
type PositionResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TimeResponse 表示服务器当前时间戳，单位为秒。
type TimeResponse struct {
	Timestamp float64 `json:"timestamp"`
}

// RepairResponse 表示修理后部件恢复到的健康度。
type RepairResponse struct {
	Health float64 `json:"health"`
}

func (*EmptyResponse) WireType() MessageType           { return TypeEmpty }
func (*ErrorResponse) WireType() MessageType           { return TypeError }
func (*StateResponse) WireType() MessageType           { return TypeState }
func (*ComponentStatusResponse) WireType() MessageType { return TypeComponentStatus }
func (*ModuleStatusResponse) WireType() MessageType    { return TypeModuleStatus }
func (*RadarResponse) WireType() MessageType           { return TypeRadar }
func (*LaserResponse) WireType() MessageType           { return TypeLaser }
func (*ScanResponse) WireType() MessageType            { return TypeScan }
func (*PositionResponse) WireType() MessageType        { return TypePosition }
func (*TimeResponse) WireType() MessageType            { return TypeTime }
func (*RepairResponse) WireType() MessageType          { return TypeRepair }
