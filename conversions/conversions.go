// Package conversions 提供笛卡尔坐标与角度之间的换算。
package conversions

import "math"

// XYToAngle 计算从 +X 轴到点 (x, y) 方向的角度，单位为度。
// 返回值范围 (-180, 180]，逆时针为正。
func XYToAngle(x, y float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// AngleToXY 计算指定角度方向上的单位向量 (cos, sin)。
func AngleToXY(angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}
