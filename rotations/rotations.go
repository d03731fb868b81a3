// Package rotations 提供部件参考系与全局参考系之间的角度变换。
//
// 所有角度以度为单位，0 度指向 +X 轴，逆时针为正方向。
// 部件按固定的硬件布局安装，每个部件编号相对机器人参考系偏转 -90 度，
// 该偏移约定必须严格保持，否则瞄准会映射到错误的物理部件。
package rotations

import "math"

// ToComponentFrame 将全局参考系中的角度变换到指定部件的本地参考系。
func ToComponentFrame(componentID int32, angle float64) float64 {
	return angle - 90*float64(componentID)
}

// FromComponentFrame 将部件本地参考系中的角度变换回全局参考系。
func FromComponentFrame(componentID int32, angle float64) float64 {
	return angle + 90*float64(componentID)
}

// AngleDistance 计算两个角度之间的最小角距离。
// 结果考虑了角度的圆周性质，范围总是 [0, 180]。
func AngleDistance(angle, otherAngle float64) float64 {
	diff := angle - otherAngle
	return math.Abs(euclidMod(diff+180, 360) - 180)
}

// euclidMod 返回非负的欧几里得余数。
// math.Mod 对负数返回负余数，这里需要映射到 [0, m)。
func euclidMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
