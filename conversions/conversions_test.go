package conversions

import (
	"math"
	"testing"
)

func TestXYToAngleAxes(t *testing.T) {
	cases := []struct {
		x, y float64
		want float64
	}{
		{1, 0, 0},
		{0, 1, 90},
		{-1, 0, 180},
		{0, -1, -90},
		{1, 1, 45},
	}

	for _, c := range cases {
		got := XYToAngle(c.x, c.y)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("角度不匹配: (%v,%v) 得到 %v, 期望 %v", c.x, c.y, got, c.want)
		}
	}
}

func TestXYToAngleRange(t *testing.T) {
	for deg := -720; deg <= 720; deg += 7 {
		rad := float64(deg) * math.Pi / 180
		angle := XYToAngle(math.Cos(rad), math.Sin(rad))
		if angle <= -180 || angle > 180 {
			t.Errorf("角度超出范围 (-180,180]: 得到 %v", angle)
		}
	}
}

func TestAngleToXYUnitVector(t *testing.T) {
	for deg := -180; deg <= 180; deg += 15 {
		x, y := AngleToXY(float64(deg))
		norm := math.Hypot(x, y)
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("不是单位向量: 角度 %d, 模长 %v", deg, norm)
		}
	}
}

func TestRoundTripDirection(t *testing.T) {
	// xy_to_angle 再 angle_to_xy 得到的单位向量必须与原向量同向
	points := [][2]float64{{1, 0}, {3, 4}, {-2, 5}, {-1, -1}, {0.1, -7}}

	for _, p := range points {
		angle := XYToAngle(p[0], p[1])
		x, y := AngleToXY(angle)

		norm := math.Hypot(p[0], p[1])
		cosSim := (x*p[0] + y*p[1]) / norm
		if math.Abs(cosSim-1) > 1e-9 {
			t.Errorf("方向不一致: (%v,%v) 余弦相似度 %v", p[0], p[1], cosSim)
		}
	}
}
