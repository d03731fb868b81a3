package messages

// 扫描和激光命中对象的 tag 分类。
const (
	ObjectTagBot       = "bot"
	ObjectTagComponent = "component"
	ObjectTagWall      = "wall"
	ObjectTagSentry    = "sentry"
)

// 部件对象的 kind 子分类。不适用时为空字符串。
const (
	ObjectKindMotherboard = "motherboard"
	ObjectKindRifle       = "rifle"
)
