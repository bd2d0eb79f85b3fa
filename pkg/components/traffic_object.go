package components

import "github.com/Akhipbm/Traffic-runner/pkg/ecs"

// ObjectType 交通物体类型
type ObjectType int

const (
	ObjectTrafficLight ObjectType = iota
	ObjectStopSign
	ObjectSpeedLimit
	ObjectSpeedBump
	ObjectObstacleCar
	ObjectZebraCrossing
	ObjectTree
)

var objectTypeNames = map[ObjectType]string{
	ObjectTrafficLight:  "TRAFFIC_LIGHT",
	ObjectStopSign:      "STOP_SIGN",
	ObjectSpeedLimit:    "SPEED_LIMIT",
	ObjectSpeedBump:     "SPEED_BUMP",
	ObjectObstacleCar:   "OBSTACLE_CAR",
	ObjectZebraCrossing: "ZEBRA_CROSSING",
	ObjectTree:          "TREE",
}

// String 返回类型名（与配置文件中的写法一致）
func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseObjectType 将配置中的类型名解析为 ObjectType
func ParseObjectType(name string) (ObjectType, bool) {
	for t, n := range objectTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// ObjectBase 所有交通物体共有的字段
type ObjectBase struct {
	ID ecs.EntityID
	// Y 物体参考点的屏幕纵坐标，从负值开始随道路滚动逐渐增大
	Y float64
	// Processed 通过事件是否已经判定过（防止重复计分）
	Processed bool
}

// Base 返回公共字段
func (b *ObjectBase) Base() *ObjectBase {
	return b
}

// TrafficObject 交通物体的封闭和类型
//
// 只有本包中的变体实现该接口：
// *TrafficLight, *StopSign, *SpeedLimitSign, *SpeedBump,
// *ObstacleCar, *ZebraCrossing, *Tree
type TrafficObject interface {
	Base() *ObjectBase
	Type() ObjectType
	// Clone 返回深拷贝，用于生成只读快照
	Clone() TrafficObject
	sealed()
}
