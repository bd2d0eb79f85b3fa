package components

// Tree 路边装饰树，不参与任何规则判定
type Tree struct {
	ObjectBase
	X float64
}

func (t *Tree) Type() ObjectType { return ObjectTree }

func (t *Tree) Clone() TrafficObject {
	c := *t
	return &c
}

func (t *Tree) sealed() {}
