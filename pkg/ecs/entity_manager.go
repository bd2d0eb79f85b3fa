package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 按创建顺序管理一组实体
//
// 与场景中的所有实体一一对应，迭代顺序即生成顺序，
// 保证每帧规则判定的顺序是确定的。
type EntityManager[T any] struct {
	nextID uint64
	// 按创建顺序排列的实体ID
	order []EntityID
	// EntityID -> 实体数据
	entities map[EntityID]T
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		order:             make([]EntityID, 0),
		entities:          make(map[EntityID]T),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 分配一个新的唯一ID（尚未登记实体数据）
func (em *EntityManager[T]) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	return id
}

// AddEntity 登记实体数据，重复登记同一ID只更新数据不改变顺序
func (em *EntityManager[T]) AddEntity(id EntityID, entity T) {
	if _, exists := em.entities[id]; !exists {
		em.order = append(em.order, id)
	}
	em.entities[id] = entity
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// GetEntity 获取实体数据
func (em *EntityManager[T]) GetEntity(id EntityID) (T, bool) {
	entity, found := em.entities[id]
	return entity, found
}

// HasEntity 检查实体是否存在
func (em *EntityManager[T]) HasEntity(id EntityID) bool {
	_, found := em.entities[id]
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager[T]) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.entities, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	// 压缩顺序表，保持剩余实体的相对顺序
	kept := em.order[:0]
	for _, id := range em.order {
		if _, alive := em.entities[id]; alive {
			kept = append(kept, id)
		}
	}
	em.order = kept
}

// Entities 按创建顺序返回所有实体
func (em *EntityManager[T]) Entities() []T {
	result := make([]T, 0, len(em.order))
	for _, id := range em.order {
		result = append(result, em.entities[id])
	}
	return result
}

// Last 返回最近创建且满足条件的实体
//
// 参数:
//   - match: 过滤条件，为 nil 时匹配任意实体
//
// 返回:
//   - T: 满足条件的实体
//   - bool: 是否找到
func (em *EntityManager[T]) Last(match func(T) bool) (T, bool) {
	for i := len(em.order) - 1; i >= 0; i-- {
		entity := em.entities[em.order[i]]
		if match == nil || match(entity) {
			return entity, true
		}
	}
	var zero T
	return zero, false
}

// Count 返回当前实体数量
func (em *EntityManager[T]) Count() int {
	return len(em.order)
}

// Clear 丢弃所有实体和待删除标记，ID计数不回退
func (em *EntityManager[T]) Clear() {
	em.order = em.order[:0]
	em.entities = make(map[EntityID]T)
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}
