// Package patch 实现部分更新的合并规则：补丁中显式给出且类型正确的字段覆盖原值，
// 其余字段保留原值。文章、留言、公告共用这一套规则。
package patch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound 待更新的记录不存在
var ErrNotFound = errors.New("record not found")

// Patch 针对记录类型 T 的部分更新
type Patch[T any] interface {
	ApplyTo(current T) T
}

// Merge 返回 current 合并补丁后的新记录，不修改入参
func Merge[T any](current T, p Patch[T]) T {
	if p == nil {
		return current
	}
	return p.ApplyTo(current)
}

// Store 部分更新所需的持久化能力
type Store[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, record *T) error
}

// Update 读取当前记录、合并补丁并写回。记录不存在时返回 ErrNotFound，不会调用合并。
// checks 在写回前依次校验合并结果，任一失败则不写回。
func Update[T any](ctx context.Context, store Store[T], id string, p Patch[T], checks ...func(*T) error) (*T, error) {
	current, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	merged := Merge(*current, p)
	for _, check := range checks {
		if err := check(&merged); err != nil {
			return nil, err
		}
	}
	if err := store.Update(ctx, id, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Field 补丁中的单个可选字段。
// 只有当 JSON 中出现该键、值不为 null 且能解码为 V 时 Set 才为 true；
// 0、false、"" 都算显式给值。
type Field[V any] struct {
	Value V
	Set   bool
}

// Of 构造一个已设置的字段
func Of[V any](v V) Field[V] {
	return Field[V]{Value: v, Set: true}
}

// UnmarshalJSON 类型不符的值按未提供处理，不报错
func (f *Field[V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.Value, f.Set = v, true
	return nil
}

// MarshalJSON 未设置时输出 null
func (f Field[V]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Or 已设置时返回补丁值，否则返回 current
func (f Field[V]) Or(current V) V {
	if f.Set {
		return f.Value
	}
	return current
}

// OrPtr 用于可空字段：已设置时返回补丁值的指针，否则原样返回 current。
// 补丁无法把字段清回 null。
func (f Field[V]) OrPtr(current *V) *V {
	if f.Set {
		v := f.Value
		return &v
	}
	return current
}
