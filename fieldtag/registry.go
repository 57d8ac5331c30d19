package fieldtag

import (
	"fmt"
	"sort"
)

// Registry 语义字段与线上键的双向映射。构造完成后只读,
// 可被任意多个编解码协程无锁共享。
type Registry struct {
	keys   map[Field]string
	fields map[string]Field
	groups map[Field]Group
}

// New 由若干子模式构造注册表, 构造时校验键唯一性。
// 同一 (字段, 键) 的重复注册按幂等处理, 首次注册的分组生效;
// 任何冲突的重复定义返回 ErrCollision。
func New(schemas ...Schema) (*Registry, error) {
	r := &Registry{
		keys:   make(map[Field]string),
		fields: make(map[string]Field),
		groups: make(map[Field]Group),
	}
	for _, s := range schemas {
		for _, e := range s.Entries {
			if err := r.add(s.Group, e); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// MustNew 构造失败时panic, 用于进程初始化阶段: 模式冲突应使启动失败。
func MustNew(schemas ...Schema) *Registry {
	r, err := New(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = MustNew(Builtin()...)

// Default 返回包含全部内置子模式的进程级注册表。
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) add(g Group, e Entry) error {
	if e.Field == FieldUnknown || e.Key == "" {
		return fmt.Errorf("%w: group %s entry %+v", ErrInvalidEntry, g, e)
	}
	if k, ok := r.keys[e.Field]; ok {
		if k == e.Key {
			return nil
		}
		return fmt.Errorf("%w: Field(%d) bound to both %q and %q", ErrCollision, int(e.Field), k, e.Key)
	}
	if f, ok := r.fields[e.Key]; ok {
		return fmt.Errorf("%w: key %q bound to both Field(%d) and Field(%d)", ErrCollision, e.Key, int(f), int(e.Field))
	}
	r.keys[e.Field] = e.Key
	r.fields[e.Key] = e.Field
	r.groups[e.Field] = g
	return nil
}

// Lookup 返回语义字段的线上键。
func (r *Registry) Lookup(f Field) (string, error) {
	k, ok := r.keys[f]
	if !ok {
		return "", &UnknownFieldError{Field: f}
	}
	return k, nil
}

// ReverseLookup 返回线上键对应的语义字段。未注册的键返回 ErrUnrecognizedKey,
// 解码方应将其视为可恢复条件: 跳过该字段, 继续处理报文其余字段。
func (r *Registry) ReverseLookup(key string) (Field, error) {
	f, ok := r.fields[key]
	if !ok {
		return FieldUnknown, &UnrecognizedKeyError{Key: key}
	}
	return f, nil
}

// MustKey 默认注册表上的 Lookup, 查不到时panic。
// 仅用于引用编译期字段常量的调用方, 此时查不到属于程序错误。
func MustKey(f Field) string {
	k, err := Default().Lookup(f)
	if err != nil {
		panic(err)
	}
	return k
}

// Has 报告线上键是否已注册。
func (r *Registry) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// GroupOf 返回字段所属协议域。
func (r *Registry) GroupOf(f Field) (Group, error) {
	g, ok := r.groups[f]
	if !ok {
		return "", &UnknownFieldError{Field: f}
	}
	return g, nil
}

// Fields 按字段序返回全部已注册字段。
func (r *Registry) Fields() []Field {
	fields := make([]Field, 0, len(r.keys))
	for f := range r.keys {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// GroupFields 按字段序返回某协议域的全部字段。
func (r *Registry) GroupFields(g Group) []Field {
	fields := make([]Field, 0, len(r.groups))
	for f, fg := range r.groups {
		if fg == g {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// Keys 按字典序返回全部线上键。
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len 返回已注册字段数。
func (r *Registry) Len() int {
	return len(r.keys)
}

func (r *Registry) key(f Field) (string, bool) {
	if r == nil {
		return "", false
	}
	k, ok := r.keys[f]
	return k, ok
}
