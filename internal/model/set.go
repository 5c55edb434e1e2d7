package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringSet 无序集合，序列化为排序后的 JSON 数组，保证存储和接口输出稳定
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add 返回是否为新插入
func (s StringSet) Add(item string) bool {
	if _, ok := s[item]; ok {
		return false
	}
	s[item] = struct{}{}
	return true
}

func (s StringSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}

// 数据库中以 JSON 数组存储

func (StringSet) GormDataType() string {
	return datatypes.JSONSlice[string]{}.GormDataType()
}

func (StringSet) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSONSlice[string]{}.GormDBDataType(db, field)
}

func (s StringSet) Value() (driver.Value, error) {
	return datatypes.NewJSONSlice(s.Sorted()).Value()
}

func (s *StringSet) Scan(value interface{}) error {
	items, err := scanJSONSlice(value)
	if err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}

// OrderedSet 保持插入顺序且不含重复项
type OrderedSet struct {
	items []string
	index map[string]struct{}
}

func NewOrderedSet(items ...string) OrderedSet {
	var s OrderedSet
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add 不存在时追加，返回是否追加
func (s *OrderedSet) Add(item string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s OrderedSet) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

func (s OrderedSet) Len() int {
	return len(s.items)
}

// Items 按插入顺序返回副本
func (s OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s OrderedSet) Clone() OrderedSet {
	return NewOrderedSet(s.items...)
}

func (s OrderedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

func (s *OrderedSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewOrderedSet(items...)
	return nil
}

func (OrderedSet) GormDataType() string {
	return datatypes.JSONSlice[string]{}.GormDataType()
}

func (OrderedSet) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return datatypes.JSONSlice[string]{}.GormDBDataType(db, field)
}

func (s OrderedSet) Value() (driver.Value, error) {
	return datatypes.NewJSONSlice(s.Items()).Value()
}

func (s *OrderedSet) Scan(value interface{}) error {
	items, err := scanJSONSlice(value)
	if err != nil {
		return err
	}
	*s = NewOrderedSet(items...)
	return nil
}

// scanJSONSlice 空值和空串视为空集合
func scanJSONSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		if len(v) == 0 {
			return nil, nil
		}
	case string:
		if v == "" {
			return nil, nil
		}
	}

	var items datatypes.JSONSlice[string]
	if err := items.Scan(value); err != nil {
		return nil, fmt.Errorf("scan set column: %w", err)
	}
	return items, nil
}
