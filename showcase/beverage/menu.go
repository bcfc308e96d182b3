package beverage

import (
	"fmt"
	"sort"
	"strings"

	"patternkit/config"
	"patternkit/errors"
	"patternkit/patterns/decorator"
	"patternkit/validation"
)

// Menu 按名称点单的菜单
type Menu struct {
	name   string
	bases  map[string]Base
	addons map[string]Addon
}

// NewMenu 创建空菜单
func NewMenu(name string) *Menu {
	return &Menu{
		name:   name,
		bases:  make(map[string]Base),
		addons: make(map[string]Addon),
	}
}

// FromConfig 由配置构建菜单
func FromConfig(spec config.Menu) (*Menu, error) {
	m := NewMenu(spec.Name)
	for _, b := range spec.Bases {
		if err := m.AddBase(b.Name, b.Price); err != nil {
			return nil, err
		}
	}
	for _, a := range spec.Addons {
		if err := m.AddAddon(a.Key, Addon{Label: a.Label, Surcharge: a.Surcharge}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Name 菜单名称
func (m *Menu) Name() string { return m.name }

// AddBase 添加基础饮品，名称大小写不敏感且唯一
func (m *Menu) AddBase(name string, price float64) error {
	if err := validation.ValidateRequired(name, "饮品名称"); err != nil {
		return err
	}
	if err := validation.ValidateNonNegative(price, name); err != nil {
		return err
	}
	key := strings.ToLower(name)
	if _, ok := m.bases[key]; ok {
		return errors.NewError(errors.ErrCodeConflict, fmt.Sprintf("base %s already on menu %s", name, m.name))
	}
	m.bases[key] = NewBase(name, price)
	return nil
}

// AddAddon 添加配料
func (m *Menu) AddAddon(key string, addon Addon) error {
	if err := validation.ValidateRequired(key, "配料键"); err != nil {
		return err
	}
	if err := validation.ValidateRequired(addon.Label, "配料标签"); err != nil {
		return err
	}
	if err := validation.ValidateNonNegative(addon.Surcharge, key); err != nil {
		return err
	}
	key = strings.ToLower(key)
	if _, ok := m.addons[key]; ok {
		return errors.NewError(errors.ErrCodeConflict, fmt.Sprintf("addon %s already on menu %s", key, m.name))
	}
	m.addons[key] = addon
	return nil
}

// Leaf 查找基础饮品
func (m *Menu) Leaf(name string) (Beverage, error) {
	b, ok := m.bases[strings.ToLower(name)]
	if !ok {
		return nil, errors.NotFound("base", name)
	}
	return b, nil
}

// Addon 查找配料
func (m *Menu) Addon(key string) (Addon, error) {
	a, ok := m.addons[strings.ToLower(key)]
	if !ok {
		return Addon{}, errors.NotFound("addon", key)
	}
	return a, nil
}

// Order 点单：基础饮品加按顺序由内向外叠加的配料
func (m *Menu) Order(base string, addons ...string) (Beverage, error) {
	leaf, err := m.Leaf(base)
	if err != nil {
		return nil, err
	}
	layers := make([]decorator.Layer[Beverage], 0, len(addons))
	for _, key := range addons {
		a, err := m.Addon(key)
		if err != nil {
			return nil, err
		}
		layers = append(layers, With(a))
	}
	return decorator.Chain(leaf, layers...), nil
}

// Bases 基础饮品名称（小写，排序）
func (m *Menu) Bases() []string {
	return sortedKeys(m.bases)
}

// Addons 配料键（小写，排序）
func (m *Menu) Addons() []string {
	return sortedKeys(m.addons)
}

func sortedKeys[V any](in map[string]V) []string {
	out := make([]string, 0, len(in))
	for k := range in {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
