package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"patternkit/errors"
	"patternkit/validation"
)

//go:embed menus.yaml
var builtinMenus []byte

// BaseSpec 基础饮品
type BaseSpec struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// AddonSpec 配料
type AddonSpec struct {
	Key       string  `yaml:"key"`
	Label     string  `yaml:"label"`
	Surcharge float64 `yaml:"surcharge"`
}

// Menu 一份菜单
type Menu struct {
	Name   string      `yaml:"name"`
	Bases  []BaseSpec  `yaml:"bases"`
	Addons []AddonSpec `yaml:"addons"`
}

// Catalog 菜单集合
type Catalog struct {
	Menus []Menu `yaml:"menus"`
}

// LoadMenus 解析内置菜单
func LoadMenus() (*Catalog, error) {
	return ParseMenus(builtinMenus)
}

// ParseMenus 解析菜单 YAML 并校验名称与价格
func ParseMenus(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.WrapError(err, errors.ErrCodeConfig, "failed to parse menus")
	}
	seen := make(map[string]bool, len(c.Menus))
	for _, m := range c.Menus {
		if err := m.validate(); err != nil {
			return nil, err
		}
		name := strings.ToLower(m.Name)
		if seen[name] {
			return nil, errors.NewError(errors.ErrCodeConflict, fmt.Sprintf("menu %s defined twice", m.Name))
		}
		seen[name] = true
	}
	return &c, nil
}

// Menu 按名称（大小写不敏感）查找菜单
func (c *Catalog) Menu(name string) (Menu, error) {
	for _, m := range c.Menus {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Menu{}, errors.NotFound("menu", name)
}

func (m Menu) validate() error {
	if err := validation.ValidateRequired(m.Name, "menu.name"); err != nil {
		return err
	}
	for _, b := range m.Bases {
		if err := validation.ValidateRequired(b.Name, m.Name+".bases.name"); err != nil {
			return err
		}
		if err := validation.ValidateNonNegative(b.Price, m.Name+"."+b.Name+".price"); err != nil {
			return err
		}
	}
	for _, a := range m.Addons {
		if err := validation.ValidateRequired(a.Key, m.Name+".addons.key"); err != nil {
			return err
		}
		if err := validation.ValidateRequired(a.Label, m.Name+"."+a.Key+".label"); err != nil {
			return err
		}
		if err := validation.ValidateNonNegative(a.Surcharge, m.Name+"."+a.Key+".surcharge"); err != nil {
			return err
		}
	}
	return nil
}
