// Package report 报表生成：基础报表加过滤、排序、导出装饰
package report

import (
	"fmt"

	"patternkit/patterns/decorator"
)

// Report 报表能力
type Report interface {
	Generate() string
}

// Static 内容固定的报表（叶子）
type Static string

func (s Static) Generate() string { return string(s) }

// SalesReport 销售报表
func SalesReport() Report { return Static("Sales Report Data: [Sample Sales Data]") }

// UserReport 用户报表
func UserReport() Report { return Static("User Report Data: [Sample User Data]") }

const separator = "\n"

// Section 报表装饰层，每层在内容后追加一行
type Section struct {
	decorator.Wrapper[Report, string]
}

// NewSection 在被包装报表后追加一行 line
func NewSection(inner Report, line string) Section {
	return Section{decorator.Wrap(inner, line)}
}

// Generate 被包装报表内容后追加本层的行
func (s Section) Generate() string {
	return decorator.Append(s.Inner().Generate(), separator, s.Contribution())
}

// WithDateFilter 按日期区间过滤
func WithDateFilter(start, end string) decorator.Layer[Report] {
	return withLine(fmt.Sprintf("Filtered by Date Range: %s to %s", start, end))
}

// WithSorting 按条件排序
func WithSorting(criteria string) decorator.Layer[Report] {
	return withLine("Sorted by: " + criteria)
}

// WithCSVExport 导出为 CSV
func WithCSVExport(r Report) Report {
	return NewSection(r, "Exported as CSV format.")
}

// WithPDFExport 导出为 PDF
func WithPDFExport(r Report) Report {
	return NewSection(r, "Exported as PDF format.")
}

func withLine(line string) decorator.Layer[Report] {
	return func(inner Report) Report {
		return NewSection(inner, line)
	}
}
