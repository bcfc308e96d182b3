// Package notify 外部协作者的副作用出口
//
// 示例中的"外部系统"只会输出一行文字；把输出抽象成 Sink 后，
// 演示程序写到标准输出，测试用 Recorder 断言调用。
package notify

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Sink 接收协作者产生的消息
type Sink interface {
	Emit(line string)
}

// Writer 把每条消息按行写到 io.Writer
type Writer struct {
	out io.Writer
}

// NewWriter 创建写出到 out 的 Sink，out 为 nil 时使用标准输出
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out}
}

// Stdout 写到标准输出的 Sink
func Stdout() *Writer {
	return NewWriter(os.Stdout)
}

// Emit 写出一行
func (w *Writer) Emit(line string) {
	fmt.Fprintln(w.out, line)
}

// Recorder 记录消息的 Sink（用于测试）
type Recorder struct {
	lines []string
}

// NewRecorder 创建 Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit 记录一行
func (r *Recorder) Emit(line string) {
	r.lines = append(r.lines, line)
}

// Lines 返回已记录消息的副本
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Last 返回最后一条消息，没有消息时返回空串
func (r *Recorder) Last() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.lines = nil
}

// Amount 按 "至少一位小数" 的方式格式化金额：100 -> "100.0"，2.5 -> "2.5"
func Amount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
