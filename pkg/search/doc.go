// Package search 提供 IP 字面量搜索相关的子包。
//
// 子包列表：
//   - xneedle: needle 列表解析
//   - xscan: 行内候选字面量提取与分类
//   - xmatch: needle 与字面量的四种匹配语义
//   - xwindow: 上下文行窗口
//   - xgrep: 把以上各部分串成完整的按流搜索
package search
