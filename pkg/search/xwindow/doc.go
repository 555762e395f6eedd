// Package xwindow 实现 grep 兼容的上下文行窗口。
//
// [Window] 逐行接收带行号的文本及其是否匹配的判定，按 -B/-A 语义决定哪些行
// 以匹配行或上下文行的身份输出，并在两个输出块不相邻时插入分组分隔符。
// 相距较近的匹配产生的上下文会合并成一个连续块，不重复输出任何行，也不插入
// 多余的分隔符。
//
// 窗口只为最近的 before 行保留副本，内存占用与输入长度无关。
package xwindow
