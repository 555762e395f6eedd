// Package xgrep 把扫描、匹配和上下文窗口串成完整的搜索流程。
//
// 每个输入流按行读取（行长不限，末行可以没有换行符），
// 每行经 [xscan.Scanner] 提取字面量，经 [xmatch.Matcher] 判定，
// 再由 [xwindow.Window] 决定输出哪些行。结果以 [Event] 的形式交给 [Handler]，
// 格式化完全由调用方负责。
//
// 多个输入流可以并行搜索（[Config.Workers]），输出顺序仍与输入顺序一致。
// 搜索过程中的计数通过 [xmetrics.Observer] 上报，
// complain 模式下主机位非零的接口地址通过 [xlog.Logger] 告警。
package xgrep
