// Package xscan 从任意文本行中找出 IP 地址与网络字面量。
//
// 扫描分两级：[MayContain] 是行级预过滤，绝大多数不含地址的行在这里被一次
// 字节查找排除；通过预过滤的行由词法器按字节类切出候选 span，再交给
// [xnet.Classify] 严格分类，失败的候选静默丢弃。
//
// # 候选规则
//
//   - 候选以十六进制数字或 ":" 开头，前一个字节不能是字母或数字
//   - 不含 ":" 的主体是 IPv4 候选，必须只含数字和点且恰好三个点
//   - 含 ":" 的主体是 IPv6 候选，至少两个 ":"，内嵌 IPv4 只能出现在末尾
//   - 主体后紧跟 "/数字" 时并入前缀；"/点分掩码" 仅在接受 oldnet 时并入，
//     否则地址与掩码各自成为候选
//   - 末尾的 "." 或单个 ":" 后接分隔符或行尾时被剔除（句末标点）
//   - 候选后紧跟字母或数字时整体作废
//
// IPv4 主体后紧跟 ":" 时冒号不属于字面量，其后的数字视为端口一并跳过：
// "1.2.3.4:443" 产出 "1.2.3.4"。此规则不适用于 IPv6，":" 在其中是结构字符。
package xscan
