// Package xconf 加载 ipgrep 的配置文件，基于 koanf 实现。
//
// 配置文件只提供默认值：命令行上显式给出的选项总是优先。
// 加载是一次性的，进程运行期间配置不会变化，所有 worker 共享同一份只读值。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 配置键
//
//	accept: [ip, net, iface]   # 或 "ip,net,iface"
//	interface_mode: ip         # ip | net | complain
//	match: contains            # contains | within | equals | overlaps
//	context:
//	  before: 0
//	  after: 0
//	workers: 1
//	cache_size: 4096
//	line_buffered: false
//	color: auto                # auto | always | never
//	stats: false
//	log:
//	  level: warn
//	  format: text             # text | json
//	  file: ""                 # 非空时写入并按大小轮转
//
// 未知键会被拒绝（[ErrUnknownKey]），避免拼写错误被静默忽略。
// Unmarshal 使用 mapstructure 进行反序列化，允许弱类型转换（例如字符串 "4" 转为 int 4）。
package xconf
