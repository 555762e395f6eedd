// Package xneedle 解析并持有搜索目标（needle）集合。
//
// needle 列表在启动时解析一次：每个参数按逗号与空白切分，空元素忽略，
// 每个元素按与 haystack 相同的接受集合与接口模式分类（见 [xnet.Classify]），
// 另外总是接受裸地址（ip）和严格网络（net）两种格式。
// 任何一个元素无法分类都是致命配置错误。
//
// 解析得到的 [Set] 不可变，可在所有 worker 间只读共享。
package xneedle
