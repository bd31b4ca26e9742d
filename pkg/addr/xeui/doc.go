// Package xeui 提供 EUI-48/EUI-64 硬件地址的宽容解析、分类与多格式输出。
//
// 与常见 MAC 库按固定格式解析不同，xeui 的解析器面向人工录入的
// 自由文本：任何非字母数字字符的连续串都视为分隔符，分组方式、
// 大小写均不限，并识别桥 ID（"45#0011.22aa.bbcc"）和 BPR
// （"1,6,00:11:22:aa:bb:cc"）两种带前缀的历史格式：
//
//   - 宽容解析（冒号、短线、点、混合分组、无分隔符、带前缀）
//   - 多格式输出（basic/bpr/cisco/ieee/microsoft/pgsql/singledash/
//     sun/tokenring/oui/bridge-id，见 [Format]）
//   - 地址分类（单播/多播/广播、本地/全局管理、VRRP/HSRP/HSRP v2）
//   - EUI-48 与 EUI-64 互转、IPv6 接口标识符与链路本地地址派生
//   - JSON/Text/Binary/CBOR/SQL 序列化支持
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xeui.Parse("0011.22aa.bbcc")
//	fmt.Println(addr)                              // 00:11:22:aa:bb:cc
//	fmt.Println(addr.FormatString(xeui.FormatSun)) // 0-11-22-aa-bb-cc
//
// 分类与派生：
//
//	if addr.IsMulticast() {
//	    // 多播地址
//	}
//	suffix, _ := addr.IPv6Suffix() // 0211:22ff:feaa:bbcc
//
// 过程式入口（解析后立即判断，适合一次性文本处理）：
//
//	ok, err := xeui.IsVRRP("00:00:5e:00:01:2a")
//	out, err := xeui.FormatAs("001122aabbcc", xeui.FormatCisco)
//
// # 设计决策
//
//   - 使用 [8]byte 固定数组加宽度字段而非切片：值语义、可比较、栈分配；
//     EUI-48 与 EUI-64 共用一个类型，转换即拷贝
//   - 解析结果保留原始输入文本（[Addr.Original]）用于诊断回显，从不二次解析；
//     因此 == 比较包含出处，按字节比较请使用 [Addr.Equal]/[Addr.Compare]
//   - [Addr.ToEUI48]/[Addr.ToEUI64] 返回新值而非原地修改，接收者永远不变
//   - 内部统一以字节存储，大小写只在输出阶段决定
//   - 零值表示无效地址，受 [net/netip.Addr] 零值语义启发（见下节）
//   - 桥优先级与地址字节正交，仅 [FormatBridgeID] 输出使用，
//     序列化与比较均不涉及
//
// # 零值与有效性语义
//
// 零值 Addr{} 无效（[Addr.IsValid] 为 false），与解析成功的全零地址不同：
//
//	var uninit xeui.Addr               // 零值
//	uninit.IsValid()                   // false
//	uninit.String()                    // "" - 无效地址返回空字符串
//
//	zero := xeui.MustParse("00:00:00:00:00:00")
//	zero.IsValid()                     // true - 全零是有效地址
//	zero.IsZero()                      // true
//
// 宽度字段让 xeui 能区分"未初始化"与"全零地址"，没有 [6]byte
// 单数组方案的歧义。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xeui.Parse("11:22:33")
//	if errors.Is(err, xeui.ErrInvalidFormat) {
//	    // 格式错误，错误信息中带有去除空白后的输入文本
//	}
//
// 解析错误是输入的确定函数：同样的输入重试必然得到同样的错误，
// 修正输入才是出路。[MustParse] 以 panic 方式报告同样的错误信息，
// 适合常量初始化场景。
package xeui
