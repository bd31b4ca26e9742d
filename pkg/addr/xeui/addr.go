package xeui

import (
	"crypto/rand"
	"fmt"
	"net"
)

// Addr 表示一个 EUI-48（6 字节）或 EUI-64（8 字节）硬件地址，
// 外加可选的桥优先级（仅 [FormatBridgeID] 渲染使用）。
//
// Addr 是不可变值类型：
//   - 零值表示无效地址，[Addr.IsValid] 返回 false
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁；[Addr.ToEUI48]/[Addr.ToEUI64] 返回新值而非原地修改
//
// 注意 == 比较的是完整值，包括构造时保留的原始文本和桥优先级。
// 只按地址字节比较请使用 [Addr.Equal] 或 [Addr.Compare]。
//
// 使用 [Parse] 或 [MustParse] 从文本创建，[AddrFrom6]/[AddrFrom8]/
// [ParseBytes] 从字节创建：
//
//	addr, err := xeui.Parse("00:11:22:aa:bb:cc")
//	addr := xeui.MustParse("0011.22aa.bbcc")
type Addr struct {
	// 使用固定大小数组而非切片：值语义、可比较、栈分配。
	// 仅前 n 个元素有意义，其余必须保持为零（Equal 依赖该不变量）。
	octets [8]byte

	// n 是地址字节数：6（EUI-48）、8（EUI-64）或 0（无效）。
	n uint8

	// priority 是桥优先级，与地址字节语义无关。
	priority uint16

	// original 是构造时的原始输入文本，仅用于诊断回显，从不二次解析。
	original string
}

// AddrFrom6 从 6 字节数组创建 EUI-48 地址。
func AddrFrom6(b [6]byte) Addr {
	var a Addr
	copy(a.octets[:], b[:])
	a.n = 6
	return a
}

// AddrFrom8 从 8 字节数组创建 EUI-64 地址。
func AddrFrom8(b [8]byte) Addr {
	return Addr{octets: b, n: 8}
}

// ParseBytes 从字节切片创建地址。
// 切片长度必须为 6（EUI-48）或 8（EUI-64）。
func ParseBytes(b []byte) (Addr, error) {
	switch len(b) {
	case 6:
		return AddrFrom6([6]byte(b)), nil
	case 8:
		return AddrFrom8([8]byte(b)), nil
	default:
		return Addr{}, fmt.Errorf("%w: expected 6 or 8 bytes, got %d", ErrInvalidLength, len(b))
	}
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建地址。
// 长度必须为 6 或 8 字节（net.ParseMAC 支持的 20 字节 InfiniBand 地址不受支持）。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes([]byte(hw))
}

// Random 生成一个随机的本地管理单播 EUI-48 地址。
// 首字节的 U/L 位（bit 1）置 1、多播位（bit 0）清 0，
// 即总是形如 x2/x6/xA/xE 开头的地址，不会与厂商分配的地址冲突。
func Random() (Addr, error) {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return Addr{}, fmt.Errorf("xeui: generate random address: %w", err)
	}
	b[0] = b[0]&0xfe | 0x02
	return AddrFrom6(b), nil
}

// IsValid 报告 a 是否为有效地址（6 或 8 字节）。
// 零值 Addr{} 返回 false。全零的 EUI-48/EUI-64 是有效地址，
// 与零值不同（详见包文档"零值与有效性"）。
func (a Addr) IsValid() bool {
	return a.n == 6 || a.n == 8
}

// BitLen 返回地址位宽：EUI-48 为 48，EUI-64 为 64，无效地址为 0。
func (a Addr) BitLen() int {
	return int(a.n) * 8
}

// Bytes 返回地址字节的副本（长度 6 或 8），修改不影响原值。
// 无效地址返回 nil。
func (a Addr) Bytes() []byte {
	if !a.IsValid() {
		return nil
	}
	b := make([]byte, a.n)
	copy(b, a.octets[:a.n])
	return b
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。无效地址返回 nil。
func (a Addr) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(a.Bytes())
}

// OUI 返回组织唯一标识符（Organizationally Unique Identifier），
// 即地址前 3 字节，由 IEEE 分配给设备制造商。
// 无效地址返回零值 [3]byte{}。
func (a Addr) OUI() [3]byte {
	if !a.IsValid() {
		return [3]byte{}
	}
	return [3]byte{a.octets[0], a.octets[1], a.octets[2]}
}

// NIC 返回地址末 3 字节，即制造商自行分配的序列部分。
// 无效地址返回零值 [3]byte{}。
func (a Addr) NIC() [3]byte {
	if !a.IsValid() {
		return [3]byte{}
	}
	return [3]byte{a.octets[a.n-3], a.octets[a.n-2], a.octets[a.n-1]}
}

// Priority 返回桥优先级。未设置时为 0。
func (a Addr) Priority() uint16 {
	return a.priority
}

// WithBridgePriority 返回桥优先级为 p 的地址副本，地址字节不变。
// 类似 [net/netip.Addr.WithZone] 的派生值风格。
func (a Addr) WithBridgePriority(p uint16) Addr {
	a.priority = p
	return a
}

// Original 返回构造时的原始输入文本。
// 从字节构造的地址返回空字符串。
func (a Addr) Original() string {
	return a.original
}

// Equal 报告两个地址的字节序列是否相同（宽度和每个字节）。
// 桥优先级和原始文本不参与比较；需要严格一致请直接用 ==。
func (a Addr) Equal(b Addr) bool {
	return a.n == b.n && a.octets == b.octets
}

// Compare 按宽度优先、字节序其次的顺序比较两个地址。
// 返回值：-1 (a < b), 0, 1 (a > b)。无效地址排在所有有效地址之前，
// EUI-48 排在 EUI-64 之前。桥优先级和原始文本不参与比较，
// 因此 Compare 结果为 0 等价于 [Addr.Equal]。
func (a Addr) Compare(b Addr) int {
	if a.n != b.n {
		if a.n < b.n {
			return -1
		}
		return 1
	}
	for i := 0; i < int(a.n); i++ {
		if a.octets[i] < b.octets[i] {
			return -1
		}
		if a.octets[i] > b.octets[i] {
			return 1
		}
	}
	return 0
}
