package xeui

import (
	"fmt"
	"net/netip"
)

// ToEUI64 返回 a 的 EUI-64 形式。
// EUI-48 按 IEEE 规则在第 3 与第 4 字节之间插入 0xFF 0xFE：
//
//	00:11:22:aa:bb:cc -> 00:11:22:ff:fe:aa:bb:cc
//
// 已是 EUI-64 的地址原样返回。接收者不会被修改；
// 桥优先级和原始文本随副本保留。无效地址返回 [ErrInvalidAddr]。
func (a Addr) ToEUI64() (Addr, error) {
	switch a.n {
	case 8:
		return a, nil
	case 6:
		out := a
		out.n = 8
		out.octets = [8]byte{
			a.octets[0], a.octets[1], a.octets[2],
			0xff, 0xfe,
			a.octets[3], a.octets[4], a.octets[5],
		}
		return out, nil
	default:
		return Addr{}, ErrInvalidAddr
	}
}

// ToEUI48 返回 a 的 EUI-48 形式。
// 仅当 EUI-64 的第 4 字节为 0xFF 且第 5 字节为 0xFF 或 0xFE
// （即由 EUI-48 扩展而来）时可以还原，否则返回 [ErrNotEUI48Derived]。
// 已是 EUI-48 的地址原样返回。无效地址返回 [ErrInvalidAddr]。
func (a Addr) ToEUI48() (Addr, error) {
	switch a.n {
	case 6:
		return a, nil
	case 8:
		if a.octets[3] != 0xff || (a.octets[4] != 0xff && a.octets[4] != 0xfe) {
			return Addr{}, fmt.Errorf("%w: %s", ErrNotEUI48Derived, a)
		}
		out := a
		out.n = 6
		out.octets = [8]byte{
			a.octets[0], a.octets[1], a.octets[2],
			a.octets[5], a.octets[6], a.octets[7],
		}
		return out, nil
	default:
		return Addr{}, ErrInvalidAddr
	}
}

// IPv6Suffix 返回修改型 EUI-64（Modified EUI-64）接口标识符，
// 即 IPv6 地址的低 64 位，格式为 4 组冒号分隔的 16 位十六进制：
//
//	00:11:22:aa:bb:cc -> 0211:22ff:feaa:bbcc
//
// EUI-48 先按 [Addr.ToEUI64] 规则在内部扩展（接收者保持不变），
// 然后翻转首字节的 U/L 位（0x02）。无效地址返回 [ErrInvalidAddr]。
func (a Addr) IPv6Suffix() (string, error) {
	e, err := a.ToEUI64()
	if err != nil {
		return "", err
	}
	b := e.octets
	b[0] ^= 0x02

	var buf [19]byte
	w := 0
	for i := 0; i < 8; i += 2 {
		if i > 0 {
			buf[w] = ':'
			w++
		}
		buf[w] = hexLower[b[i]>>4]
		buf[w+1] = hexLower[b[i]&0x0f]
		buf[w+2] = hexLower[b[i+1]>>4]
		buf[w+3] = hexLower[b[i+1]&0x0f]
		w += 4
	}
	return string(buf[:w]), nil
}

// LinkLocal 返回以 a 的修改型 EUI-64 为接口标识符的 IPv6 链路本地地址
// （fe80::/64 前缀）：
//
//	00:11:22:aa:bb:cc -> fe80::211:22ff:feaa:bbcc
//
// 无效地址返回 [ErrInvalidAddr]。
func (a Addr) LinkLocal() (netip.Addr, error) {
	e, err := a.ToEUI64()
	if err != nil {
		return netip.Addr{}, err
	}
	var ip [16]byte
	ip[0] = 0xfe
	ip[1] = 0x80
	copy(ip[8:], e.octets[:])
	ip[8] ^= 0x02
	return netip.AddrFrom16(ip), nil
}

// ToEUI64 解析文本后返回其 EUI-64 形式，是 [Addr.ToEUI64] 的过程式入口。
func ToEUI64(s string) (Addr, error) {
	a, err := Parse(s)
	if err != nil {
		return Addr{}, err
	}
	return a.ToEUI64()
}

// ToEUI48 解析文本后返回其 EUI-48 形式，是 [Addr.ToEUI48] 的过程式入口。
func ToEUI48(s string) (Addr, error) {
	a, err := Parse(s)
	if err != nil {
		return Addr{}, err
	}
	return a.ToEUI48()
}

// IPv6Suffix 解析文本后返回其 IPv6 接口标识符，是 [Addr.IPv6Suffix] 的过程式入口。
func IPv6Suffix(s string) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", err
	}
	return a.IPv6Suffix()
}

// LinkLocal 解析文本后返回其 IPv6 链路本地地址，是 [Addr.LinkLocal] 的过程式入口。
func LinkLocal(s string) (netip.Addr, error) {
	a, err := Parse(s)
	if err != nil {
		return netip.Addr{}, err
	}
	return a.LinkLocal()
}
