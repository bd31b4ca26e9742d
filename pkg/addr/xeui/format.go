package xeui

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Format 定义地址的输出格式。
type Format uint8

const (
	// FormatMicrosoft 冒号分隔，小写：00:11:22:aa:bb:cc
	FormatMicrosoft Format = iota
	// FormatBasic 无分隔符，小写：001122aabbcc
	FormatBasic
	// FormatBPR 带字节数注记的冒号形式：1,6,00:11:22:aa:bb:cc
	FormatBPR
	// FormatCisco 每 4 个字符一个点：0011.22aa.bbcc
	FormatCisco
	// FormatIEEE 短线分隔，小写：00-11-22-aa-bb-cc
	FormatIEEE
	// FormatPgSQL 对半拆分后用冒号连接：001122:aabbcc
	FormatPgSQL
	// FormatSingleDash 对半拆分后用短线连接：001122-aabbcc
	FormatSingleDash
	// FormatSun 短线分隔且不补零：0-11-22-aa-bb-cc
	FormatSun
	// FormatTokenRing 逐字节位反转后短线分隔：00-88-44-55-dd-33
	FormatTokenRing
	// FormatOUI 前 3 字节，短线分隔，大写：00-11-22
	FormatOUI
	// FormatBridgeID 桥优先级加 Cisco 形式：45#0011.22aa.bbcc
	FormatBridgeID
)

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// formatNames 是 Format 与 CLI/配置使用的名字的对照表，下标即枚举值。
var formatNames = [...]string{
	FormatMicrosoft:  "microsoft",
	FormatBasic:      "basic",
	FormatBPR:        "bpr",
	FormatCisco:      "cisco",
	FormatIEEE:       "ieee",
	FormatPgSQL:      "pgsql",
	FormatSingleDash: "singledash",
	FormatSun:        "sun",
	FormatTokenRing:  "tokenring",
	FormatOUI:        "oui",
	FormatBridgeID:   "bridge-id",
}

// String 返回格式的名字，如 "cisco"。未知枚举值返回 "unknown"。
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat 按名字查找格式，供命令行和配置文件使用。
// 名字不区分大小写；未知名字返回 [ErrUnknownFormat]。
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// String 返回默认格式（小写冒号，即 [FormatMicrosoft]）的字符串表示。
// 无效地址返回空字符串。
func (a Addr) String() string {
	if !a.IsValid() {
		return ""
	}
	return a.formatJoined(':', hexLower)
}

// FormatString 按指定格式返回地址字符串。
// 所有格式对有效地址总能成功；无效地址返回空字符串。
// 未知的 Format 值按默认格式（[FormatMicrosoft]）输出。
func (a Addr) FormatString(f Format) string {
	if !a.IsValid() {
		return ""
	}

	switch f {
	case FormatMicrosoft:
		return a.formatJoined(':', hexLower)
	case FormatBasic:
		return a.formatBasic()
	case FormatBPR:
		return "1," + strconv.Itoa(int(a.n)) + "," + a.formatJoined(':', hexLower)
	case FormatCisco:
		return a.formatCisco()
	case FormatIEEE:
		return a.formatJoined('-', hexLower)
	case FormatPgSQL:
		return a.formatHalves(':')
	case FormatSingleDash:
		return a.formatHalves('-')
	case FormatSun:
		return a.formatSun()
	case FormatTokenRing:
		return a.formatTokenRing()
	case FormatOUI:
		return a.formatOUI()
	case FormatBridgeID:
		return strconv.FormatUint(uint64(a.priority), 10) + "#" + a.formatCisco()
	default:
		return a.formatJoined(':', hexLower)
	}
}

// FormatAs 解析文本后按指定格式重新输出，是 [Addr.FormatString] 的过程式入口。
func FormatAs(s string, f Format, opts ...ParseOption) (string, error) {
	a, err := Parse(s, opts...)
	if err != nil {
		return "", err
	}
	return a.FormatString(f), nil
}

// formatJoined 用 sep 连接补零的 2 字符字节（microsoft/ieee 形式）。
// 预分配精确大小，零额外分配。
func (a Addr) formatJoined(sep byte, hex string) string {
	n := int(a.n)
	buf := make([]byte, 0, n*3-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, hex[a.octets[i]>>4], hex[a.octets[i]&0x0f])
	}
	return string(buf)
}

// formatBasic 输出无分隔符的小写十六进制串。
func (a Addr) formatBasic() string {
	n := int(a.n)
	buf := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		buf = append(buf, hexLower[a.octets[i]>>4], hexLower[a.octets[i]&0x0f])
	}
	return string(buf)
}

// formatCisco 输出每两个字节一组、点连接的形式（0011.22aa.bbcc）。
func (a Addr) formatCisco() string {
	n := int(a.n)
	buf := make([]byte, 0, n*2+n/2-1)
	for i := 0; i < n; i++ {
		if i > 0 && i%2 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, hexLower[a.octets[i]>>4], hexLower[a.octets[i]&0x0f])
	}
	return string(buf)
}

// formatHalves 在中点字节处把地址一分为二，用 sep 连接（pgsql/singledash 形式）。
func (a Addr) formatHalves(sep byte) string {
	n := int(a.n)
	half := n / 2
	buf := make([]byte, 0, n*2+1)
	for i := 0; i < n; i++ {
		if i == half {
			buf = append(buf, sep)
		}
		buf = append(buf, hexLower[a.octets[i]>>4], hexLower[a.octets[i]&0x0f])
	}
	return string(buf)
}

// formatSun 输出短线连接、不补零的形式（0x0a 输出为 "a"）。
func (a Addr) formatSun() string {
	n := int(a.n)
	buf := make([]byte, 0, n*3-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, '-')
		}
		b := a.octets[i]
		if b >= 0x10 {
			buf = append(buf, hexLower[b>>4])
		}
		buf = append(buf, hexLower[b&0x0f])
	}
	return string(buf)
}

// formatTokenRing 输出 Token Ring 的最高有效位在前（MSB-first）线序形式：
// 每个字节先位反转再按 2 字符十六进制输出，短线连接。
// 位反转使用 [math/bits.Reverse8]，其内部是进程级共享的 256 项常量查找表。
func (a Addr) formatTokenRing() string {
	n := int(a.n)
	buf := make([]byte, 0, n*3-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, '-')
		}
		r := bits.Reverse8(a.octets[i])
		buf = append(buf, hexLower[r>>4], hexLower[r&0x0f])
	}
	return string(buf)
}

// formatOUI 输出前 3 字节的大写短线形式（00-11-22）。
func (a Addr) formatOUI() string {
	var buf [8]byte
	buf[0] = hexUpper[a.octets[0]>>4]
	buf[1] = hexUpper[a.octets[0]&0x0f]
	buf[2] = '-'
	buf[3] = hexUpper[a.octets[1]>>4]
	buf[4] = hexUpper[a.octets[1]&0x0f]
	buf[5] = '-'
	buf[6] = hexUpper[a.octets[2]>>4]
	buf[7] = hexUpper[a.octets[2]&0x0f]
	return string(buf[:])
}
