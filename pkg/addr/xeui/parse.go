package xeui

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOption 调整 [Parse] 的行为。
type ParseOption func(*parseOptions)

type parseOptions struct {
	priority    uint16
	hasPriority bool
}

// WithPriority 为解析结果指定桥优先级。
// 若输入文本自带 "<digits>#" 优先级前缀且与 p 不一致，
// [Parse] 返回 [ErrConflictingPriority]。
func WithPriority(p uint16) ParseOption {
	return func(o *parseOptions) {
		o.priority = p
		o.hasPriority = true
	}
}

// Parse 解析任意常见书写形式的 EUI-48/EUI-64 地址文本。
//
// 解析是宽容的：任何非字母数字字符的连续串都视为分隔符，
// 分组方式和大小写不限。以下输入都会得到同一个地址：
//
//	00:11:22:aa:bb:cc
//	00-11-22-AA-BB-CC
//	0011.22aa.bbcc
//	001122aabbcc
//	aabb.cc.00.11.22 形式的混合分组同样可以解析
//
// 额外识别两种前缀：
//   - "<digits>#"：桥 ID 形式（如 "45#0011.22aa.bbcc"），数字部分作为桥优先级
//   - "1,<digits>,"：BPR 形式（如 "1,6,00:11:22:aa:bb:cc"），前缀直接丢弃，
//     不校验注记的字节数
//
// 输入会先去除首尾空白。大小写不敏感，内部统一以字节存储。
// 解析失败的错误信息中带有去除空白后的输入文本，便于定位。
func Parse(s string, opts ...ParseOption) (Addr, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Addr{}, ErrEmptyInput
	}

	rest := trimmed
	priority := o.priority

	// 桥 ID 前缀："<digits>#"
	if digits, tail, ok := splitPriorityPrefix(rest); ok {
		p, err := strconv.ParseUint(digits, 10, 16)
		if err != nil {
			return Addr{}, fmt.Errorf("%w: bridge priority %q exceeds 65535", ErrInvalidFormat, digits)
		}
		if o.hasPriority && o.priority != uint16(p) {
			return Addr{}, fmt.Errorf("%w: argument %d vs input %d", ErrConflictingPriority, o.priority, p)
		}
		priority = uint16(p)
		rest = tail
	}

	// BPR 前缀："1,<digits>,"，无条件丢弃，不校验注记的字节数
	rest = stripLengthAnnotation(rest)

	groups := splitGroups(rest)
	if len(groups) == 0 {
		return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, trimmed)
	}
	for _, g := range groups {
		if !isHexGroup(g) {
			return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, trimmed)
		}
	}

	// 偶数长度的分组统一拆成 2 字符的字节对，令
	// "001122aabbcc"、"0011.22aa.bbcc" 与逐字节分隔的写法殊途同归。
	// 奇数长度的分组原样保留（"0-11-22-aa-bb-cc" 的单字符分组合法）。
	pairs := make([]string, 0, 8)
	for _, g := range groups {
		if len(g)%2 == 0 {
			for i := 0; i < len(g); i += 2 {
				pairs = append(pairs, g[i:i+2])
			}
		} else {
			pairs = append(pairs, g)
		}
	}

	// 拆分后必须恰好 6 或 8 组，且每组是一个字节（1~2 个十六进制字符）。
	// 奇数长度大于 2 的分组（如 "abc"）超出单字节值域，一并在此拒绝。
	if len(pairs) != 6 && len(pairs) != 8 {
		return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, trimmed)
	}
	var a Addr
	for i, g := range pairs {
		if len(g) > 2 {
			return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, trimmed)
		}
		var b byte
		if len(g) == 1 {
			b = byte(hexValue(g[0]))
		} else {
			b = byte(hexValue(g[0]))<<4 | byte(hexValue(g[1]))
		}
		a.octets[i] = b
	}
	a.n = uint8(len(pairs))
	a.priority = priority
	a.original = s
	return a, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string, opts ...ParseOption) Addr {
	addr, err := Parse(s, opts...)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParse(%q): %v", s, err))
	}
	return addr
}

// splitPriorityPrefix 识别 "<digits>#" 前缀。
// 返回数字部分、剩余文本和是否匹配；要求 '#' 前至少一个数字且全为数字。
func splitPriorityPrefix(s string) (digits, tail string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '#' {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// stripLengthAnnotation 去除 "1,<digits>," 前缀（BPR 历史格式的长度注记）。
// 不匹配时原样返回。
func stripLengthAnnotation(s string) string {
	if !strings.HasPrefix(s, "1,") {
		return s
	}
	rest := s[2:]
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(rest) || rest[i] != ',' {
		return s
	}
	return rest[i+1:]
}

// splitGroups 以任意非字母数字字符的连续串为分隔符切分文本，丢弃空分组。
func splitGroups(s string) []string {
	var groups []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isAlnum(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			groups = append(groups, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		groups = append(groups, s[start:])
	}
	return groups
}

// isAlnum 报告 c 是否为 ASCII 字母或数字。
func isAlnum(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isHexGroup 报告 g 是否全部由十六进制字符构成。
func isHexGroup(g string) bool {
	for i := 0; i < len(g); i++ {
		if hexValue(g[i]) < 0 {
			return false
		}
	}
	return true
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
