package xeui

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmptyInput 表示输入为空或仅含空白字符。
	ErrEmptyInput = errors.New("xeui: empty input")

	// ErrInvalidFormat 表示地址文本无法解析。
	// 包装后的错误信息中带有去除首尾空白后的原始输入。
	ErrInvalidFormat = errors.New("xeui: invalid format")

	// ErrConflictingPriority 表示 [WithPriority] 指定的桥优先级
	// 与输入文本 "<digits>#" 前缀中的优先级不一致。
	ErrConflictingPriority = errors.New("xeui: conflicting bridge priority")

	// ErrNotEUI48Derived 表示 EUI-64 地址不是由 EUI-48 扩展而来
	// （第 4 字节不是 0xFF，或第 5 字节不是 0xFF/0xFE），无法还原。
	ErrNotEUI48Derived = errors.New("xeui: not derived from an EUI-48")

	// ErrInvalidLength 表示字节序列长度不正确（期望 6 或 8 字节）。
	ErrInvalidLength = errors.New("xeui: invalid length")

	// ErrInvalidAddr 表示对零值（无效）地址执行了需要有效地址的操作。
	ErrInvalidAddr = errors.New("xeui: invalid address")

	// ErrUnknownFormat 表示 [ParseFormat] 收到无法识别的格式名。
	ErrUnknownFormat = errors.New("xeui: unknown format")

	// ErrNilReceiver 表示在 nil 指针接收者上调用了反序列化方法。
	ErrNilReceiver = errors.New("xeui: nil receiver")

	// ErrUnsupportedType 表示 [Addr.Scan] 收到无法处理的源类型。
	ErrUnsupportedType = errors.New("xeui: unsupported type")
)
