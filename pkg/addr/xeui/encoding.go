package xeui

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// 序列化约定：所有编码只承载地址字节，桥优先级与原始文本不参与编码。
// 需要持久化优先级时请单独存储，或直接存 [FormatBridgeID] 渲染结果。

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出小写冒号格式（00:11:22:aa:bb:cc）。无效地址输出空字节切片。
func (a Addr) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return []byte{}, nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [Parse] 支持的格式。空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的小写冒号格式字符串（"00:11:22:aa:bb:cc"）。
// 无效地址输出空字符串（""）。
//
// 地址字符串仅含 [0-9a-f:] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	if !a.IsValid() {
		return []byte(`""`), nil
	}
	s := a.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 支持所有 [Parse] 支持的格式。空字符串或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
//
// null 匹配为精确字节比较（不去除空白），
// 与 Go 标准库 [time.Time.UnmarshalJSON] 的行为一致。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if s == "" {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
// 输出原始地址字节（6 或 8 字节）。无效地址输出空字节切片。
func (a Addr) MarshalBinary() ([]byte, error) {
	if !a.IsValid() {
		return []byte{}, nil
	}
	return a.Bytes(), nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 接受 6 或 8 字节输入；空输入设置为零值；
// 其余长度返回 [ErrInvalidLength]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(data) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalCBOR 实现 CBOR 序列化。
// 输出字节串（byte string）承载的原始地址字节，EUI-48 连同
// 类型头共 7 字节，比文本编码紧凑。无效地址输出 CBOR null。
func (a Addr) MarshalCBOR() ([]byte, error) {
	if !a.IsValid() {
		return cbor.Marshal(nil)
	}
	return cbor.Marshal(a.Bytes())
}

// UnmarshalCBOR 实现 CBOR 反序列化。
// 接受 6 或 8 字节的字节串；null 或空字节串设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalCBOR(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(b) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := ParseBytes(b)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，用于 SQL 数据库写入。
// 输出小写冒号格式字符串，无效地址返回 nil（SQL NULL）。
func (a Addr) Value() (driver.Value, error) {
	if !a.IsValid() {
		return nil, nil
	}
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]，用于 SQL 数据库读取。
// 支持 string、[]byte（文本或 6/8 字节二进制）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		if v == "" {
			*a = Addr{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			*a = Addr{}
			return nil
		}
		// 6/8 字节视为二进制格式，适用于 BINARY(6)/BINARY(8) 列存储的
		// 原始地址字节。有效地址的最短文本形式是 11 字符的 sun 格式
		// （"0-0-0-0-0-0"），不会与二进制长度冲突。
		if len(v) == 6 || len(v) == 8 {
			parsed, err := ParseBytes(v)
			if err != nil {
				return err
			}
			*a = parsed
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}
