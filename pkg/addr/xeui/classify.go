package xeui

// IsEUI48 报告 a 是否为 6 字节的 EUI-48 地址。
func (a Addr) IsEUI48() bool {
	return a.n == 6
}

// IsEUI64 报告 a 是否为 8 字节的 EUI-64 地址。
func (a Addr) IsEUI64() bool {
	return a.n == 8
}

// IsBroadcast 报告 a 是否为广播地址（所有字节均为 0xFF）。
// 无效地址返回 false。
func (a Addr) IsBroadcast() bool {
	if !a.IsValid() {
		return false
	}
	for i := 0; i < int(a.n); i++ {
		if a.octets[i] != 0xff {
			return false
		}
	}
	return true
}

// IsMulticast 报告 a 是否为多播地址：
// 首字节最低位（bit 0）为 1 且不是广播地址。
// 无效地址返回 false。
func (a Addr) IsMulticast() bool {
	return a.IsValid() && a.octets[0]&0x01 != 0 && !a.IsBroadcast()
}

// IsUnicast 报告 a 是否为单播地址：首字节最低位（bit 0）为 0。
// 与 [Addr.IsMulticast] 的关系：有效地址中单播、多播、广播三者互斥且完备。
// 无效地址返回 false。
func (a Addr) IsUnicast() bool {
	return a.IsValid() && a.octets[0]&0x01 == 0
}

// IsLocallyAdministered 报告 a 是否为本地管理地址（LAA）。
// LAA 的首字节次低位（bit 1）为 1，虚拟机、VRRP/HSRP 等虚拟地址常见。
// 无效地址返回 false。
func (a Addr) IsLocallyAdministered() bool {
	return a.IsValid() && a.octets[0]&0x02 == 0x02
}

// IsUniversallyAdministered 报告 a 是否为全球唯一地址（UAA）。
// UAA 的首字节次低位（bit 1）为 0，出厂烧录的物理网卡地址属于此类。
// 无效地址返回 false。
func (a Addr) IsUniversallyAdministered() bool {
	return a.IsValid() && a.octets[0]&0x02 == 0
}

// IsZero 报告 a 是否为有效的全零地址（00:00:00:00:00:00 或其 EUI-64 对应）。
// 与零值 Addr{}（无效）不同：全零地址是解析成功的有效地址。
func (a Addr) IsZero() bool {
	return a.IsValid() && a.octets == [8]byte{}
}

// IsVRRP 报告 a 是否为 VRRP 虚拟路由器地址（00:00:5e:00:01:xx）。
// 仅对 EUI-48 有意义，其余返回 false。
func (a Addr) IsVRRP() bool {
	return a.n == 6 &&
		a.octets[0] == 0x00 && a.octets[1] == 0x00 && a.octets[2] == 0x5e &&
		a.octets[3] == 0x00 && a.octets[4] == 0x01
}

// IsHSRP 报告 a 是否为 HSRP 虚拟地址（00:00:0c:07:ac:xx）。
// 仅对 EUI-48 有意义，其余返回 false。
func (a Addr) IsHSRP() bool {
	return a.n == 6 &&
		a.octets[0] == 0x00 && a.octets[1] == 0x00 && a.octets[2] == 0x0c &&
		a.octets[3] == 0x07 && a.octets[4] == 0xac
}

// IsHSRPv2 报告 a 是否为 HSRP v2 虚拟地址（00:00:0c:9f:f0:00 ~ 00:00:0c:9f:ff:ff）。
// 仅对 EUI-48 有意义，其余返回 false。
func (a Addr) IsHSRPv2() bool {
	return a.n == 6 &&
		a.octets[0] == 0x00 && a.octets[1] == 0x00 && a.octets[2] == 0x0c &&
		a.octets[3] == 0x9f && a.octets[4] >= 0xf0
}

// Classify 返回地址的完整分类信息。
//
// 示例：
//
//	c := xeui.MustParse("01:00:5e:00:00:01").Classify()
//	fmt.Println(c.IsMulticast) // true
//	fmt.Println(c)             // multicast
func (a Addr) Classify() Classification {
	if !a.IsValid() {
		return Classification{}
	}
	return Classification{
		BitLen:                    a.BitLen(),
		IsValid:                   true,
		IsEUI48:                   a.IsEUI48(),
		IsEUI64:                   a.IsEUI64(),
		IsUnicast:                 a.IsUnicast(),
		IsMulticast:               a.IsMulticast(),
		IsBroadcast:               a.IsBroadcast(),
		IsZero:                    a.IsZero(),
		IsLocallyAdministered:     a.IsLocallyAdministered(),
		IsUniversallyAdministered: a.IsUniversallyAdministered(),
		IsVRRP:                    a.IsVRRP(),
		IsHSRP:                    a.IsHSRP(),
		IsHSRPv2:                  a.IsHSRPv2(),
	}
}

// Classification 汇总一个地址的全部分类结果。
//
// 设计决策: 使用扁平的导出字段而非位标志或方法集，因为：
//   - 值类型结构体在 Go 中添加字段是向后兼容的
//   - 调用方可直接访问 c.IsMulticast，比 c.Has(FlagMulticast) 更符合 Go 惯用法
//   - 所有字段在 Classify() 一次调用中填充，避免多次方法调用开销
type Classification struct {
	// BitLen 是地址位宽（48 或 64）。
	BitLen int

	// IsValid 表示地址是否有效。
	IsValid bool

	// IsEUI48 表示是否为 6 字节地址。
	IsEUI48 bool

	// IsEUI64 表示是否为 8 字节地址。
	IsEUI64 bool

	// IsUnicast 表示是否为单播地址。
	IsUnicast bool

	// IsMulticast 表示是否为多播地址（广播除外）。
	IsMulticast bool

	// IsBroadcast 表示是否为全 FF 的广播地址。
	IsBroadcast bool

	// IsZero 表示是否为全零地址。
	IsZero bool

	// IsLocallyAdministered 表示是否为本地管理地址。
	IsLocallyAdministered bool

	// IsUniversallyAdministered 表示是否为全球唯一地址。
	IsUniversallyAdministered bool

	// IsVRRP 表示是否为 VRRP 虚拟路由器地址。
	IsVRRP bool

	// IsHSRP 表示是否为 HSRP 虚拟地址。
	IsHSRP bool

	// IsHSRPv2 表示是否为 HSRP v2 虚拟地址。
	IsHSRPv2 bool
}

// String 返回分类的标签。
// 优先级：越特殊的分类越靠前（如 broadcast > vrrp > multicast）。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}

	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsBroadcast, "broadcast"},
		{c.IsZero, "zero"},
		{c.IsVRRP, "vrrp"},
		{c.IsHSRP, "hsrp"},
		{c.IsHSRPv2, "hsrp-v2"},
		{c.IsMulticast, "multicast"},
		{c.IsUnicast, "unicast"},
	}

	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	// 防御性分支：有效地址必属单播或多播或广播，
	// 仅在手工构造 Classification{IsValid: true} 时触达。
	return "unknown"
}

// 设计决策: 以下包级函数是"解析后立即判断"的过程式入口，每个函数
// 内部先 [Parse] 再调用同名方法。定型的 [Addr] 走方法，原始文本走
// 包级函数，两条入口签名不同，编译期即可区分，不存在把地址值误传给
// 文本入口的问题。

// IsEUI48 解析文本后报告其是否为 EUI-48 地址。
func IsEUI48(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsEUI48(), nil
}

// IsEUI64 解析文本后报告其是否为 EUI-64 地址。
func IsEUI64(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsEUI64(), nil
}

// IsBroadcast 解析文本后报告其是否为广播地址。
func IsBroadcast(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsBroadcast(), nil
}

// IsMulticast 解析文本后报告其是否为多播地址。
func IsMulticast(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsMulticast(), nil
}

// IsUnicast 解析文本后报告其是否为单播地址。
func IsUnicast(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsUnicast(), nil
}

// IsLocallyAdministered 解析文本后报告其是否为本地管理地址。
func IsLocallyAdministered(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsLocallyAdministered(), nil
}

// IsUniversallyAdministered 解析文本后报告其是否为全球唯一地址。
func IsUniversallyAdministered(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsUniversallyAdministered(), nil
}

// IsZero 解析文本后报告其是否为全零地址。
func IsZero(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsZero(), nil
}

// IsVRRP 解析文本后报告其是否为 VRRP 虚拟路由器地址。
func IsVRRP(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsVRRP(), nil
}

// IsHSRP 解析文本后报告其是否为 HSRP 虚拟地址。
func IsHSRP(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsHSRP(), nil
}

// IsHSRPv2 解析文本后报告其是否为 HSRP v2 虚拟地址。
func IsHSRPv2(s string) (bool, error) {
	a, err := Parse(s)
	if err != nil {
		return false, err
	}
	return a.IsHSRPv2(), nil
}

// Classify 解析文本后返回完整分类信息。
func Classify(s string) (Classification, error) {
	a, err := Parse(s)
	if err != nil {
		return Classification{}, err
	}
	return a.Classify(), nil
}
