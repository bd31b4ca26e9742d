package xeui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBroadcast(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"ff:ff:ff:ff:ff:ff", true},
		{"FF-FF-FF-FF-FF-FF", true},
		{"ff:ff:ff:ff:ff:ff:ff:ff", true},

		// 组播但非广播
		{"01:00:5e:00:00:01", false},
		{"ff:ff:ff:ff:ff:fe", false},

		{"00:11:22:aa:bb:cc", false},
		{"00:00:00:00:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsBroadcast()
			assert.Equal(t, tt.want, got)
		})
	}

	assert.False(t, Addr{}.IsBroadcast())
}

func TestIsMulticast(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		// 首字节最低位为 1
		{"01:00:5e:00:00:01", true},
		{"33:33:00:00:00:01", true},
		{"01:80:c2:00:00:00", true},
		{"ff:ff:ff:ff:ff:fe", true},

		// 广播不算组播
		{"ff:ff:ff:ff:ff:ff", false},
		{"ff:ff:ff:ff:ff:ff:ff:ff", false},

		{"00:11:22:aa:bb:cc", false},
		{"02:11:22:aa:bb:cc", false},
		{"00:00:00:00:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsMulticast()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUnicast(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"00:11:22:aa:bb:cc", true},
		{"02:11:22:aa:bb:cc", true},
		{"00:00:00:00:00:00", true},
		{"fe:ff:ff:ff:ff:ff", true},

		// 首字节最低位为 1 的都不是单播
		{"01:00:5e:00:00:01", false},
		{"33:33:00:00:00:01", false},
		{"ff:ff:ff:ff:ff:ff", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsUnicast()
			assert.Equal(t, tt.want, got)
		})
	}
}

// 任何有效地址恰好属于单播、组播、广播三类之一。
func TestCastPartition(t *testing.T) {
	addrs := []string{
		"00:11:22:aa:bb:cc",
		"01:00:5e:00:00:01",
		"ff:ff:ff:ff:ff:ff",
		"ff:ff:ff:ff:ff:fe",
		"00:00:00:00:00:00",
		"33:33:ff:aa:bb:cc",
		"02:42:ac:11:00:02",
		"ff:ff:ff:ff:ff:ff:ff:ff",
		"00:11:22:33:44:55:66:77",
	}

	for _, s := range addrs {
		t.Run(s, func(t *testing.T) {
			a := MustParse(s)
			count := 0
			if a.IsUnicast() {
				count++
			}
			if a.IsMulticast() {
				count++
			}
			if a.IsBroadcast() {
				count++
			}
			assert.Equal(t, 1, count, "address must be exactly one of unicast/multicast/broadcast")
		})
	}
}

func TestIsLocallyAdministered(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		// 首字节第二低位为 1
		{"02:11:22:aa:bb:cc", true},
		{"06:11:22:aa:bb:cc", true},
		{"0a:11:22:aa:bb:cc", true},
		{"0e:11:22:aa:bb:cc", true},
		{"fe:ff:ff:ff:ff:ff", true},

		{"00:11:22:aa:bb:cc", false},
		{"01:00:5e:00:00:01", false},
		{"04:11:22:aa:bb:cc", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			a := MustParse(tt.addr)
			assert.Equal(t, tt.want, a.IsLocallyAdministered())
			assert.Equal(t, !tt.want, a.IsUniversallyAdministered())
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"00:00:00:00:00:00", true},
		{"0000.0000.0000", true},
		{"00:00:00:00:00:00:00:00", true},
		{"00:00:00:00:00:01", false},
		{"ff:ff:ff:ff:ff:ff", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsZero()
			assert.Equal(t, tt.want, got)
		})
	}

	// 零值 Addr 不是"全零地址"：它根本不是地址
	assert.False(t, Addr{}.IsZero())
}

func TestIsVRRP(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"00:00:5e:00:01:01", true},
		{"00:00:5e:00:01:ff", true},
		{"00:00:5e:00:01:00", true},

		// 前缀差一位
		{"00:00:5e:00:02:01", false},
		{"00:00:5e:01:01:01", false},
		{"00:01:5e:00:01:01", false},
		{"01:00:5e:00:01:01", false},

		// EUI-64 不参与 VRRP 判定
		{"00:00:5e:00:01:01:00:00", false},

		{"00:11:22:aa:bb:cc", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsVRRP()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHSRP(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"00:00:0c:07:ac:00", true},
		{"00:00:0c:07:ac:05", true},
		{"00:00:0c:07:ac:ff", true},

		// v2 前缀不算 v1
		{"00:00:0c:9f:f0:01", false},

		{"00:00:0c:07:ad:05", false},
		{"00:00:0c:08:ac:05", false},
		{"00:00:0d:07:ac:05", false},
		{"00:11:22:aa:bb:cc", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsHSRP()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsHSRPv2(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		// 组号占据第五字节低 4 位与第六字节，范围 9f:f0:00 - 9f:ff:ff
		{"00:00:0c:9f:f0:00", true},
		{"00:00:0c:9f:f0:01", true},
		{"00:00:0c:9f:f5:a2", true},
		{"00:00:0c:9f:ff:ff", true},

		// f0 下界之外
		{"00:00:0c:9f:ef:ff", false},
		{"00:00:0c:9f:00:01", false},

		{"00:00:0c:9e:f0:01", false},
		{"00:00:0c:07:ac:05", false},
		{"00:11:22:aa:bb:cc", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got := MustParse(tt.addr).IsHSRPv2()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyMethod(t *testing.T) {
	t.Run("unicast_universal", func(t *testing.T) {
		c := MustParse("00:11:22:aa:bb:cc").Classify()
		assert.True(t, c.IsValid)
		assert.True(t, c.IsEUI48)
		assert.False(t, c.IsEUI64)
		assert.Equal(t, 48, c.BitLen)
		assert.True(t, c.IsUnicast)
		assert.False(t, c.IsMulticast)
		assert.False(t, c.IsBroadcast)
		assert.True(t, c.IsUniversallyAdministered)
		assert.False(t, c.IsLocallyAdministered)
		assert.Equal(t, "unicast", c.String())
	})

	t.Run("broadcast", func(t *testing.T) {
		c := MustParse("ff:ff:ff:ff:ff:ff").Classify()
		assert.True(t, c.IsBroadcast)
		assert.False(t, c.IsMulticast)
		assert.False(t, c.IsUnicast)
		assert.Equal(t, "broadcast", c.String())
	})

	t.Run("zero", func(t *testing.T) {
		c := MustParse("00:00:00:00:00:00").Classify()
		assert.True(t, c.IsZero)
		assert.True(t, c.IsUnicast)
		assert.Equal(t, "zero", c.String())
	})

	t.Run("vrrp", func(t *testing.T) {
		c := MustParse("00:00:5e:00:01:2a").Classify()
		assert.True(t, c.IsVRRP)
		assert.True(t, c.IsUnicast)
		assert.Equal(t, "vrrp", c.String())
	})

	t.Run("hsrp", func(t *testing.T) {
		c := MustParse("00:00:0c:07:ac:05").Classify()
		assert.True(t, c.IsHSRP)
		assert.False(t, c.IsHSRPv2)
		assert.Equal(t, "hsrp", c.String())
	})

	t.Run("hsrp_v2", func(t *testing.T) {
		c := MustParse("00:00:0c:9f:f0:2a").Classify()
		assert.True(t, c.IsHSRPv2)
		assert.False(t, c.IsHSRP)
		assert.Equal(t, "hsrp-v2", c.String())
	})

	t.Run("multicast", func(t *testing.T) {
		c := MustParse("01:00:5e:00:00:01").Classify()
		assert.True(t, c.IsMulticast)
		assert.Equal(t, "multicast", c.String())
	})

	t.Run("eui64", func(t *testing.T) {
		c := MustParse("00:11:22:33:44:55:66:77").Classify()
		assert.True(t, c.IsEUI64)
		assert.False(t, c.IsEUI48)
		assert.Equal(t, 64, c.BitLen)
	})

	t.Run("invalid", func(t *testing.T) {
		c := Addr{}.Classify()
		assert.False(t, c.IsValid)
		assert.Equal(t, 0, c.BitLen)
		assert.Equal(t, "invalid", c.String())
	})
}

func TestProceduralClassify(t *testing.T) {
	c, err := Classify("00:00:5e:00:01:2a")
	assert.NoError(t, err)
	assert.True(t, c.IsVRRP)

	_, err = Classify("not a mac")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestProceduralPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) (bool, error)
		addr string
		want bool
	}{
		{"IsEUI48", IsEUI48, "00:11:22:aa:bb:cc", true},
		{"IsEUI48_on_eui64", IsEUI48, "00:11:22:33:44:55:66:77", false},
		{"IsEUI64", IsEUI64, "00:11:22:33:44:55:66:77", true},
		{"IsEUI64_on_eui48", IsEUI64, "00:11:22:aa:bb:cc", false},
		{"IsBroadcast", IsBroadcast, "ffff.ffff.ffff", true},
		{"IsMulticast", IsMulticast, "01:00:5e:00:00:01", true},
		{"IsUnicast", IsUnicast, "00:11:22:aa:bb:cc", true},
		{"IsLocallyAdministered", IsLocallyAdministered, "02:11:22:aa:bb:cc", true},
		{"IsUniversallyAdministered", IsUniversallyAdministered, "00:11:22:aa:bb:cc", true},
		{"IsZero", IsZero, "000000000000", true},
		{"IsVRRP", IsVRRP, "00005e000101", true},
		{"IsHSRP", IsHSRP, "00000c07ac05", true},
		{"IsHSRPv2", IsHSRPv2, "00000c9ff001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.addr)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// 解析失败时断言结果为 false 并返回错误
	for _, fn := range []func(string) (bool, error){
		IsEUI48, IsEUI64, IsBroadcast, IsMulticast, IsUnicast,
		IsLocallyAdministered, IsUniversallyAdministered, IsZero,
		IsVRRP, IsHSRP, IsHSRPv2,
	} {
		got, err := fn("11:22:33")
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.False(t, got)
	}
}
