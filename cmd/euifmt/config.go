package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// fileConfig 是配置文件的映射结构。
// 所有键均可省略，省略的键保持默认值。
type fileConfig struct {
	// Format 是默认输出格式名，对应 --format。
	Format string `koanf:"format"`

	// Priority 是默认桥优先级，对应 --priority。-1 表示不附加。
	Priority int `koanf:"priority"`
}

// defaultConfig 返回内置默认配置：microsoft 格式，不附加优先级。
func defaultConfig() fileConfig {
	return fileConfig{
		Format:   "microsoft",
		Priority: -1,
	}
}

// loadConfig 从 YAML 或 JSON 文件加载配置，按扩展名选择解析器。
//
// 设计决策: 先用默认值填充结构体再反序列化，文件中省略的键
// 自然保持默认值，无需逐键判断是否存在。
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()

	parser, err := configParser(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("读取配置文件失败: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("配置文件 %s 结构不匹配: %w", path, err)
	}
	return cfg, nil
}

// configParser 按文件扩展名选择解析器。
// 无法识别的扩展名属于参数错误。
func configParser(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的配置文件扩展名 %q（支持 .yaml/.yml/.json）", filepath.Ext(path))}
	}
}
