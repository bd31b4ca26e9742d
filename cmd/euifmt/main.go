// euifmt 是硬件地址（EUI-48/EUI-64）解析与格式化命令行工具。
//
// 用法:
//
//	euifmt [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-f, --format    输出格式 (默认: microsoft)
//	-p, --priority  桥优先级，用于 bridge-id 格式 (0-65535)
//	-c, --config    配置文件路径 (.yaml/.yml/.json)
//
// 命令:
//
//	fmt [地址...]   按指定格式重新渲染地址；无参数时按行过滤标准输入
//	info <地址>     显示地址的分类信息（单播/组播/VRRP/HSRP 等）
//	convert <地址>  显示 EUI-48/EUI-64 转换及 IPv6 派生形式
//	formats         列出所有支持的输出格式
//	help            显示帮助信息
//
// 支持的输出格式:
//
//	microsoft    00:11:22:aa:bb:cc
//	basic        001122aabbcc
//	bpr          1,6,00:11:22:aa:bb:cc
//	cisco        0011.22aa.bbcc
//	ieee         00-11-22-aa-bb-cc
//	pgsql        001122:aabbcc
//	singledash   001122-aabbcc
//	sun          0-11-22-aa-bb-cc
//	tokenring    00-88-44-55-dd-33（逐字节位反转）
//	oui          00-11-22
//	bridge-id    45#0011.22aa.bbcc
//
// 退出码:
//
//	0: 命令执行成功
//	1: 执行失败（地址解析失败、转换失败等）
//	2: 参数错误（未知格式名、优先级越界、未知命令等）
//
// 示例:
//
//	euifmt fmt 001122aabbcc                       # 默认格式渲染
//	euifmt -f cisco fmt 00:11:22:aa:bb:cc         # Cisco 点格式
//	euifmt -f bridge-id -p 45 fmt 001122aabbcc    # 生成树桥 ID
//	cat arp.txt | euifmt -f basic fmt             # 过滤标准输入
//	euifmt info 00:00:5e:00:01:2a                 # 地址分类
//	euifmt convert 00:1a:2b:3c:4d:5e              # EUI-64 与 IPv6 派生
//	euifmt -c euifmt.yaml fmt 001122aabbcc        # 从配置文件读取默认格式
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "euifmt",
		Usage:   "硬件地址解析与格式化工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式名（见 formats 命令）",
			},
			&cli.IntFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "桥优先级 (0-65535)，用于 bridge-id 格式",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"EUIKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `euifmt 在各种书写格式之间转换硬件地址，并提供地址分类
与 IPv6 接口标识符派生。

解析输入时接受任意分隔符组合: 冒号、短线、点、空格，
大小写不敏感，同时支持 Sun 风格的不补零写法与
生成树桥 ID 的 "优先级#地址" 前缀。`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
