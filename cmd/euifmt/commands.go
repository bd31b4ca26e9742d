package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/euikit/pkg/addr/xeui"
)

// renderCacheSize 过滤模式的渲染缓存容量。
const renderCacheSize = 4096

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，统一映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断是否为 CLI 框架产生的参数类错误
// （未知命令、未知 flag 等），按文档契约映射到退出码 2。
func isCLIUsageError(err error) bool {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createFmtCommand(),
		createInfoCommand(),
		createConvertCommand(),
		createFormatsCommand(),
	}
}

// createFmtCommand 创建 fmt 子命令（重新渲染地址）。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Aliases:   []string{"f"},
		Usage:     "按指定格式重新渲染地址；无参数时按行过滤标准输入",
		ArgsUsage: "[地址...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, opts, err := resolveRenderOptions(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args) > 0 {
				return cmdFmt(os.Stdout, format, opts, args)
			}
			return runFilter(ctx, os.Stdin, os.Stdout, os.Stderr, format, opts)
		},
	}
}

// createInfoCommand 创建 info 子命令（地址分类信息）。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"i"},
		Usage:     "显示地址的分类信息",
		ArgsUsage: "<地址>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, opts, err := resolveRenderOptions(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "info 命令需要且仅需要一个地址参数"}
			}
			return cmdInfo(os.Stdout, args[0], opts)
		},
	}
}

// createConvertCommand 创建 convert 子命令（宽度转换与 IPv6 派生）。
func createConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"x"},
		Usage:     "显示 EUI-48/EUI-64 转换及 IPv6 派生形式",
		ArgsUsage: "<地址>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, opts, err := resolveRenderOptions(cmd)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "convert 命令需要且仅需要一个地址参数"}
			}
			return cmdConvert(os.Stdout, args[0], opts)
		},
	}
}

// createFormatsCommand 创建 formats 子命令（列出输出格式）。
func createFormatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "列出所有支持的输出格式及示例",
		Action: func(_ context.Context, _ *cli.Command) error {
			return cmdFormats(os.Stdout)
		},
	}
}

// resolveRenderOptions 合并命令行、配置文件与默认值，
// 返回输出格式与解析选项。优先级：命令行 > 配置文件 > 默认值。
func resolveRenderOptions(cmd *cli.Command) (xeui.Format, []xeui.ParseOption, error) {
	cfg := defaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return 0, nil, err
		}
		cfg = loaded
	}

	name := cfg.Format
	if cmd.IsSet("format") {
		name = cmd.String("format")
	}
	format, err := xeui.ParseFormat(name)
	if err != nil {
		return 0, nil, &usageError{msg: fmt.Sprintf("未知的输出格式 %q（可用格式见 formats 命令）", name)}
	}

	priority := cfg.Priority
	if cmd.IsSet("priority") {
		priority = int(cmd.Int("priority"))
	}
	var opts []xeui.ParseOption
	if priority >= 0 {
		if priority > 65535 {
			return 0, nil, &usageError{msg: fmt.Sprintf("桥优先级 %d 超出范围 (0-65535)", priority)}
		}
		opts = append(opts, xeui.WithPriority(uint16(priority)))
	}

	return format, opts, nil
}

// cmdFmt 渲染命令行参数中的地址，每行输出一个。
func cmdFmt(w io.Writer, format xeui.Format, opts []xeui.ParseOption, args []string) error {
	for _, arg := range args {
		out, err := xeui.FormatAs(arg, format, opts...)
		if err != nil {
			return fmt.Errorf("解析 %q 失败: %w", arg, err)
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

// runFilter 按行过滤标准输入：每行一个地址，渲染后写出。
// 空白行原样透传以保持行对齐；解析失败的行记入 stderr 并继续，
// 全部处理后若存在失败行则返回退出码 1。
//
// 设计决策: 交换机转储和日志里重复地址很常见，
// 用 LRU 缓存已渲染结果避免重复解析。
func runFilter(ctx context.Context, r io.Reader, w, ew io.Writer, format xeui.Format, opts []xeui.ParseOption) error {
	cache, err := lru.New[string, string](renderCacheSize)
	if err != nil {
		return fmt.Errorf("创建渲染缓存失败: %w", err)
	}

	failed := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(w, line)
			continue
		}

		if out, ok := cache.Get(line); ok {
			fmt.Fprintln(w, out)
			continue
		}

		out, err := xeui.FormatAs(line, format, opts...)
		if err != nil {
			fmt.Fprintf(ew, "解析 %q 失败: %v\n", line, err)
			failed++
			continue
		}
		cache.Add(line, out)
		fmt.Fprintln(w, out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("读取输入失败: %w", err)
	}

	if failed > 0 {
		fmt.Fprintf(ew, "共 %d 行解析失败\n", failed)
		return &exitError{code: 1}
	}
	return nil
}

// cmdInfo 打印地址的分类信息。
func cmdInfo(w io.Writer, s string, opts []xeui.ParseOption) error {
	addr, err := xeui.Parse(s, opts...)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", s, err)
	}

	c := addr.Classify()
	oui := addr.OUI()
	nic := addr.NIC()

	fmt.Fprintf(w, "地址:     %s\n", addr)
	fmt.Fprintf(w, "位宽:     %d\n", c.BitLen)
	fmt.Fprintf(w, "分类:     %s\n", c)
	fmt.Fprintf(w, "OUI:      %02x:%02x:%02x\n", oui[0], oui[1], oui[2])
	fmt.Fprintf(w, "NIC:      %02x:%02x:%02x\n", nic[0], nic[1], nic[2])

	admin := "全球唯一"
	if c.IsLocallyAdministered {
		admin = "本地管理"
	}
	fmt.Fprintf(w, "管理位:   %s\n", admin)

	if addr.Priority() != 0 {
		fmt.Fprintf(w, "桥优先级: %d\n", addr.Priority())
	}
	if c.IsVRRP {
		fmt.Fprintf(w, "VRRP 虚拟路由器 ID: %d\n", addr.NIC()[2])
	}
	if c.IsHSRP {
		fmt.Fprintf(w, "HSRP 组号: %d\n", addr.NIC()[2])
	}
	return nil
}

// cmdConvert 打印地址的宽度转换结果与 IPv6 派生形式。
func cmdConvert(w io.Writer, s string, opts []xeui.ParseOption) error {
	addr, err := xeui.Parse(s, opts...)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", s, err)
	}

	if addr.IsEUI48() {
		e, err := addr.ToEUI64()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "EUI-48:   %s\n", addr)
		fmt.Fprintf(w, "EUI-64:   %s\n", e)
	} else {
		fmt.Fprintf(w, "EUI-64:   %s\n", addr)
		if back, err := addr.ToEUI48(); err == nil {
			fmt.Fprintf(w, "EUI-48:   %s\n", back)
		} else {
			fmt.Fprintf(w, "EUI-48:   不适用（非 EUI-48 扩展而来）\n")
		}
	}

	suffix, err := addr.IPv6Suffix()
	if err != nil {
		return err
	}
	ip, err := addr.LinkLocal()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "IPv6 后缀: %s\n", suffix)
	fmt.Fprintf(w, "链路本地:  %s\n", ip)
	return nil
}

// cmdFormats 列出所有输出格式及示例渲染。
func cmdFormats(w io.Writer) error {
	sample := xeui.MustParse("0011.22aa.bbcc", xeui.WithPriority(45))

	formats := []xeui.Format{
		xeui.FormatMicrosoft,
		xeui.FormatBasic,
		xeui.FormatBPR,
		xeui.FormatCisco,
		xeui.FormatIEEE,
		xeui.FormatPgSQL,
		xeui.FormatSingleDash,
		xeui.FormatSun,
		xeui.FormatTokenRing,
		xeui.FormatOUI,
		xeui.FormatBridgeID,
	}

	for _, f := range formats {
		fmt.Fprintf(w, "%-12s %s\n", f, sample.FormatString(f))
	}
	return nil
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// 当过滤模式阻塞在输入上时，用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}
