// rbotctl 是面向开发调试的诊断工具：
// 连接到游戏服务器宿主通道，执行单次查询或命令并打印结果。
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rbot "github.com/transairobot/rbot_go"
	"github.com/transairobot/rbot_go/conversions"
	"github.com/transairobot/rbot_go/hostquic"
	"github.com/transairobot/rbot_go/hostws"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "rbotctl",
		Short:         "机器人控制协议诊断工具",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "rbotctl.toml", "配置文件路径")

	rootCmd.AddCommand(
		pingCmd(),
		stateCmd(),
		scanCmd(),
		rotateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// connect 按配置构建宿主通道和客户端。
func connect() (*rbot.Client, func(), error) {
	cfg, err := rbot.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := rbot.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	var (
		host    rbot.Host
		cleanup func()
	)

	switch cfg.Transport.Kind {
	case "quic":
		h, err := hostquic.Dial(context.Background(), cfg.Transport.Addr, &hostquic.Config{
			InsecureSkipVerify: cfg.Transport.InsecureSkipVerify,
		})
		if err != nil {
			return nil, nil, err
		}
		host, cleanup = h, func() { _ = h.Close() }
	case "ws":
		h, err := hostws.Dial(cfg.Transport.Addr, nil)
		if err != nil {
			return nil, nil, err
		}
		host, cleanup = h, func() { _ = h.Close() }
	default:
		return nil, nil, fmt.Errorf("unsupported transport kind: %q", cfg.Transport.Kind)
	}

	return rbot.New(host, rbot.WithLogger(logger)), cleanup, nil
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "查询服务器时间戳，验证通道连通性",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := connect()
			if err != nil {
				return err
			}
			defer cleanup()

			timestamp, err := client.Time()
			if err != nil {
				return err
			}
			fmt.Printf("server time: %.3fs\n", timestamp)
			return nil
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "查询机器人整体状态快照",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := connect()
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := client.State()
			if err != nil {
				return err
			}
			fmt.Printf("angle: %.2f°\n", state.Angle)
			fmt.Printf("velocity: (%.2f, %.2f)\n", state.VelocityX, state.VelocityY)
			fmt.Printf("health: %.1f\n", state.Health)
			fmt.Printf("buffs: %v\n", state.Buffs)
			return nil
		},
	}
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "发起范围扫描并打印发现的对象",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := connect()
			if err != nil {
				return err
			}
			defer cleanup()

			scan, err := client.Scan()
			if err != nil {
				return err
			}
			for _, obj := range scan.Objects {
				angle := conversions.XYToAngle(obj.X, obj.Y)
				fmt.Printf("%-10s %-12s (%8.2f, %8.2f) %7.2f° %v\n",
					obj.Tag, obj.Kind, obj.X, obj.Y, angle, obj.Buffs)
			}
			fmt.Printf("%d objects\n", len(scan.Objects))
			return nil
		},
	}
}

func rotateCmd() *cobra.Command {
	var angle float64

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "将机器人旋转到指定角度",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := connect()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := client.Rotate(angle); err != nil {
				return err
			}
			fmt.Printf("rotate command accepted: %.2f°\n", angle)
			return nil
		},
	}

	cmd.Flags().Float64Var(&angle, "angle", 0, "目标角度（度）")
	return cmd
}
