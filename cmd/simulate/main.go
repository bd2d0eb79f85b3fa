// simulate 无界面运行一局，由自动驾驶策略操控，结束后打印违规报告
//
// 用法：
//
//	go run ./cmd/simulate --seed 42 --config data/traffic_config.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/Akhipbm/Traffic-runner/internal/autopilot"
	"github.com/Akhipbm/Traffic-runner/pkg/app"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（为空使用默认配置）")
	seed       = flag.Int64("seed", 1, "随机种子")
	maxTicks   = flag.Int("max-ticks", 60*60*10, "最多模拟的帧数")
	driver     = flag.String("driver", "autopilot", "记录成绩使用的驾驶员名称")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := app.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	// 不写入本地存储
	session := game.NewSession(cfg, game.NewGdataScoreboard(nil), rand.New(rand.NewSource(*seed)))
	if err := session.Login(*driver); err != nil {
		fmt.Fprintf(os.Stderr, "登录失败: %v\n", err)
		os.Exit(1)
	}
	if err := session.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "开始失败: %v\n", err)
		os.Exit(1)
	}

	pilot := autopilot.New(cfg)
	ticks := 0
	for ; ticks < *maxTicks && session.State() == game.StatePlaying; ticks++ {
		session.Tick(pilot.Decide(session.Snapshot()))
	}

	report := session.Report()
	if report == nil {
		snap := session.Snapshot()
		fmt.Printf("Run %s did not finish after %d ticks (distance %.1fm, score %.1f)\n",
			snap.RunID, ticks, snap.Metrics.Distance, snap.Metrics.Score)
		os.Exit(2)
	}

	printReport(os.Stdout, report, ticks, float64(cfg.Session.TicksPerSecond))
}

func printReport(w io.Writer, r *game.GameOverReport, ticks int, tps float64) {
	fmt.Fprintf(w, "Run:       %s\n", r.RunID)
	fmt.Fprintf(w, "Driver:    %s\n", r.PlayerName)
	fmt.Fprintf(w, "Result:    %s (%s)\n", r.Headline, r.Reason)
	fmt.Fprintf(w, "Score:     %.1f\n", r.Score)
	fmt.Fprintf(w, "Distance:  %.1fm\n", r.Distance)
	fmt.Fprintf(w, "Time:      %.1fs (%d ticks)\n", float64(ticks)/tps, ticks)
	fmt.Fprintf(w, "Perfect:   %v\n", r.Perfect)
	fmt.Fprintln(w, "Violations:")
	for _, line := range r.Lines() {
		fmt.Fprintf(w, "  %-12s %d\n", line.Label, line.Count)
	}
}
