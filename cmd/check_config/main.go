// check_config 校验交通配置文件并打印关键参数
//
// 用法：
//
//	go run ./cmd/check_config --config data/traffic_config.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Akhipbm/Traffic-runner/pkg/config"
)

func main() {
	path := flag.String("config", "data/traffic_config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.LoadGameConfig(*path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 解析并校验通过\n", *path)
	fmt.Printf("   目标距离: %.0fm  分数下限: %.0f\n", cfg.Session.GoalDistance, cfg.Session.ScoreFloor)
	fmt.Printf("   最高速度: %.1f  加速: %.2f  刹车: %.2f  摩擦: %.2f\n",
		cfg.Physics.MaxSpeed, cfg.Physics.Acceleration, cfg.Physics.Braking, cfg.Physics.Friction)
	fmt.Printf("   生成间隔: 树 %d 帧，交通物体 %d 帧\n", cfg.Spawn.TreeInterval, cfg.Spawn.ObjectInterval)

	total := 0
	for _, w := range cfg.Spawn.Weights {
		total += w.Weight
	}
	for _, w := range cfg.Spawn.Weights {
		fmt.Printf("   %-14s 权重 %3d (%.0f%%)\n", w.Type, w.Weight, 100*float64(w.Weight)/float64(total))
	}
}
