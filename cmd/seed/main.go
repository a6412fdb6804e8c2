package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/config"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/repository"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/seed"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var departments int
	var employees int

	flag.IntVar(&departments, "departments", 2, "要创建的部门数量")
	flag.IntVar(&employees, "employees", 5, "每个部门的员工数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(ctx); err != nil {
		logger.Error("数据库迁移失败", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 没有在配置中指定统一密码时随机生成一个并打印出来
	password := cfg.Seed.Password
	if password == "" {
		password = utils.GenerateRandomPassword(12)
		logger.Info("已生成演示账号密码", slog.String("password", password))
	}

	if err := seed.SeedDemoData(repo, departments, employees, password); err != nil {
		logger.Error("生成演示数据失败", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("演示数据生成完毕")
}
