// Package main - точка входа для учёта успеваемости студента.
//
// Загружает каталог предметов из CSV, создаёт запись студента,
// добавляет оценки и результаты тестов и печатает средние баллы:
//
//	tracker --name "Ivan Petrov" --subjects subjects.csv \
//	    --grade Математика=5 --test Математика=87
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alem-hub/school-tools/config"
	"github.com/alem-hub/school-tools/internal/domain/student"
	"github.com/alem-hub/school-tools/internal/interface/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load("tracker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		return cli.ExitFailure
	}

	log := cfg.NewLogger()
	log.Debug("configuration loaded")

	return cli.RunTracker(ctx, os.Args[1:], os.Stdout, os.Stderr, log, cli.TrackerOptions{
		SubjectsFile: cfg.Tracker.SubjectsFile,
		Catalog:      student.CatalogOptions{Comma: cfg.Tracker.SubjectsDelimiter},
	})
}
