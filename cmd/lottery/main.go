// Package main - точка входа для сравнения лотерейного билета с выпавшими числами.
//
// Использование:
//
//	lottery "3 7 9 12" "7 12 15"
//
// Код выхода 0 при успехе (есть совпадения или нет), 1 при неверном
// количестве аргументов или ошибке разбора чисел.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alem-hub/school-tools/config"
	"github.com/alem-hub/school-tools/internal/interface/cli"
)

func main() {
	cfg, err := config.Load("lottery")
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	// Логгер создаётся один раз до построения компонентов.
	log := cfg.NewLogger()

	os.Exit(cli.RunLottery(context.Background(), os.Args[1:], os.Stdout, log))
}
