package app

import (
	"fmt"
	"io"

	"github.com/hitoshi/careerdesk/internal/logger"
)

// サブコマンド名
const (
	cmdServe       = "serve"
	cmdMigrate     = "migrate"
	cmdHealthcheck = "healthcheck"
)

// Run はコマンドライン引数を解釈してアプリケーションを実行し、終了コードを返す。
// 引数なしの場合はserveとして動作する。
func Run(w io.Writer, args []string) int {
	logger.SetupDefault()

	cmd := cmdServe
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case cmdServe:
		return runServe()
	case cmdMigrate:
		return runMigrate()
	case cmdHealthcheck:
		return runHealthcheck()
	default:
		printUsage(w, cmd)
		return 1
	}
}

func printUsage(w io.Writer, unknown string) {
	fmt.Fprintf(w, "不明なコマンドです: %s\n", unknown)
	fmt.Fprintln(w, "使用方法: careerdesk [serve|migrate|healthcheck]")
}
