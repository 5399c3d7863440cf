// Package cmd - solarcalc CLI commands
package cmd

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/config"
	"github.com/PSJ84/jssolar-project-portal-sub002/internal/pkg/logger"
)

var (
	// 공통 플래그
	envFile    string
	tariffFile string
	verbose    bool

	// initConfig 에서 로드
	appConfig *config.Config
)

// rootCmd 루트 커맨드
var rootCmd = &cobra.Command{
	Use:   "solarcalc",
	Short: "JSSolar 계산기 CLI",
	Long: `JSSolar 계산기 CLI

Usage:
    go run ./cmd/solarcalc [command]

Commands:
    profit      태양광 20년 수익성 분석 (4개 조달 시나리오)
    kepco       한전 시설부담금 + 분할납부 계산
    tariffs     한전 시설부담금 단가표 출력
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute 루트 커맨드 실행
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&tariffFile, "tariff", "", "KEPCO tariff YAML (default: embedded table or KEPCO_TARIFF_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(profitCmd)
	rootCmd.AddCommand(kepcoCmd)
	rootCmd.AddCommand(tariffsCmd)
}

// initConfig reads in env file and ENV variables if set
func initConfig() error {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil && verbose {
		// .env 파일이 없어도 계속 진행 (환경변수로 설정 가능)
		fmt.Println("Warning: env file not found, using environment variables")
	}

	appConfig, err = config.FromEnv()
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel.String()
	if verbose {
		level = zerolog.DebugLevel.String()
	}
	return logger.Init(logger.Config{
		Level:       level,
		Format:      "pretty",
		ServiceName: "solarcalc",
	})
}

// resolveTariffPath 플래그 > 환경변수 > 내장 단가표
func resolveTariffPath() string {
	if tariffFile != "" {
		return tariffFile
	}
	return appConfig.Simulation.TariffFile
}

// printJSON 결과를 들여쓰기된 JSON 으로 출력
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
