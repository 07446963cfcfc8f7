package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/config"
	"github.com/roboco-io/postblocks/internal/logging"
)

var (
	version = "dev"

	cfgFile   string
	verbose   bool
	quiet     bool
	inputType string

	// cfg and logger are set in PersistentPreRunE before any command runs.
	cfg    = config.DefaultConfig()
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "postblocks",
	Short: "블로그 Markdown을 콘텐츠 블록으로 변환",
	Long: `postblocks는 블로그 글의 Markdown을 저장용 콘텐츠 블록(JSON)으로 변환하고,
저장된 콘텐츠에서 목차, 요약, 읽기 시간 등을 계산합니다.

입력 파일 대신 "-"를 지정하면 표준 입력을 읽습니다 (--input-type으로 형식 지정).

예시:
  postblocks parse post.md
  postblocks markdown post.json
  postblocks toc post.md --format text
  cat post.md | postblocks excerpt - --length 120`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "설정 파일 경로 (기본: ~/.postblocks/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "상세 출력")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "조용한 모드 (오류만 출력)")
	rootCmd.PersistentFlags().StringVar(&inputType, "input-type", "md", "표준 입력의 형식 (md, txt, html, json)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLoader() (*config.Loader, error) {
	if cfgFile != "" {
		return config.NewLoaderWithPath(cfgFile), nil
	}
	return config.NewLoader()
}

// setup loads configuration and installs the logger. An unreadable or
// invalid config falls back to defaults so `config set` can still repair it.
func setup(cmd *cobra.Command, args []string) error {
	var warnings []string

	cfg = config.DefaultConfig()
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}
	if loaded, err := loader.Load(); err != nil {
		warnings = append(warnings, err.Error())
	} else if err := loaded.Validate(); err != nil {
		warnings = append(warnings, fmt.Sprintf("invalid config %s: %v", loader.ConfigPath(), err))
	} else {
		cfg = loaded
	}

	level := cfg.Log.Level
	switch {
	case quiet:
		level = logging.LevelError
	case verbose:
		level = logging.LevelDebug
	}
	logger = logging.New(cmd.ErrOrStderr(), level)

	for _, w := range warnings {
		logger.Warn().Msg(w + " (기본 설정 사용)")
	}
	logger.Debug().Str("config", loader.ConfigPath()).Str("command", cmd.CommandPath()).Msg("설정 로드 완료")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "postblocks %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
