package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/config"
	"github.com/roboco-io/postblocks/internal/content"
	"github.com/roboco-io/postblocks/internal/parser"
)

var (
	backupTitle   string
	backupDir     string
	restoreFormat string
	restoreOutput string
)

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "콘텐츠 백업 생성",
	Long: `콘텐츠의 스냅샷을 <dir>/backup-<밀리초>.json 파일로 저장합니다.

블록 배열처럼 보이는 입력은 유효한 블록 배열이어야 합니다.
제목을 지정하지 않으면 front matter의 title을 사용합니다.

예시:
  postblocks backup post.md
  postblocks backup post.json --dir ./backups --title "봄 세일"`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "백업에서 콘텐츠 복원",
	Long: `backup 명령으로 만든 파일에서 콘텐츠를 꺼냅니다.

--format을 지정하지 않으면 저장된 그대로 출력합니다.

예시:
  postblocks restore ~/.postblocks/backups/backup-1700000000000.json
  postblocks restore backup.json --format markdown -o post.md`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	backupCmd.Flags().StringVar(&backupTitle, "title", "", "백업 제목")
	backupCmd.Flags().StringVar(&backupDir, "dir", "", "백업 디렉토리 (기본: 설정의 backup.dir)")
	restoreCmd.Flags().StringVarP(&restoreFormat, "format", "f", "", "출력 형식 (json, markdown, blocks, md)")
	restoreCmd.Flags().StringVarP(&restoreOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	title := backupTitle
	if title == "" {
		title = post.Meta.Title
	}

	b, err := content.CreateContentBackup(post.Body, title)
	if err != nil {
		return fmt.Errorf("백업 생성 실패: %w", err)
	}

	dir := backupDir
	if dir == "" {
		dir = cfg.Backup.Dir
	}
	dir, err = config.ExpandHome(dir)
	if err != nil {
		return err
	}

	path, err := b.Save(dir)
	if err != nil {
		return fmt.Errorf("백업 저장 실패: %w", err)
	}

	logger.Info().Str("id", b.ID).Str("format", b.Format).Msg("백업 완료")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	b, err := content.LoadBackup(args[0])
	if err != nil {
		return err
	}
	logger.Debug().Str("id", b.ID).Time("created", b.CreatedAt).Msg("백업 로드 완료")

	if restoreFormat == "" {
		return writeOutput(cmd, restoreOutput, b.Content)
	}

	var format content.OutputFormat
	switch parser.ParseFormat(restoreFormat) {
	case parser.FormatBlocks:
		format = content.OutputJSON
	case parser.FormatMarkdown:
		format = content.OutputMarkdown
	default:
		return fmt.Errorf("복원 실패: %w: %q", content.ErrUnsupportedFormat, restoreFormat)
	}

	output, err := content.GetContentInFormat(b.Content, format)
	if err != nil {
		return fmt.Errorf("복원 실패: %w", err)
	}
	return writeOutput(cmd, restoreOutput, output)
}
