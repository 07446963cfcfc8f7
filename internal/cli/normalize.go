package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/content"
	"github.com/roboco-io/postblocks/internal/store"
)

var (
	normalizeSource   string
	normalizeEnvelope bool
	normalizeOutput   string
	migrateOutput     string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "콘텐츠를 저장용 블록 배열로 정규화",
	Long: `콘텐츠를 저장용 블록 배열로 정규화합니다.

--source auto      이미 블록 배열이면 그대로, 아니면 Markdown으로 파싱 (기본)
--source markdown  항상 Markdown으로 파싱

--envelope를 지정하면 형식 태그가 붙은 저장 레코드로 출력합니다.

예시:
  postblocks normalize post.md
  postblocks normalize legacy.txt --envelope`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "기존 콘텐츠를 현재 블록 형식으로 변환",
	Long: `기존 Markdown 또는 이전 블록 배열을 현재 블록 형식으로 다시 저장합니다.

예시:
  postblocks migrate legacy.md -o post.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMigrate,
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeSource, "source", string(content.SourceAuto), "입력 해석 방식 (auto, markdown)")
	normalizeCmd.Flags().BoolVar(&normalizeEnvelope, "envelope", false, "저장 레코드로 출력")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	migrateCmd.Flags().StringVarP(&migrateOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	source := content.SourceFormat(normalizeSource)
	if !normalizeEnvelope {
		normalized, err := content.NormalizeContent(post.Body, source)
		if err != nil {
			return fmt.Errorf("정규화 실패: %w", err)
		}
		return writeOutput(cmd, normalizeOutput, normalized)
	}

	var rec store.Record
	switch source {
	case content.SourceMarkdown:
		rec, err = store.Normalize(store.EncodeMarkdown(post.Body))
	case content.SourceAuto:
		rec, err = store.FromLegacy(post.Body)
	default:
		return fmt.Errorf("정규화 실패: %w: source %q", content.ErrUnsupportedFormat, normalizeSource)
	}
	if err != nil {
		return fmt.Errorf("정규화 실패: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("출력 포맷팅 실패: %w", err)
	}
	return writeOutput(cmd, normalizeOutput, string(data))
}

func runMigrate(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	return writeOutput(cmd, migrateOutput, content.MigrateContent(post.Body))
}
