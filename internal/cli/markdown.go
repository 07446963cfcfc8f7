package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/postblocks/internal/content"
	"github.com/roboco-io/postblocks/internal/ingest"
)

var (
	markdownOutput      string
	markdownFrontMatter bool
)

var markdownCmd = &cobra.Command{
	Use:   "markdown <file>",
	Short: "저장된 콘텐츠를 Markdown으로 복원",
	Long: `저장된 블록 배열(또는 기존 Markdown)을 편집용 Markdown으로 복원합니다.

인라인 HTML(<strong>, <em>, <a>)은 Markdown 문법으로 되돌리고,
번호 목록은 1부터 다시 번호를 매깁니다.

예시:
  postblocks markdown post.json
  postblocks markdown post.md -o normalized.md
  postblocks markdown - --input-type json < post.json`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkdown,
}

func init() {
	markdownCmd.Flags().StringVarP(&markdownOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	markdownCmd.Flags().BoolVar(&markdownFrontMatter, "front-matter", true, "front matter가 있으면 함께 출력")

	rootCmd.AddCommand(markdownCmd)
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	body, err := content.GetContentInFormat(post.Body, content.OutputMarkdown)
	if err != nil {
		return fmt.Errorf("Markdown 변환 실패: %w", err)
	}

	if markdownFrontMatter && !post.Meta.IsZero() {
		fm, err := formatFrontMatter(post.Meta)
		if err != nil {
			return fmt.Errorf("front matter 출력 실패: %w", err)
		}
		body = fm + body
	}

	return writeOutput(cmd, markdownOutput, body)
}

func formatFrontMatter(meta ingest.Meta) (string, error) {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(data)
	sb.WriteString("---\n\n")
	return sb.String(), nil
}
