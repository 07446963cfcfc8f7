package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/store"
)

var (
	parseOutput string
	parseFormat string
	parsePretty bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Markdown을 콘텐츠 블록으로 파싱",
	Long: `글을 파싱하여 저장용 콘텐츠 블록을 출력합니다.

지원 입력: .md, .markdown, .txt, .html, .htm, .json (저장된 블록)
Markdown 입력의 YAML front matter는 본문에서 제외됩니다.

출력 형식:
  json     블록 배열 (기본)
  text     블록에서 추출한 일반 텍스트
  record   형식 태그가 붙은 저장 레코드

예시:
  postblocks parse post.md
  postblocks parse post.md -o post.json --pretty=false
  postblocks parse post.html --format record`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "출력 형식 (json, text, record)")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", true, "JSON 들여쓰기 적용")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	var output string
	switch parseFormat {
	case "json":
		output, err = marshalBlocks(postBlocks(post), parsePretty)
	case "text":
		output = strings.TrimRight(parsePost(post).PlainText, "\n")
	case "record":
		output, err = formatRecord(postBlocks(post), parsePretty)
	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %s", parseFormat)
	}
	if err != nil {
		return fmt.Errorf("출력 포맷팅 실패: %w", err)
	}

	return writeOutput(cmd, parseOutput, output)
}

func marshalBlocks(blocks []block.Block, pretty bool) (string, error) {
	if pretty {
		return block.MarshalIndent(blocks)
	}
	return block.Marshal(blocks)
}

func formatRecord(blocks []block.Block, pretty bool) (string, error) {
	rec, err := store.EncodeBlocks(blocks)
	if err != nil {
		return "", err
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(rec, "", "  ")
	} else {
		data, err = json.Marshal(rec)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
