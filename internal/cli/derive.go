package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/content"
)

var (
	tocFormat     string
	excerptLength int
	statsWPM      int
	statsJSON     bool
)

var tocCmd = &cobra.Command{
	Use:   "toc <file>",
	Short: "목차 생성",
	Long: `제목 블록(h1-h3)에서 목차를 생성합니다.

각 항목의 id는 문서 순서대로 heading-1, heading-2, ... 입니다.

예시:
  postblocks toc post.md
  postblocks toc post.json --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runTOC,
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt <file>",
	Short: "요약문 추출",
	Long: `제목과 문단 블록에서 일반 텍스트 요약문을 추출합니다.

길이를 넘으면 잘라서 "..."을 붙입니다.
기본 길이는 설정의 excerpt.max_length 입니다.

예시:
  postblocks excerpt post.md
  postblocks excerpt post.json --length 120`,
	Args: cobra.ExactArgs(1),
	RunE: runExcerpt,
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "단어 수와 읽기 시간 계산",
	Long: `글의 블록 수, 단어 수, 예상 읽기 시간(분)을 계산합니다.

기본 읽기 속도는 설정의 reading.words_per_minute 입니다.

예시:
  postblocks stats post.md
  postblocks stats post.json --wpm 250 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	tocCmd.Flags().StringVarP(&tocFormat, "format", "f", "json", "출력 형식 (json, text)")
	excerptCmd.Flags().IntVarP(&excerptLength, "length", "l", 0, "최대 길이 (기본: 설정값)")
	statsCmd.Flags().IntVar(&statsWPM, "wpm", 0, "분당 단어 수 (기본: 설정값)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "JSON으로 출력")

	rootCmd.AddCommand(tocCmd)
	rootCmd.AddCommand(excerptCmd)
	rootCmd.AddCommand(statsCmd)
}

func runTOC(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	items := content.GenerateTableOfContents(post.Body)

	switch tocFormat {
	case "json":
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("출력 포맷팅 실패: %w", err)
		}
		return writeOutput(cmd, "", string(data))
	case "text":
		var sb strings.Builder
		for _, item := range items {
			fmt.Fprintf(&sb, "%s- %s (#%s)\n", strings.Repeat("  ", item.Level-1), item.Text, item.ID)
		}
		fmt.Fprint(cmd.OutOrStdout(), sb.String())
		return nil
	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %s", tocFormat)
	}
}

func runExcerpt(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	length := excerptLength
	if length <= 0 {
		length = cfg.Excerpt.MaxLength
	}

	return writeOutput(cmd, "", content.ExtractPlainText(post.Body, length))
}

type postStats struct {
	Blocks         int `json:"blocks"`
	Headings       int `json:"headings"`
	Paragraphs     int `json:"paragraphs"`
	Lists          int `json:"lists"`
	Images         int `json:"images"`
	Words          int `json:"words"`
	ReadingMinutes int `json:"readingMinutes"`
}

func runStats(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	wpm := statsWPM
	if wpm <= 0 {
		wpm = cfg.Reading.WordsPerMinute
	}

	stats := postStats{
		Words:          content.CountWords(post.Body),
		ReadingMinutes: content.ReadingTime(post.Body, wpm),
	}
	for _, b := range postBlocks(post) {
		stats.Blocks++
		switch {
		case b.Type.IsHeading():
			stats.Headings++
		case b.Type == block.TypeParagraph:
			stats.Paragraphs++
		case b.Type == block.TypeList, b.Type == block.TypeOrderedList:
			stats.Lists++
		case b.Type == block.TypeImage:
			stats.Images++
		}
	}

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("출력 포맷팅 실패: %w", err)
		}
		return writeOutput(cmd, "", string(data))
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "블록\t%d\n", stats.Blocks)
	fmt.Fprintf(w, "제목\t%d\n", stats.Headings)
	fmt.Fprintf(w, "문단\t%d\n", stats.Paragraphs)
	fmt.Fprintf(w, "목록\t%d\n", stats.Lists)
	fmt.Fprintf(w, "이미지\t%d\n", stats.Images)
	fmt.Fprintf(w, "단어\t%d\n", stats.Words)
	fmt.Fprintf(w, "읽기 시간\t%d분\n", stats.ReadingMinutes)
	return w.Flush()
}
