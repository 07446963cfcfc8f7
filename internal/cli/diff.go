package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/content"
)

var diffJSON bool

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "두 콘텐츠의 블록 구조 비교",
	Long: `두 버전의 콘텐츠를 블록 단위로 비교합니다.

Markdown과 저장된 블록 배열을 섞어서 비교할 수 있습니다.

예시:
  postblocks diff before.json after.md
  postblocks diff before.md after.md --json`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "JSON으로 출력")

	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldPost, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}
	newPost, err := readPost(cmd, args[1])
	if err != nil {
		return err
	}

	result := content.CompareContent(oldPost.Body, newPost.Body)

	out := cmd.OutOrStdout()
	if diffJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("출력 포맷팅 실패: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if !result.Changed {
		fmt.Fprintf(out, "변경 없음 (%s)\n", result.Summary)
		return nil
	}
	fmt.Fprintf(out, "변경됨 (%s)\n", result.Summary)
	for _, c := range result.Changes {
		switch c.Kind {
		case content.ChangeAdded:
			fmt.Fprintf(out, "  + [%d] %s\n", c.Index, c.NewType)
		case content.ChangeRemoved:
			fmt.Fprintf(out, "  - [%d] %s\n", c.Index, c.OldType)
		default:
			fmt.Fprintf(out, "  ~ [%d] %s -> %s\n", c.Index, c.OldType, c.NewType)
		}
	}
	return nil
}
