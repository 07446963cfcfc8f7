package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/content"
	"github.com/roboco-io/postblocks/internal/parser"
	"github.com/roboco-io/postblocks/internal/store"
)

// errInvalid makes the process exit non-zero after the result is printed.
var errInvalid = errors.New("콘텐츠가 유효하지 않습니다")

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "저장 전 콘텐츠 검증",
	Long: `글을 저장할 수 있는지 검증합니다.

Markdown 입력은 빈 내용과 블록이 없는 경우를 오류로,
지원하지 않는 문법(코드 블록, 표, 중첩 목록 등)을 경고로 보고합니다.
저장된 블록 배열은 스키마와 블록별 내용을 검사합니다.

유효하지 않으면 종료 코드 1을 반환합니다.

예시:
  postblocks validate post.md
  postblocks validate post.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "JSON으로 출력")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	var result content.ValidationResult
	if parser.IsBlockArray(post.Body) {
		result = content.ValidationResult{Valid: true, Errors: []string{}}
		if err := store.ValidateBlocksJSON(post.Body); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	} else {
		result = content.ValidateMarkdownSyntax(post.Body)
	}

	out := cmd.OutOrStdout()
	if validateJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("출력 포맷팅 실패: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		if result.Valid {
			fmt.Fprintln(out, "✓ 유효")
		} else {
			fmt.Fprintln(out, "✗ 유효하지 않음")
		}
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  오류: %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  경고: %s\n", w)
		}
	}

	if !result.Valid {
		return errInvalid
	}
	return nil
}
