package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/block"
	"github.com/roboco-io/postblocks/internal/ingest"
	"github.com/roboco-io/postblocks/internal/parser"
)

// readPost loads the post named by arg. "-" reads standard input, which is
// converted according to --input-type.
func readPost(cmd *cobra.Command, arg string) (*ingest.Post, error) {
	var (
		post *ingest.Post
		err  error
	)

	if arg == "-" {
		data, rerr := io.ReadAll(cmd.InOrStdin())
		if rerr != nil {
			return nil, fmt.Errorf("표준 입력 읽기 실패: %w", rerr)
		}
		post, err = ingest.ReadPost(cmd.Context(), "stdin."+strings.TrimPrefix(inputType, "."), data)
	} else {
		if _, serr := os.Stat(arg); os.IsNotExist(serr) {
			return nil, fmt.Errorf("파일을 찾을 수 없습니다: %s", arg)
		}
		post, err = ingest.LoadPost(cmd.Context(), arg)
	}
	if err != nil {
		return nil, fmt.Errorf("입력 읽기 실패: %w", err)
	}

	logger.Debug().
		Str("input", arg).
		Str("converter", post.Converter).
		Int("bytes", len(post.Body)).
		Msg("입력 로드 완료")
	return post, nil
}

// parsePost parses a loaded post, logging parser warnings. Stored block
// arrays are rendered back to markdown and re-read so the plain text matches
// what a markdown source would give.
func parsePost(post *ingest.Post) block.ParsedContent {
	if parser.IsBlockArray(post.Body) {
		blocks := parser.ParseStoredContent(post.Body)
		parsed := parser.ParseMarkdownContent(parser.ContentToMarkdown(blocks))
		parsed.Blocks = blocks
		return parsed
	}

	parsed := parser.ParseMarkdownContent(post.Body)
	for _, w := range parsed.Warnings {
		logger.Warn().Str("input", post.Name).Int("line", w.Line).Msg(w.Message)
	}
	return parsed
}

func postBlocks(post *ingest.Post) []block.Block {
	return parsePost(post).Blocks
}

// writeOutput prints data to stdout, or to path when set.
func writeOutput(cmd *cobra.Command, path, data string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	logger.Info().Str("output", path).Msg("저장 완료")
	return nil
}
