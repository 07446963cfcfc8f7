package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roboco-io/postblocks/internal/content"
)

var (
	sanitizePolicy string
	sanitizeRaw    bool
	sanitizeOutput string
	sanitizePretty bool
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize <file>",
	Short: "콘텐츠의 위험한 HTML 제거",
	Long: `콘텐츠 블록의 HTML 조각에서 <script> 요소와 on* 이벤트 속성을 제거합니다.

정책:
  basic   스크립트와 이벤트 속성만 제거 (기본: 설정의 sanitize.policy)
  ugc     사용자 작성 콘텐츠 허용 목록 적용
  strict  모든 태그 제거

--raw를 지정하면 입력 문자열 전체에 기본 제거만 적용합니다.

예시:
  postblocks sanitize post.json
  postblocks sanitize post.md --policy strict`,
	Args: cobra.ExactArgs(1),
	RunE: runSanitize,
}

func init() {
	sanitizeCmd.Flags().StringVar(&sanitizePolicy, "policy", "", "정책 (basic, ugc, strict)")
	sanitizeCmd.Flags().BoolVar(&sanitizeRaw, "raw", false, "블록 파싱 없이 문자열 그대로 처리")
	sanitizeCmd.Flags().BoolVar(&sanitizePretty, "pretty", true, "JSON 들여쓰기 적용")
	sanitizeCmd.Flags().StringVarP(&sanitizeOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")

	rootCmd.AddCommand(sanitizeCmd)
}

func runSanitize(cmd *cobra.Command, args []string) error {
	post, err := readPost(cmd, args[0])
	if err != nil {
		return err
	}

	if sanitizeRaw {
		return writeOutput(cmd, sanitizeOutput, content.SanitizeContent(post.Body))
	}

	name := sanitizePolicy
	if name == "" {
		name = cfg.Sanitize.Policy
	}
	policy, err := content.ParsePolicy(name)
	if err != nil {
		return err
	}

	blocks := postBlocks(post)
	cleaned := content.SanitizeBlocks(blocks, policy)
	if dropped := len(blocks) - len(cleaned); dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("디코딩할 수 없는 블록 제외")
	}
	logger.Debug().Str("policy", string(policy)).Int("blocks", len(cleaned)).Msg("정리 완료")

	output, err := marshalBlocks(cleaned, sanitizePretty)
	if err != nil {
		return fmt.Errorf("출력 포맷팅 실패: %w", err)
	}
	return writeOutput(cmd, sanitizeOutput, output)
}
