package extractor

import (
	"regexp"
	"strings"
)

var (
	// 各类项目符号统一为 "- "
	bulletRe = regexp.MustCompile(`[•●▪‣·∙◦◆■]\s*`)
	// 纯页码行（"3" / "Page 3" / "- 3 -"）
	pageNumberRe = regexp.MustCompile(`(?i)^\s*(?:-\s*)?(?:page\s+)?\d{1,3}(?:\s*-)?\s*$`)
	// 行内连续空白
	innerSpaceRe = regexp.MustCompile(`[ \t]+`)
	// 连续空行
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// NormalizeLayout 规范化提取出的文本：
// 统一换行符、将项目符号归一为单一标记、去掉纯页码行、
// 压缩行内空白。刻意保留换行结构，章节检测依赖行边界。
func NormalizeLayout(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = bulletRe.ReplaceAllString(text, "- ")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if pageNumberRe.MatchString(line) {
			continue
		}
		line = innerSpaceRe.ReplaceAllString(line, " ")
		out = append(out, strings.TrimRight(line, " "))
	}

	normalized := strings.Join(out, "\n")
	normalized = blankLinesRe.ReplaceAllString(normalized, "\n\n")
	return strings.TrimSpace(normalized)
}
