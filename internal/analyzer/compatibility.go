package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"ats-analyzer-go/internal/types"
)

// 制表/边框字形，出现说明原文档用了表格或图形排版
var boxGlyphRe = regexp.MustCompile(`[│┤├┼┬┴╪═║╔╗╚╝]`)

// CheckCompatibility 对原始提取文本做ATS格式体检
// 从100分起扣：表格字形−20、多栏短行−15、全大写−10、过短−20、过长−10，
// 下限0分；70分及以上视为兼容。输入是规范化前的原始文本，
// 多栏、全大写这类排版问题在预处理后就看不到了。
func CheckCompatibility(rawText string) types.CompatibilityAnalysis {
	issues := make([]string, 0, 4)
	score := 100

	if len(boxGlyphRe.FindAllString(rawText, -1)) > 10 {
		issues = append(issues, "Contains table formatting that may not parse well")
		score -= 20
	}

	// 大量短行通常意味着多栏布局被逐栏读出
	lines := strings.Split(rawText, "\n")
	shortLines := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 && len(trimmed) < 20 {
			shortLines++
		}
	}
	if float64(shortLines) > float64(len(lines))*0.3 {
		issues = append(issues, "Multiple short lines detected - avoid multi-column layouts")
		score -= 15
	}

	if isAllUpper(rawText) {
		issues = append(issues, "Excessive capitalization - use mixed case")
		score -= 10
	}

	wordCount := len(strings.Fields(rawText))
	if wordCount < 100 {
		issues = append(issues, "Resume appears too short")
		score -= 20
	} else if wordCount > 1500 {
		issues = append(issues, "Resume may be too long - consider condensing")
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return types.CompatibilityAnalysis{
		Score:        score,
		Issues:       issues,
		IsCompatible: score >= 70,
	}
}

// isAllUpper 文本中至少有一个字母且全部字母都是大写
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsLower(r) {
			return false
		}
	}
	return hasLetter
}
