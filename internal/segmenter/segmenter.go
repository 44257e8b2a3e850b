// Package segmenter 把规范化的简历文本按章节标题切分为固定的规范类别。
// 识别不出任何标题时不报错：全文归入 other，其余类别标记为缺失。
package segmenter

import (
	"strings"

	"ats-analyzer-go/internal/constants"
	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/types"
)

// Segmenter 章节切分器
type Segmenter struct {
	dict *dictionary.Dictionary
}

// New 创建章节切分器
func New(dict *dictionary.Dictionary) *Segmenter {
	return &Segmenter{dict: dict}
}

// Segment 逐行扫描文本：
// 命中标题词表的行开启一个新章节，之后的行都归属该章节直到下一个标题；
// 第一个标题之前的行归入 summary（简历头部通常是姓名/概述）；
// 同一类别出现多次时内容追加；完全没有标题时全文归入 other。
// 永不失败，总是返回包含全部规范类别的映射。
func (s *Segmenter) Segment(text string) map[types.SectionCategory]*types.Section {
	sections := make(map[types.SectionCategory]*types.Section, len(types.CanonicalSections))
	for _, category := range types.CanonicalSections {
		sections[category] = &types.Section{}
	}

	lines := strings.Split(text, "\n")

	// 状态机：当前类别 + 各类别的内容累加器
	var (
		current     types.SectionCategory
		sawHeading  bool
		accumulator = make(map[types.SectionCategory][]string)
	)

	for _, line := range lines {
		category, rest, ok := s.matchHeading(line)
		if ok {
			current = category
			sawHeading = true
			if sections[category].Title == "" {
				sections[category].Title = strings.TrimSpace(line)
			}
			// 标题行冒号后的内容算作章节的第一行
			if rest != "" {
				accumulator[category] = append(accumulator[category], rest)
			}
			continue
		}

		if !sawHeading {
			// 第一个标题之前的隐式头部区域
			accumulator[types.SectionSummary] = append(accumulator[types.SectionSummary], line)
			continue
		}
		accumulator[current] = append(accumulator[current], line)
	}

	if !sawHeading {
		// 无法切分的文档：全文归入 other，其余类别缺失
		for _, category := range types.CanonicalSections {
			accumulator[category] = nil
		}
		if strings.TrimSpace(text) != "" {
			accumulator[types.SectionOther] = []string{text}
		}
	}

	for category, lines := range accumulator {
		raw := strings.TrimSpace(strings.Join(lines, "\n"))
		sections[category].RawText = raw
		sections[category].Present = len(raw) > constants.MinSectionContentLen
	}

	return sections
}

// matchHeading 判断一行是否是章节标题
// 匹配规则：去掉首尾空白、项目符号和尾部装饰后，行首与词表别名逐词相等，
// 且别名之后只允许紧跟冒号（冒号后的剩余文本作为章节首行内容返回）。
// 一行命中多个别名时取最长的（词表已按长度降序排列）。
func (s *Segmenter) matchHeading(line string) (types.SectionCategory, string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "- ")
	if trimmed == "" {
		return "", "", false
	}
	lower := strings.ToLower(trimmed)

	for _, entry := range s.dict.Headings() {
		if !strings.HasPrefix(lower, entry.Alias) {
			continue
		}
		rest := trimmed[len(entry.Alias):]
		restTrimmed := strings.TrimSpace(rest)
		switch {
		case restTrimmed == "":
			// 别名独占一行
			return entry.Category, "", true
		case strings.HasPrefix(restTrimmed, ":"):
			// "Skills: Python, SQL" 形式
			return entry.Category, strings.TrimSpace(restTrimmed[1:]), true
		}
		// 别名只是更长单词/短语的前缀（如 skills 对 skills assessment），
		// 继续尝试更短的别名前必须确认不是词中截断
	}
	return "", "", false
}
