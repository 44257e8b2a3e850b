// Package analyzer 对切分后的简历做规则化质量评估：
// 章节质量、行为动词使用、ATS格式兼容性。
// 所有评估都是确定性的启发式规则，不依赖外部服务。
package analyzer

import (
	"regexp"
	"strings"

	"ats-analyzer-go/internal/types"
)

// 技能章节里用来数条目的分隔符（逗号、换行、连字符项目符号）
var skillItemRe = regexp.MustCompile(`[,\n\-]`)

// sectionImportance 各规范类别的重要程度
var sectionImportance = map[types.SectionCategory]types.SectionImportance{
	types.SectionSkills:     types.ImportanceCritical,
	types.SectionExperience: types.ImportanceCritical,
	types.SectionEducation:  types.ImportanceCritical,
	types.SectionSummary:    types.ImportanceImportant,
	types.SectionOther:      types.ImportanceOptional,
}

// missingObservations 缺失章节的说明文案
var missingObservations = map[types.SectionCategory]string{
	types.SectionSummary:    "No summary section detected",
	types.SectionSkills:     "No skills section detected",
	types.SectionExperience: "No experience section detected",
	types.SectionEducation:  "No education section detected",
	types.SectionOther:      "No additional sections detected",
}

// AnalyzeSections 就地补全每个章节的质量评估字段
// 缺失章节得0分；存在的章节按类别各自的启发式打分并给出说明
func AnalyzeSections(sections map[types.SectionCategory]*types.Section) {
	for category, section := range sections {
		section.Importance = sectionImportance[category]

		if !section.Present {
			section.Score = 0
			section.WordCount = 0
			section.Observation = missingObservations[category]
			continue
		}

		section.WordCount = len(strings.Fields(section.RawText))
		section.Score, section.Observation = scoreSection(category, section)
	}
}

// scoreSection 按类别的启发式规则给存在的章节打分
func scoreSection(category types.SectionCategory, section *types.Section) (int, string) {
	switch category {
	case types.SectionSkills:
		// 技能章节看条目数而不是词数
		itemCount := len(skillItemRe.FindAllString(section.RawText, -1)) + 1
		switch {
		case itemCount >= 10:
			return 90, "Strong technical skills listed"
		case itemCount >= 5:
			return 70, "Good skills coverage"
		default:
			return 50, "Limited skills listed"
		}

	case types.SectionExperience:
		// 经历章节看描述的详细程度
		switch {
		case section.WordCount >= 100:
			return 90, "Well-detailed experience"
		case section.WordCount >= 50:
			return 70, "Adequate experience details"
		default:
			return 50, "Brief experience description"
		}

	case types.SectionEducation:
		if section.WordCount >= 20 {
			return 85, "Complete education details"
		}
		return 60, "Basic education info"

	case types.SectionSummary:
		if section.WordCount >= 20 {
			return 70, "Clear professional summary"
		}
		return 50, "Brief summary statement"

	default:
		if section.WordCount >= 50 {
			return 85, "Substantial supporting content"
		}
		if section.WordCount >= 20 {
			return 70, "Section present"
		}
		return 50, "Section present"
	}
}
