package engine

import (
	"fmt"
	"sort"
	"strings"

	"ats-analyzer-go/internal/constants"
	"ats-analyzer-go/internal/types"
)

// sectionDisplayNames 建议与优势文案中使用的类别名称
var sectionDisplayNames = map[types.SectionCategory]string{
	types.SectionSummary:    "Summary",
	types.SectionSkills:     "Skills",
	types.SectionExperience: "Experience",
	types.SectionEducation:  "Education",
}

// Recommendations 根据各项分析结果生成改进建议
// 规则表驱动，结果按优先级稳定排序（high > medium > low），
// 同一输入多次运行产出完全相同的建议列表
func Recommendations(
	atsScore float64,
	sections map[types.SectionCategory]*types.Section,
	skills types.SkillSet,
	verbs types.ActionVerbAnalysis,
	compat types.CompatibilityAnalysis,
	jdAnalysis *types.JDAnalysis,
) []types.Recommendation {
	recs := make([]types.Recommendation, 0, 8)

	// 缺失章节：other 是兜底类别，缺失不构成建议
	for _, category := range types.CanonicalSections {
		section := sections[category]
		if section.Present || category == types.SectionOther {
			continue
		}
		name := sectionDisplayNames[category]
		switch section.Importance {
		case types.ImportanceCritical:
			recs = append(recs, types.Recommendation{
				Priority: types.PriorityHigh,
				Category: "missing_section",
				Message:  fmt.Sprintf("Add a %s section - this is essential for ATS parsing", name),
			})
		case types.ImportanceImportant:
			recs = append(recs, types.Recommendation{
				Priority: types.PriorityMedium,
				Category: "missing_section",
				Message:  fmt.Sprintf("Consider adding a %s section to strengthen your resume", name),
			})
		}
	}

	// 技能数量
	if skills.SkillCount < 5 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityHigh,
			Category: "skills",
			Message:  "Add more technical skills - aim for at least 8-10 relevant skills",
		})
	} else if skills.SkillCount < 10 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Category: "skills",
			Message:  "Expand your skills section with more relevant technologies",
		})
	}

	// 行为动词
	if verbs.VerbCount < 3 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Category: "action_verbs",
			Message:  "Use stronger action verbs like 'achieved', 'led', 'implemented', 'optimized'",
		})
	} else if verbs.VerbCount < 6 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityLow,
			Category: "action_verbs",
			Message:  "Increase use of action verbs to make your accomplishments more impactful",
		})
	}

	// 格式兼容性：不兼容时把每个问题原样转成建议
	if !compat.IsCompatible {
		for _, issue := range compat.Issues {
			recs = append(recs, types.Recommendation{
				Priority: types.PriorityMedium,
				Category: "ats_compatibility",
				Message:  issue,
			})
		}
	}

	// 存在但质量不高的关键章节
	if s := sections[types.SectionExperience]; s.Present && s.Score < 60 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Category: "section_quality",
			Message:  "Expand your Experience section with more detailed accomplishments and metrics",
		})
	}
	if s := sections[types.SectionSkills]; s.Present && s.Score < 60 {
		recs = append(recs, types.Recommendation{
			Priority: types.PriorityMedium,
			Category: "section_quality",
			Message:  "List more specific skills and technologies in your Skills section",
		})
	}

	// JD相关建议
	if jdAnalysis != nil {
		if len(jdAnalysis.MissingSkills) > 0 {
			top := jdAnalysis.MissingSkills
			if len(top) > constants.MaxMissingSkillsListed {
				top = top[:constants.MaxMissingSkillsListed]
			}
			recs = append(recs, types.Recommendation{
				Priority: types.PriorityHigh,
				Category: "jd_match",
				Message:  "Add these job-relevant skills if you have them: " + strings.Join(top, ", "),
			})
		}
		if jdAnalysis.OverlapPercentage < constants.LowOverlapThreshold {
			recs = append(recs, types.Recommendation{
				Priority: types.PriorityMedium,
				Category: "jd_match",
				Message:  "Your resume has limited overlap with the job description - tailor it to match key requirements",
			})
		}
	}

	// 总分偏低时的通用建议
	if atsScore < constants.ATSGoodThreshold {
		recs = append(recs,
			types.Recommendation{
				Priority: types.PriorityMedium,
				Category: "general",
				Message:  "Use a simple, clean format with clear section headings",
			},
			types.Recommendation{
				Priority: types.PriorityLow,
				Category: "general",
				Message:  "Avoid tables, images, and complex formatting that ATS systems may not parse correctly",
			},
		)
	}

	// 稳定排序保持同优先级内的规则表顺序
	sort.SliceStable(recs, func(i, j int) bool {
		return types.PriorityRank(recs[i].Priority) < types.PriorityRank(recs[j].Priority)
	})
	return recs
}

// Strengths 识别简历的优势项，按固定顺序产出
func Strengths(
	sections map[types.SectionCategory]*types.Section,
	skills types.SkillSet,
	verbs types.ActionVerbAnalysis,
	compat types.CompatibilityAnalysis,
) []string {
	strengths := make([]string, 0, 4)

	for _, category := range types.CanonicalSections {
		section := sections[category]
		if !section.Present || section.Score < 80 {
			continue
		}
		if name, ok := sectionDisplayNames[category]; ok {
			strengths = append(strengths, fmt.Sprintf("Strong %s section", name))
		} else {
			strengths = append(strengths, "Strong supporting content")
		}
	}

	if skills.SkillCount >= 10 {
		strengths = append(strengths,
			fmt.Sprintf("Comprehensive skills coverage (%d skills identified)", skills.SkillCount))
	}
	if verbs.VerbCount >= 8 {
		strengths = append(strengths,
			fmt.Sprintf("Excellent use of action verbs (%d strong verbs)", verbs.VerbCount))
	}
	if compat.Score >= 90 {
		strengths = append(strengths, "Highly ATS-compatible format")
	}

	return strengths
}

// Summary 生成分析结论的一段式摘要
// 依次拼接：整体评价、JD匹配评价（可选）、首要优势（可选）、首要建议（可选）
func Summary(
	atsScore float64,
	jdMatchScore *float64,
	recommendations []types.Recommendation,
	strengths []string,
) string {
	parts := make([]string, 0, 4)

	switch {
	case atsScore >= 75:
		parts = append(parts, "Your resume is well-optimized for ATS systems.")
	case atsScore >= 60:
		parts = append(parts, "Your resume is generally ATS-friendly with room for improvement.")
	default:
		parts = append(parts, "Your resume needs significant improvements for ATS compatibility.")
	}

	if jdMatchScore != nil {
		switch {
		case *jdMatchScore >= 70:
			parts = append(parts, fmt.Sprintf("It shows a strong match (%v%%) with the job description.", *jdMatchScore))
		case *jdMatchScore >= 50:
			parts = append(parts, fmt.Sprintf("It has a moderate match (%v%%) with the job description.", *jdMatchScore))
		default:
			parts = append(parts, fmt.Sprintf("It has limited alignment (%v%%) with the job description.", *jdMatchScore))
		}
	}

	if len(strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Key strength: %s.", strengths[0]))
	}

	for _, rec := range recommendations {
		if rec.Priority == types.PriorityHigh {
			parts = append(parts, fmt.Sprintf("Priority action: %s.", rec.Message))
			break
		}
	}

	return strings.Join(parts, " ")
}
