package engine

import (
	"math"

	"ats-analyzer-go/internal/constants"
	"ats-analyzer-go/internal/types"
)

// sectionWeights 章节完整度内的类别权重
var sectionWeights = map[types.SectionImportance]int{
	types.ImportanceCritical:  constants.CriticalSectionWeight,
	types.ImportanceImportant: constants.ImportantSectionWeight,
	types.ImportanceOptional:  constants.OptionalSectionWeight,
}

// ATSScore 计算综合ATS分数
// 四项加权：章节完整度30% + 技能密度25% + 行为动词20% + 格式兼容性25%，
// 各子项都在[0,100]内，结果也必然在[0,100]内
func ATSScore(
	sections map[types.SectionCategory]*types.Section,
	densityScore int,
	verbs types.ActionVerbAnalysis,
	compat types.CompatibilityAnalysis,
) float64 {
	completeness := sectionCompleteness(sections)

	score := completeness*constants.SectionWeight +
		float64(densityScore)*constants.SkillDensityWeight +
		float64(verbs.Score)*constants.ActionVerbWeight +
		float64(compat.Score)*constants.CompatibilityWeight

	return round2(score)
}

// sectionCompleteness 章节质量分按重要程度加权平均
func sectionCompleteness(sections map[types.SectionCategory]*types.Section) float64 {
	weightedScore := 0
	totalWeight := 0
	for _, category := range types.CanonicalSections {
		section := sections[category]
		weight := sectionWeights[section.Importance]
		weightedScore += section.Score * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return float64(weightedScore) / float64(totalWeight)
}

// SkillDensityScore 技能数到密度分的单调分档
func SkillDensityScore(skillCount int) int {
	switch {
	case skillCount >= 15:
		return 95
	case skillCount >= 10:
		return 80
	case skillCount >= 5:
		return 60
	default:
		return 30
	}
}

// JDMatchScore 计算JD匹配分：TF-IDF相似度60% + 技能重合度40%
func JDMatchScore(tfidfSimilarity, overlapPercentage float64) float64 {
	return round2(tfidfSimilarity*constants.TfidfWeight +
		overlapPercentage*constants.OverlapWeight)
}

// Interpret 生成分数的可读解释
// 档位对[0,100]全覆盖且随分数单调；jdMatchScore为nil时JD相关字段留空
func Interpret(atsScore float64, jdMatchScore *float64) types.Interpretations {
	result := types.Interpretations{}

	switch {
	case atsScore >= constants.ATSExcellentThreshold:
		result.ATSLevel = "excellent"
		result.ATSInterpretation = "Excellent - Your resume is highly ATS-compatible"
	case atsScore >= constants.ATSGoodThreshold:
		result.ATSLevel = "good"
		result.ATSInterpretation = "Good - Your resume should pass most ATS systems"
	case atsScore >= constants.ATSFairThreshold:
		result.ATSLevel = "fair"
		result.ATSInterpretation = "Fair - Consider improvements to increase ATS compatibility"
	default:
		result.ATSLevel = "poor"
		result.ATSInterpretation = "Needs Improvement - Significant changes recommended"
	}

	if jdMatchScore != nil {
		switch {
		case *jdMatchScore >= constants.JDExcellentThreshold:
			result.JDLevel = "excellent"
			result.JDInterpretation = "Strong Match - Your resume aligns well with the job description"
		case *jdMatchScore >= constants.JDGoodThreshold:
			result.JDLevel = "good"
			result.JDInterpretation = "Good Match - Your resume is relevant to the position"
		case *jdMatchScore >= constants.JDFairThreshold:
			result.JDLevel = "fair"
			result.JDInterpretation = "Moderate Match - Consider highlighting relevant skills"
		default:
			result.JDLevel = "poor"
			result.JDInterpretation = "Weak Match - Your resume may not align with this position"
		}
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
