package analyzer

import (
	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/types"
)

// DetectActionVerbs 在文本中统计行为动词的使用
// 整词匹配，结果去重且保持动词表顺序；档位随动词数单调不减
func DetectActionVerbs(dict *dictionary.Dictionary, normalizedText string) types.ActionVerbAnalysis {
	found := make([]string, 0, 8)
	for _, verb := range dict.ActionVerbs() {
		if dict.VerbPattern(verb).MatchString(normalizedText) {
			found = append(found, verb)
		}
	}

	result := types.ActionVerbAnalysis{
		FoundVerbs: found,
		VerbCount:  len(found),
	}

	switch {
	case result.VerbCount >= 10:
		result.Score = 95
		result.Observation = "Excellent use of action verbs"
	case result.VerbCount >= 6:
		result.Score = 80
		result.Observation = "Good action verb usage"
	case result.VerbCount >= 3:
		result.Score = 60
		result.Observation = "Moderate action verb usage"
	default:
		result.Score = 30
		result.Observation = "Limited action verbs"
	}
	return result
}
