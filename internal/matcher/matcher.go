// Package matcher 在文本中查找技能表条目，并对简历与职位描述做技能差距分析。
// 输入文本应已经过 dictionary.NormalizeSkillSynonyms 处理（小写、缩写展开）。
package matcher

import (
	"math"
	"sort"

	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/types"
)

// Matcher 技能匹配器
type Matcher struct {
	dict *dictionary.Dictionary
}

// New 创建技能匹配器
func New(dict *dictionary.Dictionary) *Matcher {
	return &Matcher{dict: dict}
}

// Match 在文本中查找全部技能表条目
// 整词匹配，结果去重并保持技能表顺序；空技能表得到空集合而不是错误
func (m *Matcher) Match(normalizedText string) types.SkillSet {
	found := make([]string, 0, 16)
	for _, skill := range m.dict.Skills() {
		if m.dict.SkillPattern(skill).MatchString(normalizedText) {
			found = append(found, skill)
		}
	}
	return types.SkillSet{
		FoundSkills: found,
		SkillCount:  len(found),
	}
}

// Gap 简历与职位描述的技能差距分析
// matching = 两边都出现的技能（技能表顺序）；
// missing = JD有而简历没有的技能，按技能在JD文本中首次出现的位置排序，
// 同一输入多次运行结果完全一致。
func (m *Matcher) Gap(resumeText, jdText string) *types.JDAnalysis {
	type jdHit struct {
		skill string
		pos   int
	}

	var (
		matching []string
		jdHits   []jdHit
	)
	jdSkillCount := 0

	for _, skill := range m.dict.Skills() {
		pattern := m.dict.SkillPattern(skill)
		loc := pattern.FindStringIndex(jdText)
		inResume := pattern.MatchString(resumeText)

		if loc != nil {
			jdSkillCount++
			if inResume {
				matching = append(matching, skill)
			} else {
				jdHits = append(jdHits, jdHit{skill: skill, pos: loc[0]})
			}
		}
	}

	// 缺失技能按JD中首次出现的位置排序
	sort.SliceStable(jdHits, func(i, j int) bool {
		return jdHits[i].pos < jdHits[j].pos
	})
	missing := make([]string, 0, len(jdHits))
	for _, hit := range jdHits {
		missing = append(missing, hit.skill)
	}
	if matching == nil {
		matching = []string{}
	}

	overlap := 0.0
	if jdSkillCount > 0 {
		overlap = round2(float64(len(matching)) / float64(jdSkillCount) * 100)
	}

	return &types.JDAnalysis{
		MatchingSkills:    matching,
		MissingSkills:     missing,
		OverlapPercentage: overlap,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
