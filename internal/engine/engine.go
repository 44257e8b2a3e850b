// Package engine 串联完整的简历分析流水线并聚合最终分数：
// 提取 → 切分 → 章节评估 → 技能/动词/兼容性 → （可选）JD匹配 → 建议与摘要。
// 整个流水线无状态，文档只在请求生命周期内存在。
package engine

import (
	"context"
	"strings"
	"time"

	"ats-analyzer-go/internal/analyzer"
	"ats-analyzer-go/internal/config"
	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/logger"
	"ats-analyzer-go/internal/matcher"
	"ats-analyzer-go/internal/segmenter"
	"ats-analyzer-go/internal/similarity"
	"ats-analyzer-go/internal/types"
)

// DocumentExtractor 文档到纯文本的提取器
type DocumentExtractor interface {
	Extract(ctx context.Context, doc *types.Document) (string, error)
}

// Engine 分析引擎
type Engine struct {
	extractor DocumentExtractor
	dict      *dictionary.Dictionary
	segmenter *segmenter.Segmenter
	matcher   *matcher.Matcher
	scorer    *similarity.Scorer

	minResumeChars int
}

// NewEngine 创建分析引擎
func NewEngine(extractor DocumentExtractor, dict *dictionary.Dictionary, cfg config.AnalyzerConfig) *Engine {
	return &Engine{
		extractor:      extractor,
		dict:           dict,
		segmenter:      segmenter.New(dict),
		matcher:        matcher.New(dict),
		scorer:         similarity.New(dict),
		minResumeChars: cfg.MinResumeChars,
	}
}

// Analyze 执行一次完整分析
// resume 必填；jd 为 nil 时跳过JD匹配，结果中的JD字段整体缺省。
// 提取失败或简历文本过短时返回错误，除此之外流水线不会失败：
// 识别不出章节、技能为零这类情况产出低分结果而不是错误。
func (e *Engine) Analyze(ctx context.Context, resume, jd *types.Document) (*types.ScoreResult, error) {
	start := time.Now()

	resumeText, err := e.extractor.Extract(ctx, resume)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(resumeText)) < e.minResumeChars {
		return nil, ErrResumeTooShort
	}

	// 兼容性检查必须在任何预处理之前做：
	// 多栏短行、全大写这类排版信号在预处理后就消失了
	compat := analyzer.CheckCompatibility(resumeText)

	sections := e.segmenter.Segment(resumeText)
	analyzer.AnalyzeSections(sections)

	// 技能与动词匹配都在小写、缩写展开后的文本上进行
	normalizedResume := e.dict.NormalizeSkillSynonyms(resumeText)
	skills := e.matcher.Match(normalizedResume)
	verbs := analyzer.DetectActionVerbs(e.dict, normalizedResume)

	densityScore := SkillDensityScore(skills.SkillCount)
	atsScore := ATSScore(sections, densityScore, verbs, compat)

	var (
		jdMatchScore *float64
		jdAnalysis   *types.JDAnalysis
	)
	if jd != nil {
		jdText, err := e.extractor.Extract(ctx, jd)
		if err != nil {
			return nil, err
		}
		normalizedJD := e.dict.NormalizeSkillSynonyms(jdText)

		jdAnalysis = e.matcher.Gap(normalizedResume, normalizedJD)
		jdAnalysis.TfidfSimilarity = e.scorer.Score(resumeText, jdText)

		match := JDMatchScore(jdAnalysis.TfidfSimilarity, jdAnalysis.OverlapPercentage)
		jdMatchScore = &match
	}

	recommendations := Recommendations(atsScore, sections, skills, verbs, compat, jdAnalysis)
	strengths := Strengths(sections, skills, verbs, compat)

	result := &types.ScoreResult{
		ATSScore:         atsScore,
		JDMatchScore:     jdMatchScore,
		Sections:         sections,
		Skills:           skills,
		ActionVerbs:      verbs,
		ATSCompatibility: compat,
		JDAnalysis:       jdAnalysis,
		Recommendations:  recommendations,
		Strengths:        strengths,
		Summary:          Summary(atsScore, jdMatchScore, recommendations, strengths),
		Interpretations:  Interpret(atsScore, jdMatchScore),
	}

	logger.Info().
		Float64("ats_score", atsScore).
		Int("skill_count", skills.SkillCount).
		Int("verb_count", verbs.VerbCount).
		Bool("with_jd", jd != nil).
		Dur("elapsed", time.Since(start)).
		Msg("简历分析完成")

	return result, nil
}
