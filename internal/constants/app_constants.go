package constants

const (
	// 综合ATS评分的权重，四项之和为1
	SectionWeight       = 0.30 // 章节完整度
	SkillDensityWeight  = 0.25 // 技能关键词密度
	ActionVerbWeight    = 0.20 // 行为动词使用
	CompatibilityWeight = 0.25 // ATS兼容性

	// JD匹配分的权重
	TfidfWeight   = 0.60 // TF-IDF余弦相似度
	OverlapWeight = 0.40 // 技能重合度

	// 章节完整度内部权重（按重要程度）
	CriticalSectionWeight  = 10
	ImportantSectionWeight = 5
	OptionalSectionWeight  = 2

	// ATS分数解释档位（单调、覆盖[0,100]）
	ATSExcellentThreshold = 80.0
	ATSGoodThreshold      = 60.0
	ATSFairThreshold      = 40.0

	// JD匹配分解释档位
	JDExcellentThreshold = 75.0
	JDGoodThreshold      = 60.0
	JDFairThreshold      = 40.0

	// 章节内容超过该字符数才算"存在"
	MinSectionContentLen = 10

	// 建议中最多列出的JD缺失技能数
	MaxMissingSkillsListed = 5

	// 低于该重合度(%)触发"定制简历"建议
	LowOverlapThreshold = 40.0

	// 上传限制
	DefaultMaxUploadMB = 10
	// 提取出的简历文本少于该字符数视为空简历，拒绝请求
	DefaultMinResumeChars = 50

	// TF-IDF词表上限（取语料中词频最高的前N个词）
	MaxTfidfFeatures = 500
)
