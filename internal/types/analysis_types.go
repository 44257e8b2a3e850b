package types

// FileType 上传文件的声明类型
type FileType string

const (
	// FileTypePDF PDF文档
	FileTypePDF FileType = "pdf"
	// FileTypeDOCX Word文档(OOXML)
	FileTypeDOCX FileType = "docx"
	// FileTypeDOC 旧版Word文档，按DOCX处理
	FileTypeDOC FileType = "doc"
	// FileTypeTXT 纯文本
	FileTypeTXT FileType = "txt"
)

// DocumentRole 文档在分析中的角色
type DocumentRole string

const (
	// RoleResume 简历
	RoleResume DocumentRole = "resume"
	// RoleJobDescription 职位描述
	RoleJobDescription DocumentRole = "job_description"
)

// Document 单次请求内的临时文档，分析结束即丢弃，不做任何持久化
type Document struct {
	Data     []byte       // 原始字节
	Type     FileType     // 声明的文件类型
	Role     DocumentRole // resume 或 job_description
	Filename string       // 原始文件名，仅用于日志
}

// SectionCategory 简历章节的规范类别
type SectionCategory string

const (
	// SectionSummary 概述/求职目标章节
	SectionSummary SectionCategory = "summary"
	// SectionSkills 技能章节
	SectionSkills SectionCategory = "skills"
	// SectionExperience 工作/实习经历章节
	SectionExperience SectionCategory = "experience"
	// SectionEducation 教育经历章节
	SectionEducation SectionCategory = "education"
	// SectionOther 其他内容（项目、证书、获奖、联系方式等折叠到此）
	SectionOther SectionCategory = "other"
)

// CanonicalSections 规范类别的固定顺序，结果中每个类别恰好出现一次
var CanonicalSections = []SectionCategory{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionOther,
}

// SectionImportance 章节重要程度，决定完整度打分时的权重
type SectionImportance string

const (
	ImportanceCritical  SectionImportance = "critical"
	ImportanceImportant SectionImportance = "important"
	ImportanceOptional  SectionImportance = "optional"
)

// Section 单个章节的检测与质量评估结果
// RawText 仅在流水线内部流转，不进入JSON响应
type Section struct {
	Present     bool              `json:"present"`
	Score       int               `json:"score"`
	Observation string            `json:"observation"`
	Importance  SectionImportance `json:"importance"`
	WordCount   int               `json:"word_count"`
	Title       string            `json:"-"` // 文档中实际出现的标题
	RawText     string            `json:"-"`
}

// SkillSet 从文本中识别出的技能集合，去重且保留技能表的规范写法
type SkillSet struct {
	FoundSkills []string `json:"found_skills"`
	SkillCount  int      `json:"skill_count"`
}

// ActionVerbAnalysis 行为动词使用情况
type ActionVerbAnalysis struct {
	FoundVerbs []string `json:"found_verbs"`
	VerbCount  int      `json:"verb_count"`
	Score      int      `json:"-"`
	Observation string  `json:"-"`
}

// CompatibilityAnalysis ATS兼容性检查结果（表格符号、多栏、全大写、篇幅）
type CompatibilityAnalysis struct {
	IsCompatible bool     `json:"is_compatible"`
	Issues       []string `json:"issues"`
	Score        int      `json:"-"`
}

// JDAnalysis 简历与职位描述的技能差距分析
// MissingSkills 按技能在JD中首次出现的顺序排列，同一输入多次运行结果一致
type JDAnalysis struct {
	TfidfSimilarity   float64  `json:"tfidf_similarity"`
	MatchingSkills    []string `json:"matching_skills"`
	MissingSkills     []string `json:"missing_skills"`
	OverlapPercentage float64  `json:"overlap_percentage"`
}

// Priority 建议的优先级，排序时 high > medium > low
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank 优先级到排序序号的映射，未知优先级排在最后
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Recommendation 单条改进建议
type Recommendation struct {
	Priority Priority `json:"priority"`
	Category string   `json:"category"`
	Message  string   `json:"message"`
}

// Interpretations 分数的可读解释
// JD相关字段仅在提供职位描述时出现
type Interpretations struct {
	ATSLevel          string `json:"ats_level"`
	ATSInterpretation string `json:"ats_interpretation"`
	JDLevel           string `json:"jd_level,omitempty"`
	JDInterpretation  string `json:"jd_interpretation,omitempty"`
}

// ScoreResult 分析引擎的唯一输出，跨越到展示层的边界对象
// JDMatchScore 与 JDAnalysis 仅在提供并成功解析职位描述时出现；
// 未提供时字段整体缺省，而不是置零
type ScoreResult struct {
	ATSScore         float64                      `json:"ats_score"`
	JDMatchScore     *float64                     `json:"jd_match_score,omitempty"`
	Sections         map[SectionCategory]*Section `json:"sections"`
	Skills           SkillSet                     `json:"skills"`
	ActionVerbs      ActionVerbAnalysis           `json:"action_verbs"`
	ATSCompatibility CompatibilityAnalysis        `json:"ats_compatibility"`
	JDAnalysis       *JDAnalysis                  `json:"jd_analysis,omitempty"`
	Recommendations  []Recommendation             `json:"recommendations"`
	Strengths        []string                     `json:"strengths"`
	Summary          string                       `json:"summary"`
	Interpretations  Interpretations              `json:"interpretations"`
}
