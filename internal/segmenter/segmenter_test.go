package segmenter

import (
	"testing"

	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSegmenter(t *testing.T) *Segmenter {
	t.Helper()
	dict, err := dictionary.Default()
	require.NoError(t, err, "加载内置词典失败")
	return New(dict)
}

const sampleResume = `John Doe
john@example.com | 555-0100

Skills:
Python, SQL, Docker, Kubernetes, AWS

Experience
Software Engineer at Acme Corp
- Built data pipelines processing millions of records
- Led a team of four engineers

Education
B.S. in Computer Science, State University, 2019

Certifications
AWS Certified Solutions Architect`

// TestSegmentBasicResume 验证典型简历的章节切分
func TestSegmentBasicResume(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment(sampleResume)

	// 结果总是包含全部规范类别，不多不少
	require.Len(t, sections, len(types.CanonicalSections))
	for _, category := range types.CanonicalSections {
		require.NotNil(t, sections[category], "类别 %s 缺失", category)
	}

	assert.True(t, sections[types.SectionSkills].Present)
	assert.Contains(t, sections[types.SectionSkills].RawText, "Python, SQL")

	assert.True(t, sections[types.SectionExperience].Present)
	assert.Contains(t, sections[types.SectionExperience].RawText, "Acme Corp")

	assert.True(t, sections[types.SectionEducation].Present)
	assert.Contains(t, sections[types.SectionEducation].RawText, "Computer Science")

	// Certifications 折叠进 other
	assert.True(t, sections[types.SectionOther].Present)
	assert.Contains(t, sections[types.SectionOther].RawText, "Solutions Architect")

	// 第一个标题之前的头部区域归入 summary
	assert.Contains(t, sections[types.SectionSummary].RawText, "John Doe")
}

// TestSegmentHeadingWithInlineContent 验证"标题: 内容"同行形式
func TestSegmentHeadingWithInlineContent(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment("Skills: Python, Go, Rust and more\nExperience:\nDid things for years")

	assert.Contains(t, sections[types.SectionSkills].RawText, "Python, Go, Rust")
	assert.NotContains(t, sections[types.SectionSkills].RawText, "Skills")
	assert.Contains(t, sections[types.SectionExperience].RawText, "Did things")
}

// TestSegmentLongestMatch 验证多个别名命中时取最长的
func TestSegmentLongestMatch(t *testing.T) {
	s := newTestSegmenter(t)

	// "internship experience" 同时是 experience 类别的别名；
	// 不应被更短的 "internship" 或词表中其他前缀截断
	sections := s.Segment("Internship Experience\nSummer intern at BigCo doing backend work")

	assert.Contains(t, sections[types.SectionExperience].RawText, "BigCo")
}

// TestSegmentProseLineIsNotHeading 验证正文中包含类别词的行不被误判为标题
func TestSegmentProseLineIsNotHeading(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment("Skills\nPython\nexperience with databases is a plus\nSQL and more here")

	// "experience with databases..." 是正文而不是标题
	assert.False(t, sections[types.SectionExperience].Present)
	assert.Contains(t, sections[types.SectionSkills].RawText, "experience with databases")
}

// TestSegmentDuplicateHeading 验证同一类别出现两次时内容追加
func TestSegmentDuplicateHeading(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment("Experience\nFirst job details here\nEducation\nSome school\nWork Experience\nSecond job details here")

	assert.Contains(t, sections[types.SectionExperience].RawText, "First job")
	assert.Contains(t, sections[types.SectionExperience].RawText, "Second job")
}

// TestSegmentNoHeadings 验证无法切分的文档：全文归入other，其余类别缺失
func TestSegmentNoHeadings(t *testing.T) {
	s := newTestSegmenter(t)

	text := "just a wall of text without any recognizable resume structure at all"
	sections := s.Segment(text)

	assert.False(t, sections[types.SectionSummary].Present)
	assert.False(t, sections[types.SectionSkills].Present)
	assert.False(t, sections[types.SectionExperience].Present)
	assert.False(t, sections[types.SectionEducation].Present)
	assert.True(t, sections[types.SectionOther].Present)
	assert.Equal(t, text, sections[types.SectionOther].RawText)
}

// TestSegmentEmptyText 验证空文本：所有类别缺失
func TestSegmentEmptyText(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment("")

	require.Len(t, sections, len(types.CanonicalSections))
	for category, section := range sections {
		assert.False(t, section.Present, "空文本中类别 %s 不应存在", category)
		assert.Empty(t, section.RawText)
	}
}

// TestSegmentShortSectionNotPresent 验证内容过短的章节视为缺失
func TestSegmentShortSectionNotPresent(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment("Skills:\nGo\nEducation\nB.S. in Computer Science from State University")

	// "Go" 不超过10个字符，章节视为缺失
	assert.False(t, sections[types.SectionSkills].Present)
	assert.True(t, sections[types.SectionEducation].Present)
}

// TestSegmentObjectiveFoldsIntoSummary 验证扩展标题折叠到规范类别
func TestSegmentObjectiveFoldsIntoSummary(t *testing.T) {
	s := newTestSegmenter(t)

	sections := s.Segment("Career Objective\nSeeking a backend engineering role with growth opportunities")

	assert.True(t, sections[types.SectionSummary].Present)
	assert.Contains(t, sections[types.SectionSummary].RawText, "backend engineering")
}
