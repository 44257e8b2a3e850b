package similarity

import (
	"testing"

	"ats-analyzer-go/internal/dictionary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	dict, err := dictionary.Default()
	require.NoError(t, err, "加载内置词典失败")
	return New(dict)
}

// TestScoreIdenticalDocuments 验证完全相同的文本得满分
func TestScoreIdenticalDocuments(t *testing.T) {
	s := newTestScorer(t)

	text := "senior backend engineer building distributed systems with golang and postgresql"
	score := s.Score(text, text)

	assert.InDelta(t, 100.0, score, 0.01)
}

// TestScoreEmptyInput 验证空文本得0分而不是除零
func TestScoreEmptyInput(t *testing.T) {
	s := newTestScorer(t)

	assert.Zero(t, s.Score("", "we need a python developer"))
	assert.Zero(t, s.Score("python developer resume text", ""))
	assert.Zero(t, s.Score("", ""))
}

// TestScoreStopwordsOnly 验证只含停用词/短词的文本视同空文本
func TestScoreStopwordsOnly(t *testing.T) {
	s := newTestScorer(t)

	assert.Zero(t, s.Score("the and of to in a is", "python developer needed here"))
	assert.Zero(t, s.Score("!!! ??? ...", "python developer needed here"))
}

// TestScoreRange 验证得分始终落在[0,100]区间
func TestScoreRange(t *testing.T) {
	s := newTestScorer(t)

	pairs := [][2]string{
		{"python data engineer with airflow pipelines", "looking for python engineer with airflow experience"},
		{"frontend react developer", "embedded firmware engineer for automotive controllers"},
		{"one two three common words appear", "common words appear here too maybe"},
	}
	for _, pair := range pairs {
		score := s.Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

// TestScoreRelatedBeatsUnrelated 验证相关文本得分高于无关文本
func TestScoreRelatedBeatsUnrelated(t *testing.T) {
	s := newTestScorer(t)

	resume := "python developer experienced with django postgresql docker kubernetes deployment"
	relatedJD := "hiring python developer who knows django postgresql docker kubernetes"
	unrelatedJD := "seeking pastry chef for artisan bakery croissant laminating sourdough"

	related := s.Score(resume, relatedJD)
	unrelated := s.Score(resume, unrelatedJD)

	assert.Greater(t, related, unrelated)
	assert.Greater(t, related, 50.0)
}

// TestScoreDeterministic 验证同一对文本多次计算结果一致
func TestScoreDeterministic(t *testing.T) {
	s := newTestScorer(t)

	resume := "golang engineer microservices grpc kafka event streaming observability"
	jd := "backend golang role building kafka based event streaming microservices"

	first := s.Score(resume, jd)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Score(resume, jd), "第%d次计算结果不一致", i+2)
	}
}

// TestTokenizeFiltering 验证词元化的过滤规则
func TestTokenizeFiltering(t *testing.T) {
	s := newTestScorer(t)

	tokens := s.tokenize("The Quick-Brown FOX jumped over 12 lazy dogs!")

	assert.Contains(t, tokens, "quick")
	assert.Contains(t, tokens, "brown")
	assert.Contains(t, tokens, "jumped")
	assert.NotContains(t, tokens, "the", "停用词应被过滤")
	assert.NotContains(t, tokens, "12", "长度不足3的词元应被过滤")
	assert.NotContains(t, tokens, "FOX", "输出应全部小写")
}

// TestBuildVocabularyCap 验证词表不超过特征数上限且排序稳定
func TestBuildVocabularyCap(t *testing.T) {
	docA := make([]string, 0, 600)
	docB := make([]string, 0, 600)
	for i := 0; i < 600; i++ {
		docA = append(docA, "termaaa"+string(rune('a'+i%26))+string(rune('a'+(i/26)%26)))
		docB = append(docB, "termbbb"+string(rune('a'+i%26))+string(rune('a'+(i/26)%26)))
	}

	vocab := buildVocabulary(docA, docB)
	assert.LessOrEqual(t, len(vocab.index), 500)
	assert.Len(t, vocab.idf, len(vocab.index))

	again := buildVocabulary(docA, docB)
	assert.Equal(t, vocab.index, again.index)
}
