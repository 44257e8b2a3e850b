// Package similarity 计算简历与职位描述的文本相似度：
// 在两篇文档的共享词表上构建TF-IDF向量，取余弦相似度并映射到0-100。
// 没有任何随机初始化，同一对文本的得分在多次运行间完全一致。
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"ats-analyzer-go/internal/constants"
	"ats-analyzer-go/internal/dictionary"
)

// 词元化时保留字母数字、空白和 + #（cpp/csharp 等写法）
var nonTokenRe = regexp.MustCompile(`[^a-z0-9\s+#]`)

// Scorer TF-IDF相似度计算器
type Scorer struct {
	dict *dictionary.Dictionary
}

// New 创建相似度计算器
func New(dict *dictionary.Dictionary) *Scorer {
	return &Scorer{dict: dict}
}

// Score 计算两篇文本的相似度，返回[0,100]
// 任一文本没有有效词元（空文档、纯符号）时返回0，不会除零
func (s *Scorer) Score(resumeText, jdText string) float64 {
	resumeTokens := s.tokenize(resumeText)
	jdTokens := s.tokenize(jdText)
	if len(resumeTokens) == 0 || len(jdTokens) == 0 {
		return 0
	}

	vocab := buildVocabulary(resumeTokens, jdTokens)
	resumeVec := vocab.vector(resumeTokens)
	jdVec := vocab.vector(jdTokens)

	return round2(cosine(resumeVec, jdVec) * 100)
}

// tokenize 预处理文本：小写、去符号、去停用词、去短词
func (s *Scorer) tokenize(text string) []string {
	cleaned := nonTokenRe.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) <= 2 || s.dict.IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// vocabulary 共享词表：词到向量下标的映射及每个词的IDF权重
type vocabulary struct {
	index map[string]int
	idf   []float64
}

// buildVocabulary 从两篇文档构建共享词表
// 超出上限时保留语料总词频最高的词，按字典序打破平局；
// IDF采用平滑公式 ln((1+n)/(1+df))+1，n为文档数(2)
func buildVocabulary(docA, docB []string) *vocabulary {
	counts := make(map[string]int)
	for _, tok := range docA {
		counts[tok]++
	}
	for _, tok := range docB {
		counts[tok]++
	}

	df := make(map[string]int, len(counts))
	for _, term := range uniqueTerms(docA) {
		df[term]++
	}
	for _, term := range uniqueTerms(docB) {
		df[term]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > constants.MaxTfidfFeatures {
		terms = terms[:constants.MaxTfidfFeatures]
	}
	sort.Strings(terms)

	v := &vocabulary{
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	const docCount = 2
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log(float64(1+docCount)/float64(1+df[term])) + 1
	}
	return v
}

// vector 计算文档在共享词表上的L2归一化TF-IDF向量
func (v *vocabulary) vector(tokens []string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range tokens {
		if idx, ok := v.index[tok]; ok {
			vec[idx]++
		}
	}
	norm := 0.0
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// uniqueTerms 文档中出现过的词，每个只出现一次
func uniqueTerms(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// cosine 两个等长向量的余弦相似度（输入已L2归一化，点积即余弦）
func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot > 1 {
		dot = 1
	}
	if dot < 0 {
		dot = 0
	}
	return dot
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
