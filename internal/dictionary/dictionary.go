// Package dictionary 管理分析引擎依赖的只读查找数据：
// 技能表、行为动词表、缩写同义词、章节标题词表和英文停用词。
// 词典在进程启动时加载一次，之后不再修改，可被多个请求无锁并发读取。
package dictionary

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"ats-analyzer-go/internal/types"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var embeddedData []byte

// SkillCategory 一个技能分类及其包含的技能
type SkillCategory struct {
	Name   string   `yaml:"category"`
	Skills []string `yaml:"skills"`
}

// HeadingEntry 标题词表中的一个条目：别名与其折叠到的规范类别
type HeadingEntry struct {
	Alias    string
	Category types.SectionCategory
}

// synonymRule 一条缩写归一化规则
type synonymRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// fileFormat 词典文件的YAML结构
type fileFormat struct {
	SkillTaxonomy []SkillCategory `yaml:"skill_taxonomy"`
	ActionVerbs   []string        `yaml:"action_verbs"`
	SkillSynonyms []struct {
		Abbrev string `yaml:"abbrev"`
		Full   string `yaml:"full"`
	} `yaml:"skill_synonyms"`
	HeadingLexicon []struct {
		Category string   `yaml:"category"`
		Aliases  []string `yaml:"aliases"`
	} `yaml:"heading_lexicon"`
	Stopwords []string `yaml:"stopwords"`
}

// Dictionary 编译好的只读词典
type Dictionary struct {
	categories    []SkillCategory
	allSkills     []string // 扁平化并去重，保持词典顺序
	skillPatterns map[string]*regexp.Regexp
	verbs         []string
	verbPatterns  map[string]*regexp.Regexp
	synonyms      []synonymRule
	headings      []HeadingEntry // 按别名长度降序，供最长匹配使用
	stopwords     map[string]struct{}
}

// Default 加载内置词典
func Default() (*Dictionary, error) {
	return parse(embeddedData)
}

// Load 从文件加载词典，path为空时使用内置词典
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取词典文件失败: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Dictionary, error) {
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("解析词典失败: %w", err)
	}

	d := &Dictionary{
		categories:    ff.SkillTaxonomy,
		skillPatterns: make(map[string]*regexp.Regexp),
		verbPatterns:  make(map[string]*regexp.Regexp),
		stopwords:     make(map[string]struct{}, len(ff.Stopwords)),
	}

	// 扁平化技能表，去重并保持顺序
	seen := make(map[string]struct{})
	for _, cat := range ff.SkillTaxonomy {
		for _, skill := range cat.Skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill == "" {
				continue
			}
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			d.allSkills = append(d.allSkills, skill)
			d.skillPatterns[skill] = wordBoundaryPattern(skill)
		}
	}

	for _, verb := range ff.ActionVerbs {
		verb = strings.ToLower(strings.TrimSpace(verb))
		if verb == "" {
			continue
		}
		d.verbs = append(d.verbs, verb)
		d.verbPatterns[verb] = wordBoundaryPattern(verb)
	}

	// 同义词规则按文件顺序应用
	for _, syn := range ff.SkillSynonyms {
		abbrev := strings.ToLower(strings.TrimSpace(syn.Abbrev))
		if abbrev == "" {
			continue
		}
		d.synonyms = append(d.synonyms, synonymRule{
			pattern:     wordBoundaryPattern(abbrev),
			replacement: syn.Full,
		})
	}

	for _, entry := range ff.HeadingLexicon {
		category := types.SectionCategory(strings.ToLower(entry.Category))
		for _, alias := range entry.Aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				continue
			}
			d.headings = append(d.headings, HeadingEntry{Alias: alias, Category: category})
		}
	}
	// 别名长度降序，同长度按字典序，保证最长匹配且顺序稳定
	sort.SliceStable(d.headings, func(i, j int) bool {
		if len(d.headings[i].Alias) != len(d.headings[j].Alias) {
			return len(d.headings[i].Alias) > len(d.headings[j].Alias)
		}
		return d.headings[i].Alias < d.headings[j].Alias
	})

	for _, w := range ff.Stopwords {
		d.stopwords[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	return d, nil
}

// wordBoundaryPattern 构造整词匹配的正则，避免部分匹配（如 java 匹配到 javascript）
func wordBoundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}

// Skills 全部技能，词典顺序
func (d *Dictionary) Skills() []string {
	return d.allSkills
}

// Categories 按分类组织的技能表
func (d *Dictionary) Categories() []SkillCategory {
	return d.categories
}

// SkillPattern 技能的整词匹配正则，技能不存在时返回nil
func (d *Dictionary) SkillPattern(skill string) *regexp.Regexp {
	return d.skillPatterns[skill]
}

// ActionVerbs 全部行为动词，词典顺序
func (d *Dictionary) ActionVerbs() []string {
	return d.verbs
}

// VerbPattern 行为动词的整词匹配正则
func (d *Dictionary) VerbPattern(verb string) *regexp.Regexp {
	return d.verbPatterns[verb]
}

// NormalizeSkillSynonyms 小写化并将缩写展开为规范写法（ml → machine learning）
func (d *Dictionary) NormalizeSkillSynonyms(text string) string {
	normalized := strings.ToLower(text)
	for _, rule := range d.synonyms {
		normalized = rule.pattern.ReplaceAllString(normalized, rule.replacement)
	}
	return normalized
}

// Headings 标题词表，按别名长度降序
func (d *Dictionary) Headings() []HeadingEntry {
	return d.headings
}

// IsStopword 判断（小写）单词是否为停用词
func (d *Dictionary) IsStopword(word string) bool {
	_, ok := d.stopwords[word]
	return ok
}
