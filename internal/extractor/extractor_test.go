package extractor

import (
	"context"
	"errors"
	"testing"

	"ats-analyzer-go/internal/config"
	"ats-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	// 测试使用纯Go解析器，不依赖外部组件
	e, err := New(context.Background(), config.ExtractorConfig{
		PDFParser:      "ledong",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err, "创建提取器失败")
	return e
}

// TestExtractPlainText 验证TXT文档的提取与规范化
func TestExtractPlainText(t *testing.T) {
	e := newTestExtractor(t)

	doc := &types.Document{
		Data:     []byte("Skills:\n•   Python,  SQL\n\n\n\nExperience:\nBuilt things\n3\n"),
		Type:     types.FileTypeTXT,
		Role:     types.RoleResume,
		Filename: "resume.txt",
	}

	text, err := e.Extract(context.Background(), doc)
	require.NoError(t, err)

	// 项目符号归一、行内空白压缩、纯页码行去除、空行压缩
	assert.Contains(t, text, "- Python, SQL")
	assert.NotContains(t, text, "•")
	assert.NotContains(t, text, "\n\n\n")
	assert.NotContains(t, text, "\n3")
	// 换行结构保留，供章节检测使用
	assert.Contains(t, text, "Skills:\n")
}

// TestExtractUnsupportedType 验证未知类型返回 ErrUnsupportedFormat
func TestExtractUnsupportedType(t *testing.T) {
	e := newTestExtractor(t)

	doc := &types.Document{
		Data:     []byte("hello"),
		Type:     types.FileType("html"),
		Filename: "resume.html",
	}

	_, err := e.Extract(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat), "应返回不支持的文件类型错误")
}

// TestExtractEmptyDocument 验证空文档返回 ErrEmptyDocument
func TestExtractEmptyDocument(t *testing.T) {
	e := newTestExtractor(t)

	_, err := e.Extract(context.Background(), &types.Document{
		Data: nil,
		Type: types.FileTypeTXT,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyDocument))

	_, err = e.Extract(context.Background(), &types.Document{
		Data: []byte("   \n\n  "),
		Type: types.FileTypeTXT,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyDocument), "只含空白的文档应视为空")
}

// TestExtractCorruptPDF 验证损坏的PDF返回 ErrExtractionFailed 而不是panic
func TestExtractCorruptPDF(t *testing.T) {
	e := newTestExtractor(t)

	_, err := e.Extract(context.Background(), &types.Document{
		Data:     []byte("这不是一个PDF文件"),
		Type:     types.FileTypePDF,
		Filename: "broken.pdf",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed), "损坏的PDF应返回提取失败错误")
}

// TestFileTypeFromFilename 验证扩展名推断
func TestFileTypeFromFilename(t *testing.T) {
	cases := []struct {
		filename string
		want     types.FileType
		wantErr  bool
	}{
		{"resume.pdf", types.FileTypePDF, false},
		{"Resume.PDF", types.FileTypePDF, false},
		{"resume.docx", types.FileTypeDOCX, false},
		{"resume.doc", types.FileTypeDOC, false},
		{"jd.txt", types.FileTypeTXT, false},
		{"resume.png", "", true},
		{"noextension", "", true},
	}

	for _, tc := range cases {
		got, err := FileTypeFromFilename(tc.filename)
		if tc.wantErr {
			assert.Error(t, err, "文件 %s 应返回错误", tc.filename)
			assert.True(t, errors.Is(err, ErrUnsupportedFormat))
		} else {
			require.NoError(t, err, "文件 %s 不应返回错误", tc.filename)
			assert.Equal(t, tc.want, got)
		}
	}
}

// TestNormalizeLayout 验证布局规范化的细节
func TestNormalizeLayout(t *testing.T) {
	input := "Line one   with   spaces\r\n●  bullet item\r\nPage 2\n\n\n\nNext part"
	got := NormalizeLayout(input)

	assert.Equal(t, "Line one with spaces\n- bullet item\n\nNext part", got)
}

// TestDocxXMLToText 验证document.xml到纯文本的转换
func TestDocxXMLToText(t *testing.T) {
	xml := `<w:p><w:r><w:t>Skills</w:t></w:r></w:p><w:p><w:r><w:t>Python &amp; Go</w:t></w:r></w:p>`
	got := docxXMLToText(xml)

	assert.Contains(t, got, "Skills\n")
	assert.Contains(t, got, "Python & Go")
	assert.NotContains(t, got, "<w:")
}

// TestExtractError 验证错误包装链
func TestExtractError(t *testing.T) {
	err := NewExtractionError("a.pdf", "加密文档")
	assert.True(t, errors.Is(err, ErrExtractionFailed))
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "a.pdf")
	assert.Contains(t, err.Error(), "加密文档")

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, "extract", extractErr.Op)
}
