package extractor

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	// 段落/换行标签转换行
	docxParaEndRe = regexp.MustCompile(`</w:p>|<w:br[^>]*/?>`)
	// 其余XML标签全部去掉
	docxTagRe = regexp.MustCompile(`<[^>]+>`)
	// XML实体还原
	docxEntityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

// DocxExtractor DOCX文本提取器
type DocxExtractor struct{}

// NewDocxExtractor 创建DOCX提取器
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ExtractText 实现 TextExtractor 接口
func (e *DocxExtractor) ExtractText(_ context.Context, data []byte, uri string) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", NewExtractionError(uri, err.Error())
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := docxXMLToText(content)
	if strings.TrimSpace(text) == "" {
		return "", NewEmptyDocumentError(uri, "DOCX中没有可提取的文本")
	}
	return text, nil
}

// docxXMLToText 把document.xml转换为纯文本：段落边界转换行，去掉全部标签
func docxXMLToText(content string) string {
	content = docxParaEndRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return docxEntityReplacer.Replace(content)
}
