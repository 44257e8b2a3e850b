package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	ledongpdf "github.com/ledongthuc/pdf"
)

// LedongPDFExtractor 基于 ledongthuc/pdf 的纯Go PDF解析器
// 不依赖任何外部组件，适合离线部署
type LedongPDFExtractor struct{}

// NewLedongPDFExtractor 创建纯Go PDF提取器
func NewLedongPDFExtractor() *LedongPDFExtractor {
	return &LedongPDFExtractor{}
}

// ExtractText 实现 TextExtractor 接口
// 底层库解析畸形文件时可能panic，这里统一转换为提取错误
func (e *LedongPDFExtractor) ExtractText(_ context.Context, data []byte, uri string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = NewExtractionError(uri, fmt.Sprintf("PDF解析panic: %v", r))
		}
	}()

	reader, err := ledongpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", NewExtractionError(uri, err.Error())
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// 单页失败不中断，跳过该页
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	if sb.Len() == 0 {
		return "", NewEmptyDocumentError(uri, "PDF中没有可提取的文本")
	}
	return sb.String(), nil
}
