package extractor

import (
	"bytes"
	"context"
	"strings"
	"time"

	"ats-analyzer-go/internal/logger"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// EinoPDFExtractor 使用 Eino PDF Parser 提取文本
type EinoPDFExtractor struct {
	parser  *pdf.PDFParser
	timeout time.Duration
}

// NewEinoPDFExtractor 初始化 Eino PDF 文本提取器
// 配置为不按页面分割，以获取整个文档的连续文本
func NewEinoPDFExtractor(ctx context.Context, timeout time.Duration) (*EinoPDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 整个PDF的文本作为单个字符串返回
	})
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EinoPDFExtractor{parser: p, timeout: timeout}, nil
}

// ExtractText 实现 TextExtractor 接口
func (e *EinoPDFExtractor) ExtractText(ctx context.Context, data []byte, uri string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, bytes.NewReader(data), einoParser.WithURI(uri))
	if err != nil {
		logger.Debug().Err(err).Str("uri", uri).Msg("Eino PDF解析失败")
		return "", NewExtractionError(uri, err.Error())
	}
	if len(docs) == 0 {
		return "", NewEmptyDocumentError(uri, "解析器未返回任何内容")
	}

	// 合并所有文档的内容（以防万一返回了多个）
	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(doc.Content)
	}

	logger.Debug().
		Str("uri", uri).
		Int("documents", len(docs)).
		Int("chars", sb.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Eino PDF提取完成")

	return sb.String(), nil
}
