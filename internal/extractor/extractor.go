// Package extractor 将上传的文档（PDF/DOCX/TXT）转换为规范化纯文本。
// 提取是流水线中唯一可能失败并向调用方报错的阶段，失败时整个请求原子失败。
package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ats-analyzer-go/internal/config"
	"ats-analyzer-go/internal/logger"
	"ats-analyzer-go/internal/types"
)

// TextExtractor 单一格式的文本提取器
type TextExtractor interface {
	// ExtractText 从字节流提取纯文本，uri仅用于日志和错误信息
	ExtractText(ctx context.Context, data []byte, uri string) (string, error)
}

// Extractor 按文件类型分发到具体提取器，并对结果做布局规范化
type Extractor struct {
	pdf   TextExtractor
	docx  TextExtractor
	plain TextExtractor
}

// New 根据配置创建提取器
// PDF解析器支持两种实现：eino（默认）和 ledong（纯Go、无外部组件）
func New(ctx context.Context, cfg config.ExtractorConfig) (*Extractor, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var pdfExtractor TextExtractor
	switch cfg.PDFParser {
	case "", "eino":
		eino, err := NewEinoPDFExtractor(ctx, timeout)
		if err != nil {
			return nil, fmt.Errorf("创建Eino PDF提取器失败: %w", err)
		}
		pdfExtractor = eino
		logger.Info().Msg("使用Eino PDF解析器")
	case "ledong":
		pdfExtractor = NewLedongPDFExtractor()
		logger.Info().Msg("使用ledongthuc PDF解析器")
	default:
		return nil, fmt.Errorf("未知的PDF解析器类型: %s", cfg.PDFParser)
	}

	return &Extractor{
		pdf:   pdfExtractor,
		docx:  NewDocxExtractor(),
		plain: NewPlainTextExtractor(),
	}, nil
}

// Extract 提取文档文本并做布局规范化
// 声明类型不在 pdf/docx/doc/txt 之内时返回 ErrUnsupportedFormat；
// 底层解析失败返回 ErrExtractionFailed；内容为空返回 ErrEmptyDocument。
func (e *Extractor) Extract(ctx context.Context, doc *types.Document) (string, error) {
	if doc == nil || len(doc.Data) == 0 {
		return "", NewEmptyDocumentError("", "文档字节为空")
	}

	start := time.Now()

	var (
		raw string
		err error
	)
	switch doc.Type {
	case types.FileTypePDF:
		raw, err = e.pdf.ExtractText(ctx, doc.Data, doc.Filename)
	case types.FileTypeDOCX, types.FileTypeDOC:
		raw, err = e.docx.ExtractText(ctx, doc.Data, doc.Filename)
	case types.FileTypeTXT:
		raw, err = e.plain.ExtractText(ctx, doc.Data, doc.Filename)
	default:
		return "", NewUnsupportedFormatError(doc.Filename, string(doc.Type))
	}
	if err != nil {
		return "", err
	}

	normalized := NormalizeLayout(raw)
	if normalized == "" {
		return "", NewEmptyDocumentError(doc.Filename, "提取结果为空")
	}

	logger.Debug().
		Str("role", string(doc.Role)).
		Str("type", string(doc.Type)).
		Int("chars", len(normalized)).
		Dur("elapsed", time.Since(start)).
		Msg("文档提取完成")

	return normalized, nil
}

// FileTypeFromFilename 根据文件扩展名推断声明类型
func FileTypeFromFilename(filename string) (types.FileType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return types.FileTypePDF, nil
	case "docx":
		return types.FileTypeDOCX, nil
	case "doc":
		return types.FileTypeDOC, nil
	case "txt":
		return types.FileTypeTXT, nil
	default:
		return "", NewUnsupportedFormatError(filename, ext)
	}
}
