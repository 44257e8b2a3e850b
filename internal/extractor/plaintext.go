package extractor

import (
	"bytes"
	"context"
	"unicode/utf8"
)

// PlainTextExtractor 纯文本提取器
type PlainTextExtractor struct{}

// NewPlainTextExtractor 创建纯文本提取器
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractText 实现 TextExtractor 接口
// 去掉BOM，非法UTF-8字节按原样丢弃
func (e *PlainTextExtractor) ExtractText(_ context.Context, data []byte, uri string) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}
	return string(bytes.ToValidUTF8(data, nil)), nil
}
